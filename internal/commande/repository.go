package commande

import (
	"context"

	"github.com/lordcript/gestion-achatss.io/internal/model"
)

type Repository interface {
	// Create inserts the order header and its lines in one transaction. For an
	// 'entree' order the stock of each product is incremented in the same
	// transaction; a 'sortie' order never touches the stock here (it was
	// already deducted line by line when the cart was filled).
	Create(ctx context.Context, c *model.Commande) error
	FindByID(ctx context.Context, id int64) (*model.Commande, error)
	FindAll(ctx context.Context) ([]model.Commande, error)
	UpdateStatut(ctx context.Context, id int64, statut string) (bool, error)
	// Delete reverses the recorded stock effect of every line, then removes
	// the lines and the header, all in one transaction. Lines whose product no
	// longer exists are skipped. Returns false when the order does not exist.
	Delete(ctx context.Context, id int64) (bool, error)
	StatsParProduit(ctx context.Context) ([]model.StatProduit, error)
}
