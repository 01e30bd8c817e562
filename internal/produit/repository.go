package produit

import (
	"context"

	"github.com/lordcript/gestion-achatss.io/internal/model"
)

type Repository interface {
	Create(ctx context.Context, p *model.Produit) error
	FindByID(ctx context.Context, id int64) (*model.Produit, error)
	FindAll(ctx context.Context) ([]model.Produit, error)
	Update(ctx context.Context, p *model.Produit) error
	Delete(ctx context.Context, id int64) error

	IsReferenceUnique(ctx context.Context, reference string, excludeID int64) (bool, error)

	// ReserverStock decrements stock atomically; ok is false when the product is
	// missing or the remaining stock is below quantite.
	ReserverStock(ctx context.Context, produitID int64, quantite int) (bool, error)
	// RestaurerStock adds every quantity back in a single transaction.
	RestaurerStock(ctx context.Context, quantites map[int64]int) error
}
