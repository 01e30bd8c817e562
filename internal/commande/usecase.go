package commande

import (
	"context"

	"github.com/lordcript/gestion-achatss.io/internal/commande/dto"
	"github.com/lordcript/gestion-achatss.io/internal/model"
)

type UseCase interface {
	CreerCommande(ctx context.Context, input *dto.CreerCommandeInput) (*model.Commande, error)
	// EnregistrerVente persists a cart checkout as a 'sortie' order. The stock
	// was already deducted when the lines entered the cart.
	EnregistrerVente(ctx context.Context, fournisseurID int64, societe string, details []model.DetailCommande) (*model.Commande, error)
	GetCommande(ctx context.Context, id int64) (*model.Commande, error)
	ListerCommandes(ctx context.Context) ([]model.Commande, error)
	ChangerStatut(ctx context.Context, id int64, statut string) (*model.Commande, error)
	SupprimerCommande(ctx context.Context, id int64) error
	StatistiquesProduits(ctx context.Context) ([]model.StatProduit, error)
}
