package produit

import (
	"context"

	"github.com/lordcript/gestion-achatss.io/internal/model"
	"github.com/lordcript/gestion-achatss.io/internal/produit/dto"
)

type UseCase interface {
	CreerProduit(ctx context.Context, input *dto.CreerProduitInput) (*model.Produit, error)
	GetProduit(ctx context.Context, id int64) (*model.Produit, error)
	ListerProduits(ctx context.Context) ([]model.Produit, error)
	ModifierProduit(ctx context.Context, input *dto.ModifierProduitInput) (*model.Produit, error)
	SupprimerProduit(ctx context.Context, id int64) error

	// ReserverStock checks availability, deducts it, and returns the product as it
	// was read (the price/name snapshot the cart keeps).
	ReserverStock(ctx context.Context, produitID int64, quantite int) (*model.Produit, error)
	RestaurerStock(ctx context.Context, quantites map[int64]int) error
}
