package rapport

import (
	"context"
	"time"

	"github.com/lordcript/gestion-achatss.io/internal/model"
)

// LigneAchat is one order line flattened for export.
type LigneAchat struct {
	CommandeID   int64     `db:"commande_id"`
	DateCommande time.Time `db:"date_commande"`
	NomProduit   string    `db:"nom_produit"`
	Quantite     int       `db:"quantite"`
	Montant      float64   `db:"montant"`
}

type Repository interface {
	LignesAchats(ctx context.Context) ([]LigneAchat, error)
	Charges(ctx context.Context) ([]model.Charge, error)
}
