package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/lordcript/gestion-achatss.io/internal/model"
	"github.com/lordcript/gestion-achatss.io/internal/rapport"
)

type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) LignesAchats(ctx context.Context) ([]rapport.LigneAchat, error) {
	var lignes []rapport.LigneAchat
	err := r.DB.SelectContext(ctx, &lignes, `
		SELECT c.id AS commande_id,
		       c.date_commande,
		       COALESCE(p.nom, '') AS nom_produit,
		       d.quantite,
		       d.quantite * d.prix_achat AS montant
		FROM details_commandes d
		JOIN commandes c ON c.id = d.commande_id
		LEFT JOIN produits p ON p.id = d.produit_id
		ORDER BY c.date_commande, c.id, d.id`)
	return lignes, err
}

func (r *SQLRepository) Charges(ctx context.Context) ([]model.Charge, error) {
	var charges []model.Charge
	err := r.DB.SelectContext(ctx, &charges, `SELECT * FROM charges ORDER BY date_charge, id`)
	return charges, err
}
