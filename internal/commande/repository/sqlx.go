package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/lordcript/gestion-achatss.io/internal/model"
)

type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Create(ctx context.Context, c *model.Commande) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := tx.Rebind(`INSERT INTO commandes (fournisseur_id, societe, date_commande, statut, cout_total, sens_stock)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING id`)
	err = tx.QueryRowxContext(ctx, query,
		c.FournisseurID, c.Societe, c.DateCommande, c.Statut, c.CoutTotal, c.SensStock,
	).Scan(&c.ID)
	if err != nil {
		return err
	}

	insertLigne := tx.Rebind(`INSERT INTO details_commandes (commande_id, produit_id, quantite, prix_achat)
		VALUES (?, ?, ?, ?) RETURNING id`)
	majStock := tx.Rebind(`UPDATE produits SET stock_actuel = stock_actuel + ? WHERE id = ?`)

	for i := range c.Details {
		d := &c.Details[i]
		d.CommandeID = c.ID
		if err := tx.QueryRowxContext(ctx, insertLigne, d.CommandeID, d.ProduitID, d.Quantite, d.PrixAchat).Scan(&d.ID); err != nil {
			return err
		}
		if c.SensStock == model.SensEntree {
			if _, err := tx.ExecContext(ctx, majStock, d.Quantite, d.ProduitID); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.Commande, error) {
	var c model.Commande
	query := r.DB.Rebind(`SELECT * FROM commandes WHERE id = ? LIMIT 1`)
	err := r.DB.GetContext(ctx, &c, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	lignes := r.DB.Rebind(`SELECT * FROM details_commandes WHERE commande_id = ? ORDER BY id`)
	if err := r.DB.SelectContext(ctx, &c.Details, lignes, id); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *SQLRepository) FindAll(ctx context.Context) ([]model.Commande, error) {
	var commandes []model.Commande
	err := r.DB.SelectContext(ctx, &commandes, `SELECT * FROM commandes ORDER BY date_commande DESC, id DESC`)
	if err != nil || len(commandes) == 0 {
		return commandes, err
	}

	ids := make([]int64, 0, len(commandes))
	parID := make(map[int64]*model.Commande, len(commandes))
	for i := range commandes {
		ids = append(ids, commandes[i].ID)
		parID[commandes[i].ID] = &commandes[i]
	}

	query, args, err := sqlx.In(`SELECT * FROM details_commandes WHERE commande_id IN (?) ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}
	var details []model.DetailCommande
	if err := r.DB.SelectContext(ctx, &details, r.DB.Rebind(query), args...); err != nil {
		return nil, err
	}
	for _, d := range details {
		c := parID[d.CommandeID]
		c.Details = append(c.Details, d)
	}
	return commandes, nil
}

func (r *SQLRepository) UpdateStatut(ctx context.Context, id int64, statut string) (bool, error) {
	query := r.DB.Rebind(`UPDATE commandes SET statut = ? WHERE id = ?`)
	res, err := r.DB.ExecContext(ctx, query, statut, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var c model.Commande
	if err := tx.GetContext(ctx, &c, tx.Rebind(`SELECT * FROM commandes WHERE id = ? LIMIT 1`), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	var details []model.DetailCommande
	if err := tx.SelectContext(ctx, &details, tx.Rebind(`SELECT * FROM details_commandes WHERE commande_id = ?`), id); err != nil {
		return false, err
	}

	// Une commande 'sortie' rend au stock ce que le panier avait déduit; une
	// commande 'entree' retire ce qu'elle avait ajouté, sans passer sous zéro.
	// Un produit supprimé entre-temps ne touche aucune ligne (0 row affected).
	restaurer := tx.Rebind(`UPDATE produits SET stock_actuel = stock_actuel + ? WHERE id = ?`)
	retirer := tx.Rebind(`UPDATE produits SET stock_actuel = CASE WHEN stock_actuel > ? THEN stock_actuel - ? ELSE 0 END WHERE id = ?`)
	for _, d := range details {
		if c.SensStock == model.SensSortie {
			_, err = tx.ExecContext(ctx, restaurer, d.Quantite, d.ProduitID)
		} else {
			_, err = tx.ExecContext(ctx, retirer, d.Quantite, d.Quantite, d.ProduitID)
		}
		if err != nil {
			return false, err
		}
	}

	if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM details_commandes WHERE commande_id = ?`), id); err != nil {
		return false, err
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM commandes WHERE id = ?`), id); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

func (r *SQLRepository) StatsParProduit(ctx context.Context) ([]model.StatProduit, error) {
	var stats []model.StatProduit
	err := r.DB.SelectContext(ctx, &stats, `
		SELECT d.produit_id,
		       COALESCE(p.nom, '') AS nom_produit,
		       SUM(d.quantite) AS quantite_vendue,
		       SUM(d.quantite * d.prix_achat) AS revenu_total
		FROM details_commandes d
		LEFT JOIN produits p ON p.id = d.produit_id
		GROUP BY d.produit_id, p.nom
		ORDER BY revenu_total DESC`)
	return stats, err
}
