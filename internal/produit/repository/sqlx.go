package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lordcript/gestion-achatss.io/internal/model"
)

type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Create(ctx context.Context, p *model.Produit) error {
	query := r.DB.Rebind(`
        INSERT INTO produits (nom, description, reference, prix_unitaire, prix_vente, stock_actuel, fournisseur_id)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        RETURNING id
    `)
	return r.DB.QueryRowxContext(ctx, query,
		p.Nom, p.Description, p.Reference, p.PrixUnitaire, p.PrixVente, p.StockActuel, p.FournisseurID,
	).Scan(&p.ID)
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.Produit, error) {
	var p model.Produit
	query := r.DB.Rebind(`SELECT * FROM produits WHERE id = ? LIMIT 1`)
	err := r.DB.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *SQLRepository) FindAll(ctx context.Context) ([]model.Produit, error) {
	var produits []model.Produit
	err := r.DB.SelectContext(ctx, &produits, `SELECT * FROM produits ORDER BY id`)
	return produits, err
}

func (r *SQLRepository) Update(ctx context.Context, p *model.Produit) error {
	query := r.DB.Rebind(`
        UPDATE produits
        SET nom = ?,
            description = ?,
            reference = ?,
            prix_unitaire = ?,
            prix_vente = ?,
            stock_actuel = ?,
            fournisseur_id = ?
        WHERE id = ?
    `)
	_, err := r.DB.ExecContext(ctx, query,
		p.Nom, p.Description, p.Reference, p.PrixUnitaire, p.PrixVente, p.StockActuel, p.FournisseurID, p.ID,
	)
	return err
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	query := r.DB.Rebind(`DELETE FROM produits WHERE id = ?`)
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}

func (r *SQLRepository) IsReferenceUnique(ctx context.Context, reference string, excludeID int64) (bool, error) {
	var count int
	query := `SELECT count(*) FROM produits WHERE reference = ?`
	args := []interface{}{reference}
	if excludeID != 0 {
		query += ` AND id != ?`
		args = append(args, excludeID)
	}

	err := r.DB.GetContext(ctx, &count, r.DB.Rebind(query), args...)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (r *SQLRepository) ReserverStock(ctx context.Context, produitID int64, quantite int) (bool, error) {
	query := r.DB.Rebind(`
        UPDATE produits
        SET stock_actuel = stock_actuel - ?
        WHERE id = ? AND stock_actuel >= ?
    `)
	res, err := r.DB.ExecContext(ctx, query, quantite, produitID, quantite)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *SQLRepository) RestaurerStock(ctx context.Context, quantites map[int64]int) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := r.DB.Rebind(`UPDATE produits SET stock_actuel = stock_actuel + ? WHERE id = ?`)
	for produitID, quantite := range quantites {
		if quantite <= 0 {
			continue
		}
		if _, err := tx.ExecContext(ctx, query, quantite, produitID); err != nil {
			return fmt.Errorf("restauration du stock du produit %d: %w", produitID, err)
		}
	}

	return tx.Commit()
}
