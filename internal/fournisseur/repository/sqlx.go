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

func (r *SQLRepository) Create(ctx context.Context, f *model.Fournisseur) error {
	query := r.DB.Rebind(`INSERT INTO fournisseurs (nom, contact) VALUES (?, ?) RETURNING id`)
	return r.DB.QueryRowxContext(ctx, query, f.Nom, f.Contact).Scan(&f.ID)
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.Fournisseur, error) {
	var f model.Fournisseur
	query := r.DB.Rebind(`SELECT * FROM fournisseurs WHERE id = ? LIMIT 1`)
	err := r.DB.GetContext(ctx, &f, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *SQLRepository) FindAll(ctx context.Context) ([]model.Fournisseur, error) {
	var fournisseurs []model.Fournisseur
	err := r.DB.SelectContext(ctx, &fournisseurs, `SELECT * FROM fournisseurs ORDER BY id`)
	return fournisseurs, err
}

func (r *SQLRepository) Update(ctx context.Context, f *model.Fournisseur) error {
	query := r.DB.Rebind(`UPDATE fournisseurs SET nom = ?, contact = ? WHERE id = ?`)
	_, err := r.DB.ExecContext(ctx, query, f.Nom, f.Contact, f.ID)
	return err
}
