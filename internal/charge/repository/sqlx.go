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

func (r *SQLRepository) Create(ctx context.Context, ch *model.Charge) error {
	query := r.DB.Rebind(`INSERT INTO charges (nature, montant, date_charge) VALUES (?, ?, ?) RETURNING id`)
	return r.DB.QueryRowxContext(ctx, query, ch.Nature, ch.Montant, ch.DateCharge).Scan(&ch.ID)
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.Charge, error) {
	var ch model.Charge
	query := r.DB.Rebind(`SELECT * FROM charges WHERE id = ? LIMIT 1`)
	err := r.DB.GetContext(ctx, &ch, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &ch, nil
}

func (r *SQLRepository) FindAll(ctx context.Context) ([]model.Charge, error) {
	var charges []model.Charge
	err := r.DB.SelectContext(ctx, &charges, `SELECT * FROM charges ORDER BY date_charge DESC, id DESC`)
	return charges, err
}

func (r *SQLRepository) Update(ctx context.Context, ch *model.Charge) error {
	query := r.DB.Rebind(`UPDATE charges SET nature = ?, montant = ?, date_charge = ? WHERE id = ?`)
	_, err := r.DB.ExecContext(ctx, query, ch.Nature, ch.Montant, ch.DateCharge, ch.ID)
	return err
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, r.DB.Rebind(`DELETE FROM charges WHERE id = ?`), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
