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

func (r *SQLRepository) Create(ctx context.Context, u *model.Utilisateur) error {
	query := r.DB.Rebind(`INSERT INTO utilisateurs
		(nom_utilisateur, mot_de_passe_hash, est_admin, est_actif, fin_abonnement, indicatif_pays, telephone, cree_le)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`)
	return r.DB.QueryRowxContext(ctx, query,
		u.NomUtilisateur, u.MotDePasseHash, u.EstAdmin, u.EstActif,
		u.FinAbonnement, u.IndicatifPays, u.Telephone, u.CreeLe,
	).Scan(&u.ID)
}

func (r *SQLRepository) FindByNom(ctx context.Context, nomUtilisateur string) (*model.Utilisateur, error) {
	var u model.Utilisateur
	query := r.DB.Rebind(`SELECT * FROM utilisateurs WHERE nom_utilisateur = ? LIMIT 1`)
	err := r.DB.GetContext(ctx, &u, query, nomUtilisateur)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *SQLRepository) FindByTelephone(ctx context.Context, indicatifPays, telephone string) (*model.Utilisateur, error) {
	var u model.Utilisateur
	query := r.DB.Rebind(`SELECT * FROM utilisateurs WHERE indicatif_pays = ? AND telephone = ? LIMIT 1`)
	err := r.DB.GetContext(ctx, &u, query, indicatifPays, telephone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *SQLRepository) FindAll(ctx context.Context) ([]model.Utilisateur, error) {
	var utilisateurs []model.Utilisateur
	err := r.DB.SelectContext(ctx, &utilisateurs, `SELECT * FROM utilisateurs ORDER BY id`)
	return utilisateurs, err
}

func (r *SQLRepository) Update(ctx context.Context, u *model.Utilisateur) error {
	query := r.DB.Rebind(`UPDATE utilisateurs SET est_admin = ?, est_actif = ?, fin_abonnement = ? WHERE id = ?`)
	_, err := r.DB.ExecContext(ctx, query, u.EstAdmin, u.EstActif, u.FinAbonnement, u.ID)
	return err
}
