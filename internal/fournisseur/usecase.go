package fournisseur

import (
	"context"

	"github.com/lordcript/gestion-achatss.io/internal/model"
)

type UseCase interface {
	CreerFournisseur(ctx context.Context, nom, contact string) (*model.Fournisseur, error)
	GetFournisseur(ctx context.Context, id int64) (*model.Fournisseur, error)
	ListerFournisseurs(ctx context.Context) ([]model.Fournisseur, error)
	ModifierFournisseur(ctx context.Context, id int64, nom, contact string) (*model.Fournisseur, error)
}
