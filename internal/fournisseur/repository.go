package fournisseur

import (
	"context"

	"github.com/lordcript/gestion-achatss.io/internal/model"
)

type Repository interface {
	Create(ctx context.Context, f *model.Fournisseur) error
	FindByID(ctx context.Context, id int64) (*model.Fournisseur, error)
	FindAll(ctx context.Context) ([]model.Fournisseur, error)
	Update(ctx context.Context, f *model.Fournisseur) error
}
