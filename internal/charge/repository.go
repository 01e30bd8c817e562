package charge

import (
	"context"

	"github.com/lordcript/gestion-achatss.io/internal/model"
)

type Repository interface {
	Create(ctx context.Context, ch *model.Charge) error
	FindByID(ctx context.Context, id int64) (*model.Charge, error)
	FindAll(ctx context.Context) ([]model.Charge, error)
	Update(ctx context.Context, ch *model.Charge) error
	Delete(ctx context.Context, id int64) (bool, error)
}
