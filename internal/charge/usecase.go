package charge

import (
	"context"
	"time"

	"github.com/lordcript/gestion-achatss.io/internal/model"
)

type UseCase interface {
	CreerCharge(ctx context.Context, nature string, montant float64, date *time.Time) (*model.Charge, error)
	ListerCharges(ctx context.Context) ([]model.Charge, error)
	ModifierCharge(ctx context.Context, id int64, nature string, montant float64, date *time.Time) (*model.Charge, error)
	SupprimerCharge(ctx context.Context, id int64) error
}
