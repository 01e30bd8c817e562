package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lordcript/gestion-achatss.io/internal/charge"
	"github.com/lordcript/gestion-achatss.io/internal/model"
)

type chargeUseCase struct {
	repo   charge.Repository
	logger *zap.Logger
}

func NewChargeUseCase(repo charge.Repository, log *zap.Logger) charge.UseCase {
	return &chargeUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *chargeUseCase) CreerCharge(ctx context.Context, nature string, montant float64, date *time.Time) (*model.Charge, error) {
	if montant <= 0 {
		return nil, fmt.Errorf("le montant doit être strictement positif: %w", model.ErrValidation)
	}
	ch := &model.Charge{
		Nature:     nature,
		Montant:    montant,
		DateCharge: time.Now().UTC(),
	}
	if date != nil {
		ch.DateCharge = *date
	}
	if err := uc.repo.Create(ctx, ch); err != nil {
		return nil, err
	}
	return ch, nil
}

func (uc *chargeUseCase) ListerCharges(ctx context.Context) ([]model.Charge, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *chargeUseCase) ModifierCharge(ctx context.Context, id int64, nature string, montant float64, date *time.Time) (*model.Charge, error) {
	if montant <= 0 {
		return nil, fmt.Errorf("le montant doit être strictement positif: %w", model.ErrValidation)
	}
	ch, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ch == nil {
		return nil, fmt.Errorf("charge %d: %w", id, model.ErrIntrouvable)
	}

	ch.Nature = nature
	ch.Montant = montant
	if date != nil {
		ch.DateCharge = *date
	}
	if err := uc.repo.Update(ctx, ch); err != nil {
		return nil, err
	}
	return ch, nil
}

func (uc *chargeUseCase) SupprimerCharge(ctx context.Context, id int64) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("charge %d: %w", id, model.ErrIntrouvable)
	}
	uc.logger.Info("charge supprimée", zap.Int64("charge_id", id))
	return nil
}
