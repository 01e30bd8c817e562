package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/lordcript/gestion-achatss.io/internal/fournisseur"
	"github.com/lordcript/gestion-achatss.io/internal/model"
)

type fournisseurUseCase struct {
	repo   fournisseur.Repository
	logger *zap.Logger
}

func NewFournisseurUseCase(repo fournisseur.Repository, log *zap.Logger) fournisseur.UseCase {
	return &fournisseurUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *fournisseurUseCase) CreerFournisseur(ctx context.Context, nom, contact string) (*model.Fournisseur, error) {
	f := &model.Fournisseur{Nom: nom}
	if contact != "" {
		f.Contact = &contact
	}
	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (uc *fournisseurUseCase) GetFournisseur(ctx context.Context, id int64) (*model.Fournisseur, error) {
	f, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("fournisseur %d: %w", id, model.ErrIntrouvable)
	}
	return f, nil
}

func (uc *fournisseurUseCase) ListerFournisseurs(ctx context.Context) ([]model.Fournisseur, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *fournisseurUseCase) ModifierFournisseur(ctx context.Context, id int64, nom, contact string) (*model.Fournisseur, error) {
	f, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("fournisseur %d: %w", id, model.ErrIntrouvable)
	}

	f.Nom = nom
	if contact != "" {
		f.Contact = &contact
	} else {
		f.Contact = nil
	}

	if err := uc.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}
