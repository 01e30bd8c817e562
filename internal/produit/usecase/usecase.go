package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lordcript/gestion-achatss.io/internal/cache"
	"github.com/lordcript/gestion-achatss.io/internal/model"
	"github.com/lordcript/gestion-achatss.io/internal/produit"
	"github.com/lordcript/gestion-achatss.io/internal/produit/dto"
)

const (
	cacheKeyListe = "produits:liste"
	cacheTTL      = 5 * time.Minute
)

type produitUseCase struct {
	repo   produit.Repository
	cache  *cache.Client
	logger *zap.Logger
}

func NewProduitUseCase(repo produit.Repository, cache *cache.Client, log *zap.Logger) produit.UseCase {
	return &produitUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func (uc *produitUseCase) CreerProduit(ctx context.Context, input *dto.CreerProduitInput) (*model.Produit, error) {
	unique, err := uc.repo.IsReferenceUnique(ctx, input.Reference, 0)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, fmt.Errorf("%w: la référence %q est déjà utilisée", model.ErrValidation, input.Reference)
	}

	p := &model.Produit{
		Nom:          input.Nom,
		Reference:    input.Reference,
		PrixUnitaire: input.PrixUnitaire,
		StockActuel:  input.StockActuel,
	}
	if input.Description != "" {
		p.Description = &input.Description
	}
	if input.PrixVente != 0 {
		prixVente := input.PrixVente
		p.PrixVente = &prixVente
	}
	if input.FournisseurID != 0 {
		fournisseurID := input.FournisseurID
		p.FournisseurID = &fournisseurID
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.cache.DelPattern(ctx, cacheKeyListe)

	return p, nil
}

func (uc *produitUseCase) GetProduit(ctx context.Context, id int64) (*model.Produit, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("produit %d: %w", id, model.ErrIntrouvable)
	}
	return p, nil
}

func (uc *produitUseCase) ListerProduits(ctx context.Context) ([]model.Produit, error) {
	if val, ok := uc.cache.Get(ctx, cacheKeyListe); ok {
		var produits []model.Produit
		if err := json.Unmarshal([]byte(val), &produits); err == nil {
			return produits, nil
		}
	}

	produits, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(produits); err == nil {
		uc.cache.Set(ctx, cacheKeyListe, data, cacheTTL)
	}

	return produits, nil
}

func (uc *produitUseCase) ModifierProduit(ctx context.Context, input *dto.ModifierProduitInput) (*model.Produit, error) {
	p, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("produit %d: %w", input.ID, model.ErrIntrouvable)
	}

	if p.Reference != input.Reference {
		unique, err := uc.repo.IsReferenceUnique(ctx, input.Reference, p.ID)
		if err != nil {
			return nil, err
		}
		if !unique {
			return nil, fmt.Errorf("%w: la référence %q est déjà utilisée", model.ErrValidation, input.Reference)
		}
	}

	p.Nom = input.Nom
	p.Reference = input.Reference
	p.PrixUnitaire = input.PrixUnitaire
	p.StockActuel = input.StockActuel
	if input.Description != "" {
		desc := input.Description
		p.Description = &desc
	} else {
		p.Description = nil
	}
	if input.PrixVente != 0 {
		prixVente := input.PrixVente
		p.PrixVente = &prixVente
	} else {
		p.PrixVente = nil
	}
	if input.FournisseurID != 0 {
		fournisseurID := input.FournisseurID
		p.FournisseurID = &fournisseurID
	} else {
		p.FournisseurID = nil
	}

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.cache.DelPattern(ctx, cacheKeyListe)

	return p, nil
}

func (uc *produitUseCase) SupprimerProduit(ctx context.Context, id int64) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("produit %d: %w", id, model.ErrIntrouvable)
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.cache.DelPattern(ctx, cacheKeyListe)

	return nil
}

func (uc *produitUseCase) ReserverStock(ctx context.Context, produitID int64, quantite int) (*model.Produit, error) {
	if quantite <= 0 {
		return nil, fmt.Errorf("%w: la quantité doit être strictement positive", model.ErrValidation)
	}

	p, err := uc.repo.FindByID(ctx, produitID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("produit %d: %w", produitID, model.ErrIntrouvable)
	}

	ok, err := uc.repo.ReserverStock(ctx, produitID, quantite)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Le stock lu ci-dessus peut avoir bougé entre-temps, l'erreur reflète la
		// dernière valeur connue.
		return nil, &model.StockInsuffisantError{
			ProduitID:  p.ID,
			Nom:        p.Nom,
			Demandee:   quantite,
			Disponible: p.StockActuel,
		}
	}

	uc.cache.DelPattern(ctx, cacheKeyListe)

	p.StockActuel -= quantite
	return p, nil
}

func (uc *produitUseCase) RestaurerStock(ctx context.Context, quantites map[int64]int) error {
	if len(quantites) == 0 {
		return nil
	}
	if err := uc.repo.RestaurerStock(ctx, quantites); err != nil {
		return err
	}
	uc.cache.DelPattern(ctx, cacheKeyListe)
	return nil
}
