package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lordcript/gestion-achatss.io/internal/model"
	"github.com/lordcript/gestion-achatss.io/internal/produit/dto"
)

type fakeRepo struct {
	produits map[int64]*model.Produit
	nextID   int64
}

func newFakeRepo(produits ...*model.Produit) *fakeRepo {
	f := &fakeRepo{produits: make(map[int64]*model.Produit)}
	for _, p := range produits {
		f.produits[p.ID] = p
		if p.ID > f.nextID {
			f.nextID = p.ID
		}
	}
	return f
}

func (f *fakeRepo) Create(_ context.Context, p *model.Produit) error {
	f.nextID++
	p.ID = f.nextID
	copie := *p
	f.produits[p.ID] = &copie
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (*model.Produit, error) {
	p, ok := f.produits[id]
	if !ok {
		return nil, nil
	}
	copie := *p
	return &copie, nil
}

func (f *fakeRepo) FindAll(context.Context) ([]model.Produit, error) {
	var produits []model.Produit
	for _, p := range f.produits {
		produits = append(produits, *p)
	}
	return produits, nil
}

func (f *fakeRepo) Update(_ context.Context, p *model.Produit) error {
	copie := *p
	f.produits[p.ID] = &copie
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	delete(f.produits, id)
	return nil
}

func (f *fakeRepo) IsReferenceUnique(_ context.Context, reference string, excludeID int64) (bool, error) {
	for _, p := range f.produits {
		if p.Reference == reference && p.ID != excludeID {
			return false, nil
		}
	}
	return true, nil
}

func (f *fakeRepo) ReserverStock(_ context.Context, produitID int64, quantite int) (bool, error) {
	p, ok := f.produits[produitID]
	if !ok || p.StockActuel < quantite {
		return false, nil
	}
	p.StockActuel -= quantite
	return true, nil
}

func (f *fakeRepo) RestaurerStock(_ context.Context, quantites map[int64]int) error {
	for id, q := range quantites {
		if p, ok := f.produits[id]; ok {
			p.StockActuel += q
		}
	}
	return nil
}

func TestCreerProduitReferenceDupliquee(t *testing.T) {
	repo := newFakeRepo(&model.Produit{ID: 1, Nom: "Clavier", Reference: "CLA-01"})
	uc := NewProduitUseCase(repo, nil, zap.NewNop())

	_, err := uc.CreerProduit(context.Background(), &dto.CreerProduitInput{
		Nom:          "Autre clavier",
		Reference:    "CLA-01",
		PrixUnitaire: 300,
	})
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestCreerProduitChampsOptionnels(t *testing.T) {
	repo := newFakeRepo()
	uc := NewProduitUseCase(repo, nil, zap.NewNop())

	p, err := uc.CreerProduit(context.Background(), &dto.CreerProduitInput{
		Nom:          "Clavier",
		Reference:    "CLA-01",
		PrixUnitaire: 500,
		StockActuel:  10,
	})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Nil(t, p.Description)
	assert.Nil(t, p.PrixVente)
	assert.Nil(t, p.FournisseurID)
}

func TestReserverStock(t *testing.T) {
	repo := newFakeRepo(&model.Produit{ID: 1, Nom: "Clavier", Reference: "CLA-01", PrixUnitaire: 500, StockActuel: 10})
	uc := NewProduitUseCase(repo, nil, zap.NewNop())

	p, err := uc.ReserverStock(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, "Clavier", p.Nom)
	assert.Equal(t, 500.0, p.PrixUnitaire)
	assert.Equal(t, 7, p.StockActuel)
	assert.Equal(t, 7, repo.produits[1].StockActuel)
}

func TestReserverStockInsuffisant(t *testing.T) {
	repo := newFakeRepo(&model.Produit{ID: 1, Nom: "Clavier", Reference: "CLA-01", StockActuel: 2})
	uc := NewProduitUseCase(repo, nil, zap.NewNop())

	_, err := uc.ReserverStock(context.Background(), 1, 3)
	var stockErr *model.StockInsuffisantError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.Demandee)
	assert.Equal(t, 2, stockErr.Disponible)
	assert.Equal(t, 2, repo.produits[1].StockActuel)
}

func TestReserverStockQuantiteInvalide(t *testing.T) {
	uc := NewProduitUseCase(newFakeRepo(), nil, zap.NewNop())

	_, err := uc.ReserverStock(context.Background(), 1, 0)
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestReserverStockProduitInconnu(t *testing.T) {
	uc := NewProduitUseCase(newFakeRepo(), nil, zap.NewNop())

	_, err := uc.ReserverStock(context.Background(), 42, 1)
	require.ErrorIs(t, err, model.ErrIntrouvable)
}

func TestModifierProduitIntrouvable(t *testing.T) {
	uc := NewProduitUseCase(newFakeRepo(), nil, zap.NewNop())

	_, err := uc.ModifierProduit(context.Background(), &dto.ModifierProduitInput{ID: 42, Nom: "X", Reference: "X-01"})
	require.ErrorIs(t, err, model.ErrIntrouvable)
}

func TestRestaurerStock(t *testing.T) {
	repo := newFakeRepo(
		&model.Produit{ID: 1, Nom: "Clavier", Reference: "CLA-01", StockActuel: 5},
		&model.Produit{ID: 2, Nom: "Souris", Reference: "SOU-01", StockActuel: 1},
	)
	uc := NewProduitUseCase(repo, nil, zap.NewNop())

	require.NoError(t, uc.RestaurerStock(context.Background(), map[int64]int{1: 3, 2: 2}))
	assert.Equal(t, 8, repo.produits[1].StockActuel)
	assert.Equal(t, 3, repo.produits[2].StockActuel)
}
