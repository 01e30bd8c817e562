package handler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lordcript/gestion-achatss.io/internal/model"
	"github.com/lordcript/gestion-achatss.io/internal/produit/dto"
)

type fakeUseCase struct {
	produits map[int64]*model.Produit
	nextID   int64
}

func (f *fakeUseCase) CreerProduit(_ context.Context, input *dto.CreerProduitInput) (*model.Produit, error) {
	for _, p := range f.produits {
		if p.Reference == input.Reference {
			return nil, fmt.Errorf("%w: la référence %q est déjà utilisée", model.ErrValidation, input.Reference)
		}
	}
	f.nextID++
	p := &model.Produit{
		ID:           f.nextID,
		Nom:          input.Nom,
		Reference:    input.Reference,
		PrixUnitaire: input.PrixUnitaire,
		StockActuel:  input.StockActuel,
	}
	f.produits[p.ID] = p
	return p, nil
}

func (f *fakeUseCase) GetProduit(_ context.Context, id int64) (*model.Produit, error) {
	p, ok := f.produits[id]
	if !ok {
		return nil, fmt.Errorf("produit %d: %w", id, model.ErrIntrouvable)
	}
	return p, nil
}

func (f *fakeUseCase) ListerProduits(context.Context) ([]model.Produit, error) {
	var produits []model.Produit
	for _, p := range f.produits {
		produits = append(produits, *p)
	}
	return produits, nil
}

func (f *fakeUseCase) ModifierProduit(context.Context, *dto.ModifierProduitInput) (*model.Produit, error) {
	return nil, nil
}
func (f *fakeUseCase) SupprimerProduit(context.Context, int64) error { return nil }
func (f *fakeUseCase) ReserverStock(context.Context, int64, int) (*model.Produit, error) {
	return nil, nil
}
func (f *fakeUseCase) RestaurerStock(context.Context, map[int64]int) error { return nil }

func newTestRouter() (*gin.Engine, *fakeUseCase) {
	gin.SetMode(gin.TestMode)
	uc := &fakeUseCase{produits: make(map[int64]*model.Produit)}
	h := NewProduitHandler(uc, zap.NewNop())

	r := gin.New()
	r.POST("/produits", h.Creer)
	r.GET("/produits/:id", h.Get)
	r.GET("/produits/stock/:id", h.Stock)
	return r, uc
}

func TestCreerProduit(t *testing.T) {
	r, uc := newTestRouter()

	corps := `{"nom": "Clavier", "reference": "CLA-01", "prix_unitaire": 500, "stock_actuel": 10}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/produits", bytes.NewBufferString(corps))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, uc.produits, 1)
	assert.Contains(t, w.Body.String(), `"reference":"CLA-01"`)
}

func TestCreerProduitCorpsInvalide(t *testing.T) {
	r, _ := newTestRouter()

	// prix_unitaire manquant.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/produits", bytes.NewBufferString(`{"nom": "Clavier", "reference": "CLA-01"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreerProduitReferenceDupliquee(t *testing.T) {
	r, uc := newTestRouter()
	uc.produits[1] = &model.Produit{ID: 1, Nom: "Clavier", Reference: "CLA-01"}

	corps := `{"nom": "Autre", "reference": "CLA-01", "prix_unitaire": 300}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/produits", bytes.NewBufferString(corps))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "CLA-01")
}

func TestGetProduitIntrouvable(t *testing.T) {
	r, _ := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/produits/42", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStock(t *testing.T) {
	r, uc := newTestRouter()
	uc.produits[1] = &model.Produit{ID: 1, Nom: "Clavier", Reference: "CLA-01", PrixUnitaire: 500, StockActuel: 7}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/produits/stock/1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"produit_id": 1, "nom": "Clavier", "prix_unitaire": 500, "stock_actuel": 7}`, w.Body.String())
}
