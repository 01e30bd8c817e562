package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lordcript/gestion-achatss.io/internal/model"
)

func TestStatus(t *testing.T) {
	cas := []struct {
		nom    string
		err    error
		statut int
	}{
		{"introuvable", fmt.Errorf("produit 4: %w", model.ErrIntrouvable), http.StatusNotFound},
		{"validation", fmt.Errorf("référence: %w", model.ErrValidation), http.StatusBadRequest},
		{"panier vide", model.ErrPanierVide, http.StatusBadRequest},
		{"authentification", model.ErrAuthentification, http.StatusUnauthorized},
		{"accès refusé", fmt.Errorf("compte inactif: %w", model.ErrAccesRefuse), http.StatusForbidden},
		{"stock insuffisant", &model.StockInsuffisantError{Nom: "Clavier", Demandee: 5, Disponible: 2}, http.StatusConflict},
		{"inconnu", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, c := range cas {
		t.Run(c.nom, func(t *testing.T) {
			assert.Equal(t, c.statut, Status(c.err))
		})
	}
}
