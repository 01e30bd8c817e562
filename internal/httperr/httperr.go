// Package httperr maps domain errors onto HTTP status codes.
package httperr

import (
	"errors"
	"net/http"

	"github.com/lordcript/gestion-achatss.io/internal/model"
)

func Status(err error) int {
	var stockErr *model.StockInsuffisantError
	switch {
	case errors.Is(err, model.ErrIntrouvable):
		return http.StatusNotFound
	case errors.Is(err, model.ErrValidation), errors.Is(err, model.ErrPanierVide):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrAuthentification):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrAccesRefuse):
		return http.StatusForbidden
	case errors.As(err, &stockErr):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
