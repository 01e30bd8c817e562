package model

import (
	"errors"
	"fmt"
)

// ErrIntrouvable signals a reference to a nonexistent entity.
var ErrIntrouvable = errors.New("introuvable")

// ErrValidation wraps business-rule violations on create/update payloads.
var ErrValidation = errors.New("validation")

// ErrPanierVide is returned when finalizing an empty cart.
var ErrPanierVide = errors.New("le panier est vide")

// ErrAuthentification covers bad credentials and unusable accounts at login.
var ErrAuthentification = errors.New("identifiants invalides")

// ErrAccesRefuse is returned when the caller lacks the required role or an
// active subscription.
var ErrAccesRefuse = errors.New("accès refusé")

// StockInsuffisantError reports a cart addition exceeding availability.
type StockInsuffisantError struct {
	ProduitID  int64
	Nom        string
	Demandee   int
	Disponible int
}

func (e *StockInsuffisantError) Error() string {
	return fmt.Sprintf("stock insuffisant pour %s: demandé %d, disponible %d",
		e.Nom, e.Demandee, e.Disponible)
}
