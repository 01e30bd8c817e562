package utilisateur

import (
	"context"

	"github.com/lordcript/gestion-achatss.io/internal/model"
	"github.com/lordcript/gestion-achatss.io/internal/utilisateur/dto"
)

type UseCase interface {
	Inscrire(ctx context.Context, input *dto.InscriptionInput) (*model.Utilisateur, error)
	// Connecter checks the password and the subscription, then returns a signed
	// token. An expired subscription deactivates the account and fails the login.
	Connecter(ctx context.Context, nomUtilisateur, motDePasse string) (string, *model.Utilisateur, error)
	ActiverAbonnement(ctx context.Context, nomUtilisateur string) (*model.Utilisateur, error)
	SuspendreAbonnement(ctx context.Context, nomUtilisateur string) (*model.Utilisateur, error)
	ListerUtilisateurs(ctx context.Context) ([]model.Utilisateur, error)
}
