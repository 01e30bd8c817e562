package utilisateur

import (
	"context"

	"github.com/lordcript/gestion-achatss.io/internal/model"
)

type Repository interface {
	Create(ctx context.Context, u *model.Utilisateur) error
	FindByNom(ctx context.Context, nomUtilisateur string) (*model.Utilisateur, error)
	FindByTelephone(ctx context.Context, indicatifPays, telephone string) (*model.Utilisateur, error)
	FindAll(ctx context.Context) ([]model.Utilisateur, error)
	Update(ctx context.Context, u *model.Utilisateur) error
}
