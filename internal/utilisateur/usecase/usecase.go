package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/lordcript/gestion-achatss.io/config"
	"github.com/lordcript/gestion-achatss.io/internal/model"
	"github.com/lordcript/gestion-achatss.io/internal/utilisateur"
	"github.com/lordcript/gestion-achatss.io/internal/utilisateur/dto"
)

const dureeActivation = 30 * 24 * time.Hour

type utilisateurUseCase struct {
	repo   utilisateur.Repository
	jwtCfg *config.JWTConfig
	logger *zap.Logger
}

func NewUtilisateurUseCase(repo utilisateur.Repository, jwtCfg *config.JWTConfig, log *zap.Logger) utilisateur.UseCase {
	return &utilisateurUseCase{
		repo:   repo,
		jwtCfg: jwtCfg,
		logger: log,
	}
}

func (uc *utilisateurUseCase) Inscrire(ctx context.Context, input *dto.InscriptionInput) (*model.Utilisateur, error) {
	existant, err := uc.repo.FindByNom(ctx, input.NomUtilisateur)
	if err != nil {
		return nil, err
	}
	if existant != nil {
		return nil, fmt.Errorf("nom d'utilisateur %q déjà pris: %w", input.NomUtilisateur, model.ErrValidation)
	}

	existant, err = uc.repo.FindByTelephone(ctx, input.IndicatifPays, input.Telephone)
	if err != nil {
		return nil, err
	}
	if existant != nil {
		return nil, fmt.Errorf("numéro de téléphone déjà enregistré: %w", model.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.MotDePasse), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// Le compte attend l'activation de son abonnement par un administrateur.
	u := &model.Utilisateur{
		NomUtilisateur: input.NomUtilisateur,
		MotDePasseHash: string(hash),
		EstAdmin:       false,
		EstActif:       false,
		IndicatifPays:  input.IndicatifPays,
		Telephone:      input.Telephone,
		CreeLe:         time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	uc.logger.Info("utilisateur inscrit", zap.String("nom_utilisateur", u.NomUtilisateur))
	return u, nil
}

func (uc *utilisateurUseCase) Connecter(ctx context.Context, nomUtilisateur, motDePasse string) (string, *model.Utilisateur, error) {
	u, err := uc.repo.FindByNom(ctx, nomUtilisateur)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, model.ErrAuthentification
	}
	if bcrypt.CompareHashAndPassword([]byte(u.MotDePasseHash), []byte(motDePasse)) != nil {
		return "", nil, model.ErrAuthentification
	}

	if u.FinAbonnement != nil && u.FinAbonnement.Before(time.Now()) {
		if u.EstActif {
			u.EstActif = false
			if err := uc.repo.Update(ctx, u); err != nil {
				return "", nil, err
			}
		}
		return "", nil, fmt.Errorf("abonnement expiré le %s: %w",
			u.FinAbonnement.Format("2006-01-02"), model.ErrAccesRefuse)
	}
	if !u.EstActif {
		return "", nil, fmt.Errorf("compte inactif: %w", model.ErrAccesRefuse)
	}

	claims := jwt.MapClaims{
		"sub":       strconv.FormatInt(u.ID, 10),
		"est_admin": u.EstAdmin,
		"exp":       time.Now().Add(time.Duration(uc.jwtCfg.TTLHours) * time.Hour).Unix(),
		"iat":       time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(uc.jwtCfg.SecretKey))
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (uc *utilisateurUseCase) ActiverAbonnement(ctx context.Context, nomUtilisateur string) (*model.Utilisateur, error) {
	u, err := uc.repo.FindByNom(ctx, nomUtilisateur)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("utilisateur %q: %w", nomUtilisateur, model.ErrIntrouvable)
	}

	fin := time.Now().UTC().Add(dureeActivation)
	u.EstActif = true
	u.FinAbonnement = &fin
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	uc.logger.Info("abonnement activé",
		zap.String("nom_utilisateur", u.NomUtilisateur),
		zap.Time("fin_abonnement", fin),
	)
	return u, nil
}

func (uc *utilisateurUseCase) SuspendreAbonnement(ctx context.Context, nomUtilisateur string) (*model.Utilisateur, error) {
	u, err := uc.repo.FindByNom(ctx, nomUtilisateur)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("utilisateur %q: %w", nomUtilisateur, model.ErrIntrouvable)
	}

	u.EstActif = false
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	uc.logger.Info("abonnement suspendu", zap.String("nom_utilisateur", u.NomUtilisateur))
	return u, nil
}

func (uc *utilisateurUseCase) ListerUtilisateurs(ctx context.Context) ([]model.Utilisateur, error) {
	return uc.repo.FindAll(ctx)
}
