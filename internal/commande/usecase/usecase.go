package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lordcript/gestion-achatss.io/internal/broker"
	"github.com/lordcript/gestion-achatss.io/internal/commande"
	"github.com/lordcript/gestion-achatss.io/internal/commande/dto"
	"github.com/lordcript/gestion-achatss.io/internal/fournisseur"
	"github.com/lordcript/gestion-achatss.io/internal/model"
)

type commandeUseCase struct {
	repo      commande.Repository
	fournRepo fournisseur.Repository
	publisher *broker.Publisher
	logger    *zap.Logger
}

// NewCommandeUseCase wires the order service. publisher may be nil when no
// broker is configured.
func NewCommandeUseCase(repo commande.Repository, fournRepo fournisseur.Repository, publisher *broker.Publisher, log *zap.Logger) commande.UseCase {
	return &commandeUseCase{
		repo:      repo,
		fournRepo: fournRepo,
		publisher: publisher,
		logger:    log,
	}
}

func (uc *commandeUseCase) CreerCommande(ctx context.Context, input *dto.CreerCommandeInput) (*model.Commande, error) {
	if len(input.Details) == 0 {
		return nil, fmt.Errorf("une commande doit contenir au moins une ligne: %w", model.ErrValidation)
	}

	statut := input.Statut
	if statut == "" {
		statut = model.StatutEnAttente
	}
	if !model.StatutValide(statut) {
		return nil, fmt.Errorf("statut inconnu %q: %w", statut, model.ErrValidation)
	}

	f, err := uc.fournRepo.FindByID(ctx, input.FournisseurID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("fournisseur %d: %w", input.FournisseurID, model.ErrIntrouvable)
	}

	c := &model.Commande{
		FournisseurID: input.FournisseurID,
		Societe:       input.Societe,
		DateCommande:  time.Now().UTC(),
		Statut:        statut,
		SensStock:     model.SensEntree,
		Details:       make([]model.DetailCommande, 0, len(input.Details)),
	}
	for _, l := range input.Details {
		if l.Quantite <= 0 {
			return nil, fmt.Errorf("quantité invalide pour le produit %d: %w", l.ProduitID, model.ErrValidation)
		}
		if l.PrixAchat < 0 {
			return nil, fmt.Errorf("prix d'achat négatif pour le produit %d: %w", l.ProduitID, model.ErrValidation)
		}
		c.CoutTotal += float64(l.Quantite) * l.PrixAchat
		c.Details = append(c.Details, model.DetailCommande{
			ProduitID: l.ProduitID,
			Quantite:  l.Quantite,
			PrixAchat: l.PrixAchat,
		})
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	uc.logger.Info("commande créée",
		zap.Int64("commande_id", c.ID),
		zap.String("sens", c.SensStock),
		zap.Float64("cout_total", c.CoutTotal),
	)
	uc.publisher.Publier(ctx, broker.EvenementCommandeCreee, c)
	return c, nil
}

func (uc *commandeUseCase) EnregistrerVente(ctx context.Context, fournisseurID int64, societe string, details []model.DetailCommande) (*model.Commande, error) {
	if len(details) == 0 {
		return nil, fmt.Errorf("vente sans lignes: %w", model.ErrValidation)
	}

	f, err := uc.fournRepo.FindByID(ctx, fournisseurID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("fournisseur %d: %w", fournisseurID, model.ErrIntrouvable)
	}

	c := &model.Commande{
		FournisseurID: fournisseurID,
		Societe:       societe,
		DateCommande:  time.Now().UTC(),
		Statut:        model.StatutEnAttente,
		SensStock:     model.SensSortie,
		Details:       details,
	}
	for _, d := range details {
		c.CoutTotal += float64(d.Quantite) * d.PrixAchat
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	uc.logger.Info("vente enregistrée",
		zap.Int64("commande_id", c.ID),
		zap.Float64("cout_total", c.CoutTotal),
	)
	uc.publisher.Publier(ctx, broker.EvenementCommandeCreee, c)
	return c, nil
}

func (uc *commandeUseCase) GetCommande(ctx context.Context, id int64) (*model.Commande, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("commande %d: %w", id, model.ErrIntrouvable)
	}
	return c, nil
}

func (uc *commandeUseCase) ListerCommandes(ctx context.Context) ([]model.Commande, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *commandeUseCase) ChangerStatut(ctx context.Context, id int64, statut string) (*model.Commande, error) {
	if !model.StatutValide(statut) {
		return nil, fmt.Errorf("statut inconnu %q: %w", statut, model.ErrValidation)
	}
	ok, err := uc.repo.UpdateStatut(ctx, id, statut)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("commande %d: %w", id, model.ErrIntrouvable)
	}
	return uc.repo.FindByID(ctx, id)
}

func (uc *commandeUseCase) SupprimerCommande(ctx context.Context, id int64) error {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("commande %d: %w", id, model.ErrIntrouvable)
	}

	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("commande %d: %w", id, model.ErrIntrouvable)
	}

	uc.logger.Info("commande supprimée",
		zap.Int64("commande_id", id),
		zap.String("sens", c.SensStock),
	)
	uc.publisher.Publier(ctx, broker.EvenementCommandeSupprimee, c)
	return nil
}

func (uc *commandeUseCase) StatistiquesProduits(ctx context.Context) ([]model.StatProduit, error) {
	return uc.repo.StatsParProduit(ctx)
}
