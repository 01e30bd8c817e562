package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lordcript/gestion-achatss.io/internal/commande/dto"
	"github.com/lordcript/gestion-achatss.io/internal/model"
)

// fakeRepo rejoue en mémoire la sémantique transactionnelle du dépôt SQL:
// effet stock à la création pour 'entree', inversion à la suppression.
type fakeRepo struct {
	commandes map[int64]*model.Commande
	stocks    map[int64]int
	nextID    int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		commandes: make(map[int64]*model.Commande),
		stocks:    map[int64]int{1: 10, 2: 3},
	}
}

func (f *fakeRepo) Create(_ context.Context, c *model.Commande) error {
	f.nextID++
	c.ID = f.nextID
	for i := range c.Details {
		c.Details[i].CommandeID = c.ID
		if c.SensStock == model.SensEntree {
			f.stocks[c.Details[i].ProduitID] += c.Details[i].Quantite
		}
	}
	copie := *c
	f.commandes[c.ID] = &copie
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (*model.Commande, error) {
	c, ok := f.commandes[id]
	if !ok {
		return nil, nil
	}
	copie := *c
	return &copie, nil
}

func (f *fakeRepo) FindAll(context.Context) ([]model.Commande, error) { return nil, nil }

func (f *fakeRepo) UpdateStatut(_ context.Context, id int64, statut string) (bool, error) {
	c, ok := f.commandes[id]
	if !ok {
		return false, nil
	}
	c.Statut = statut
	return true, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) (bool, error) {
	c, ok := f.commandes[id]
	if !ok {
		return false, nil
	}
	for _, d := range c.Details {
		if _, existe := f.stocks[d.ProduitID]; !existe {
			continue
		}
		if c.SensStock == model.SensSortie {
			f.stocks[d.ProduitID] += d.Quantite
		} else {
			f.stocks[d.ProduitID] -= d.Quantite
			if f.stocks[d.ProduitID] < 0 {
				f.stocks[d.ProduitID] = 0
			}
		}
	}
	delete(f.commandes, id)
	return true, nil
}

func (f *fakeRepo) StatsParProduit(context.Context) ([]model.StatProduit, error) { return nil, nil }

type fakeFournisseurs struct {
	ids map[int64]bool
}

func (f *fakeFournisseurs) FindByID(_ context.Context, id int64) (*model.Fournisseur, error) {
	if !f.ids[id] {
		return nil, nil
	}
	return &model.Fournisseur{ID: id, Nom: "ACME"}, nil
}

func (f *fakeFournisseurs) Create(context.Context, *model.Fournisseur) error { return nil }
func (f *fakeFournisseurs) FindAll(context.Context) ([]model.Fournisseur, error) {
	return nil, nil
}
func (f *fakeFournisseurs) Update(context.Context, *model.Fournisseur) error { return nil }

func newTestUseCase() (*fakeRepo, *fakeFournisseurs, *commandeUseCase) {
	repo := newFakeRepo()
	fournisseurs := &fakeFournisseurs{ids: map[int64]bool{99: true}}
	uc := NewCommandeUseCase(repo, fournisseurs, nil, zap.NewNop()).(*commandeUseCase)
	return repo, fournisseurs, uc
}

func TestCreerCommandeCalculeLeCoutTotal(t *testing.T) {
	repo, _, uc := newTestUseCase()

	c, err := uc.CreerCommande(context.Background(), &dto.CreerCommandeInput{
		FournisseurID: 99,
		Societe:       "ACME",
		Details: []dto.LigneCommandeInput{
			{ProduitID: 1, Quantite: 5, PrixAchat: 100},
			{ProduitID: 2, Quantite: 2, PrixAchat: 50},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 600.0, c.CoutTotal)
	assert.Equal(t, model.StatutEnAttente, c.Statut)
	assert.Equal(t, model.SensEntree, c.SensStock)

	// Réapprovisionnement: le stock monte à la création.
	assert.Equal(t, 15, repo.stocks[1])
	assert.Equal(t, 5, repo.stocks[2])
}

func TestCreerCommandeSansLigne(t *testing.T) {
	_, _, uc := newTestUseCase()

	_, err := uc.CreerCommande(context.Background(), &dto.CreerCommandeInput{FournisseurID: 99})
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestCreerCommandeStatutInconnu(t *testing.T) {
	_, _, uc := newTestUseCase()

	_, err := uc.CreerCommande(context.Background(), &dto.CreerCommandeInput{
		FournisseurID: 99,
		Statut:        "Expédiée",
		Details:       []dto.LigneCommandeInput{{ProduitID: 1, Quantite: 1, PrixAchat: 10}},
	})
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestCreerCommandeFournisseurInconnu(t *testing.T) {
	_, _, uc := newTestUseCase()

	_, err := uc.CreerCommande(context.Background(), &dto.CreerCommandeInput{
		FournisseurID: 12345,
		Details:       []dto.LigneCommandeInput{{ProduitID: 1, Quantite: 1, PrixAchat: 10}},
	})
	require.ErrorIs(t, err, model.ErrIntrouvable)
}

func TestEnregistrerVenteNeTouchePasLeStock(t *testing.T) {
	repo, _, uc := newTestUseCase()

	c, err := uc.EnregistrerVente(context.Background(), 99, "ACME", []model.DetailCommande{
		{ProduitID: 1, Quantite: 3, PrixAchat: 500},
	})
	require.NoError(t, err)
	assert.Equal(t, 1500.0, c.CoutTotal)
	assert.Equal(t, model.SensSortie, c.SensStock)
	assert.Equal(t, 10, repo.stocks[1])
}

func TestEnregistrerVenteFournisseurInconnu(t *testing.T) {
	repo, _, uc := newTestUseCase()

	_, err := uc.EnregistrerVente(context.Background(), 12345, "ACME", []model.DetailCommande{
		{ProduitID: 1, Quantite: 1, PrixAchat: 10},
	})
	require.ErrorIs(t, err, model.ErrIntrouvable)
	assert.Empty(t, repo.commandes)
}

func TestSupprimerCommandeSortieRestaureLeStock(t *testing.T) {
	repo, _, uc := newTestUseCase()

	c, err := uc.EnregistrerVente(context.Background(), 99, "", []model.DetailCommande{
		{ProduitID: 1, Quantite: 4, PrixAchat: 100},
	})
	require.NoError(t, err)

	require.NoError(t, uc.SupprimerCommande(context.Background(), c.ID))
	assert.Equal(t, 14, repo.stocks[1])
}

func TestSupprimerCommandeEntreeSansPasserSousZero(t *testing.T) {
	repo, _, uc := newTestUseCase()

	c, err := uc.CreerCommande(context.Background(), &dto.CreerCommandeInput{
		FournisseurID: 99,
		Details:       []dto.LigneCommandeInput{{ProduitID: 2, Quantite: 7, PrixAchat: 10}},
	})
	require.NoError(t, err)
	assert.Equal(t, 10, repo.stocks[2])

	// Le stock est vendu entre-temps: la suppression plafonne à zéro.
	repo.stocks[2] = 5
	require.NoError(t, uc.SupprimerCommande(context.Background(), c.ID))
	assert.Equal(t, 0, repo.stocks[2])
}

func TestSupprimerCommandeDeuxFois(t *testing.T) {
	repo, _, uc := newTestUseCase()

	c, err := uc.EnregistrerVente(context.Background(), 99, "", []model.DetailCommande{
		{ProduitID: 1, Quantite: 2, PrixAchat: 10},
	})
	require.NoError(t, err)

	require.NoError(t, uc.SupprimerCommande(context.Background(), c.ID))
	err = uc.SupprimerCommande(context.Background(), c.ID)
	require.ErrorIs(t, err, model.ErrIntrouvable)

	// Pas de double restauration.
	assert.Equal(t, 12, repo.stocks[1])
}

func TestChangerStatut(t *testing.T) {
	_, _, uc := newTestUseCase()

	c, err := uc.EnregistrerVente(context.Background(), 99, "", []model.DetailCommande{
		{ProduitID: 1, Quantite: 1, PrixAchat: 10},
	})
	require.NoError(t, err)

	maj, err := uc.ChangerStatut(context.Background(), c.ID, model.StatutLivree)
	require.NoError(t, err)
	assert.Equal(t, model.StatutLivree, maj.Statut)

	_, err = uc.ChangerStatut(context.Background(), c.ID, "N'importe quoi")
	require.ErrorIs(t, err, model.ErrValidation)

	_, err = uc.ChangerStatut(context.Background(), 12345, model.StatutLivree)
	require.ErrorIs(t, err, model.ErrIntrouvable)
}
