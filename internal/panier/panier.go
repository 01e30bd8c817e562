// Package panier holds the per-user in-memory carts. Lines carry a snapshot of
// the product name and price taken when the line entered the cart; the product
// row is never re-read afterwards.
package panier

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/lordcript/gestion-achatss.io/internal/commande"
	"github.com/lordcript/gestion-achatss.io/internal/model"
	"github.com/lordcript/gestion-achatss.io/internal/produit"
)

type Ligne struct {
	ProduitID int64   `json:"produit_id"`
	Nom       string  `json:"nom"`
	PrixAchat float64 `json:"prix_achat"`
	Quantite  int     `json:"quantite"`
}

type Contenu struct {
	Lignes []Ligne `json:"lignes"`
	Total  float64 `json:"total"`
}

type Manager struct {
	mu        sync.Mutex
	paniers   map[int64]map[int64]*Ligne // utilisateur → produit → ligne
	produits  produit.UseCase
	commandes commande.UseCase
	logger    *zap.Logger
}

func NewManager(produits produit.UseCase, commandes commande.UseCase, log *zap.Logger) *Manager {
	return &Manager{
		paniers:   make(map[int64]map[int64]*Ligne),
		produits:  produits,
		commandes: commandes,
		logger:    log,
	}
}

// Ajouter reserves the quantity on the persisted stock, then merges the line
// into the cart. The first snapshot of name and price wins on a repeat add.
func (m *Manager) Ajouter(ctx context.Context, utilisateurID, produitID int64, quantite int) (*Contenu, error) {
	p, err := m.produits.ReserverStock(ctx, produitID, quantite)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	lignes := m.paniers[utilisateurID]
	if lignes == nil {
		lignes = make(map[int64]*Ligne)
		m.paniers[utilisateurID] = lignes
	}
	if l, ok := lignes[produitID]; ok {
		l.Quantite += quantite
	} else {
		lignes[produitID] = &Ligne{
			ProduitID: produitID,
			Nom:       p.Nom,
			PrixAchat: p.PrixUnitaire,
			Quantite:  quantite,
		}
	}
	return m.contenu(utilisateurID), nil
}

// Vider restores every reserved quantity in one transaction, then empties the
// cart. On restoration failure the cart is left untouched.
func (m *Manager) Vider(ctx context.Context, utilisateurID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	lignes := m.paniers[utilisateurID]
	if len(lignes) == 0 {
		return nil
	}

	quantites := make(map[int64]int, len(lignes))
	for id, l := range lignes {
		quantites[id] = l.Quantite
	}
	if err := m.produits.RestaurerStock(ctx, quantites); err != nil {
		return err
	}

	delete(m.paniers, utilisateurID)
	m.logger.Info("panier vidé", zap.Int64("utilisateur_id", utilisateurID))
	return nil
}

// Contenu returns the current lines and running total.
func (m *Manager) Contenu(utilisateurID int64) *Contenu {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.contenu(utilisateurID)
}

// Finaliser turns the cart into a 'sortie' order. The stock was already
// deducted line by line, so the checkout itself never touches it; the cart is
// cleared without restoration.
func (m *Manager) Finaliser(ctx context.Context, utilisateurID, fournisseurID int64, societe string) (*model.Commande, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lignes := m.paniers[utilisateurID]
	if len(lignes) == 0 {
		return nil, model.ErrPanierVide
	}

	details := make([]model.DetailCommande, 0, len(lignes))
	for _, l := range lignes {
		details = append(details, model.DetailCommande{
			ProduitID: l.ProduitID,
			Quantite:  l.Quantite,
			PrixAchat: l.PrixAchat,
		})
	}
	sort.Slice(details, func(i, j int) bool { return details[i].ProduitID < details[j].ProduitID })

	c, err := m.commandes.EnregistrerVente(ctx, fournisseurID, societe, details)
	if err != nil {
		return nil, err
	}

	delete(m.paniers, utilisateurID)
	m.logger.Info("panier finalisé",
		zap.Int64("utilisateur_id", utilisateurID),
		zap.Int64("commande_id", c.ID),
		zap.Float64("cout_total", c.CoutTotal),
	)
	return c, nil
}

func (m *Manager) contenu(utilisateurID int64) *Contenu {
	contenu := &Contenu{Lignes: make([]Ligne, 0, len(m.paniers[utilisateurID]))}
	for _, l := range m.paniers[utilisateurID] {
		contenu.Lignes = append(contenu.Lignes, *l)
		contenu.Total += float64(l.Quantite) * l.PrixAchat
	}
	sort.Slice(contenu.Lignes, func(i, j int) bool {
		return contenu.Lignes[i].ProduitID < contenu.Lignes[j].ProduitID
	})
	return contenu
}
