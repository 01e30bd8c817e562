package model

import "time"

// Statuts de commande.
const (
	StatutEnAttente = "En attente"
	StatutConfirmee = "Confirmée"
	StatutLivree    = "Livrée"
	StatutAnnulee   = "Annulée"
)

// Sens de l'effet stock d'une commande. Une commande 'entree' (réapprovisionnement
// fournisseur) a incrémenté le stock à la création; une commande 'sortie' (panier
// finalisé) a vu son stock déduit à l'ajout au panier. La suppression inverse
// l'effet enregistré.
const (
	SensEntree = "entree"
	SensSortie = "sortie"
)

type Commande struct {
	ID            int64            `db:"id" json:"id"`
	FournisseurID int64            `db:"fournisseur_id" json:"fournisseur_id"`
	Societe       string           `db:"societe" json:"societe"`
	DateCommande  time.Time        `db:"date_commande" json:"date_commande"`
	Statut        string           `db:"statut" json:"statut"`
	CoutTotal     float64          `db:"cout_total" json:"cout_total"`
	SensStock     string           `db:"sens_stock" json:"sens_stock"`
	Details       []DetailCommande `db:"-" json:"details"` // Joined data
}

type DetailCommande struct {
	ID         int64   `db:"id" json:"id"`
	CommandeID int64   `db:"commande_id" json:"commande_id"`
	ProduitID  int64   `db:"produit_id" json:"produit_id"`
	Quantite   int     `db:"quantite" json:"quantite"`
	PrixAchat  float64 `db:"prix_achat" json:"prix_achat"` // Prix au moment de l'achat, jamais relu
}

// StatutValide reports whether s is one of the known order statuses.
func StatutValide(s string) bool {
	switch s {
	case StatutEnAttente, StatutConfirmee, StatutLivree, StatutAnnulee:
		return true
	}
	return false
}

// StatProduit is one row of the per-product sales aggregation.
type StatProduit struct {
	ProduitID      int64   `db:"produit_id" json:"produit_id"`
	NomProduit     string  `db:"nom_produit" json:"nom_produit"`
	QuantiteVendue int     `db:"quantite_vendue" json:"quantite_vendue"`
	RevenuTotal    float64 `db:"revenu_total" json:"revenu_total"`
}
