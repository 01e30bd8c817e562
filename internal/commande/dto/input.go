package dto

type LigneCommandeInput struct {
	ProduitID int64   `json:"produit_id" binding:"required"`
	Quantite  int     `json:"quantite" binding:"required,gt=0"`
	PrixAchat float64 `json:"prix_achat" binding:"gte=0"`
}

type CreerCommandeInput struct {
	FournisseurID int64                `json:"fournisseur_id" binding:"required"`
	Societe       string               `json:"societe"`
	Statut        string               `json:"statut"`
	Details       []LigneCommandeInput `json:"details"`
}
