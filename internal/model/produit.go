package model

type Produit struct {
	ID            int64    `db:"id" json:"id"`
	Nom           string   `db:"nom" json:"nom"`
	Description   *string  `db:"description" json:"description"` // Nullable
	Reference     string   `db:"reference" json:"reference"`
	PrixUnitaire  float64  `db:"prix_unitaire" json:"prix_unitaire"`
	PrixVente     *float64 `db:"prix_vente" json:"prix_vente"` // Nullable
	StockActuel   int      `db:"stock_actuel" json:"stock_actuel"`
	FournisseurID *int64   `db:"fournisseur_id" json:"fournisseur_id"` // Nullable
}
