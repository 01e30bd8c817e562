package dto

type CreerProduitInput struct {
	Nom           string
	Description   string
	Reference     string
	PrixUnitaire  float64
	PrixVente     float64 // 0 = non renseigné
	StockActuel   int
	FournisseurID int64 // 0 = non renseigné
}

type ModifierProduitInput struct {
	ID            int64
	Nom           string
	Description   string
	Reference     string
	PrixUnitaire  float64
	PrixVente     float64
	StockActuel   int
	FournisseurID int64
}
