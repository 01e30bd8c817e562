package model

type Fournisseur struct {
	ID      int64   `db:"id" json:"id"`
	Nom     string  `db:"nom" json:"nom"`
	Contact *string `db:"contact" json:"contact"` // Nullable
}
