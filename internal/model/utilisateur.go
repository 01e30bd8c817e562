package model

import "time"

type Utilisateur struct {
	ID             int64      `db:"id" json:"id"`
	NomUtilisateur string     `db:"nom_utilisateur" json:"nom_utilisateur"`
	MotDePasseHash string     `db:"mot_de_passe_hash" json:"-"`
	EstAdmin       bool       `db:"est_admin" json:"est_admin"`
	EstActif       bool       `db:"est_actif" json:"est_actif"`
	FinAbonnement  *time.Time `db:"fin_abonnement" json:"fin_abonnement"` // Nullable, admins n'expirent pas
	IndicatifPays  string     `db:"indicatif_pays" json:"indicatif_pays"`
	Telephone      string     `db:"telephone" json:"telephone"`
	CreeLe         time.Time  `db:"cree_le" json:"cree_le"`
}
