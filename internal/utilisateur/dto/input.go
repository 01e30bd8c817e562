package dto

type InscriptionInput struct {
	NomUtilisateur string `json:"nom_utilisateur" binding:"required,min=3"`
	MotDePasse     string `json:"mot_de_passe" binding:"required,min=6"`
	IndicatifPays  string `json:"indicatif_pays" binding:"required"`
	Telephone      string `json:"telephone" binding:"required"`
}

type ConnexionInput struct {
	NomUtilisateur string `json:"nom_utilisateur" binding:"required"`
	MotDePasse     string `json:"mot_de_passe" binding:"required"`
}
