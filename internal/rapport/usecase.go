package rapport

import "context"

const (
	FormatTexte = "txt"
	FormatXLSX  = "xlsx"
)

// Fichier is a generated report ready to stream to the client.
type Fichier struct {
	Nom         string
	ContentType string
	Donnees     []byte
}

type UseCase interface {
	RapportAchats(ctx context.Context, format string) (*Fichier, error)
	RapportCharges(ctx context.Context, format string) (*Fichier, error)
}
