package usecase

import (
	"bytes"
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/lordcript/gestion-achatss.io/internal/model"
	"github.com/lordcript/gestion-achatss.io/internal/rapport"
)

const (
	contentTypeTexte = "text/plain; charset=utf-8"
	contentTypeXLSX  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type rapportUseCase struct {
	repo   rapport.Repository
	logger *zap.Logger
}

func NewRapportUseCase(repo rapport.Repository, log *zap.Logger) rapport.UseCase {
	return &rapportUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *rapportUseCase) RapportAchats(ctx context.Context, format string) (*rapport.Fichier, error) {
	lignes, err := uc.repo.LignesAchats(ctx)
	if err != nil {
		return nil, err
	}

	switch format {
	case "", rapport.FormatTexte:
		return achatsTexte(lignes)
	case rapport.FormatXLSX:
		return achatsXLSX(lignes)
	default:
		return nil, fmt.Errorf("format inconnu %q: %w", format, model.ErrValidation)
	}
}

func (uc *rapportUseCase) RapportCharges(ctx context.Context, format string) (*rapport.Fichier, error) {
	charges, err := uc.repo.Charges(ctx)
	if err != nil {
		return nil, err
	}

	switch format {
	case "", rapport.FormatTexte:
		return chargesTexte(charges)
	case rapport.FormatXLSX:
		return chargesXLSX(charges)
	default:
		return nil, fmt.Errorf("format inconnu %q: %w", format, model.ErrValidation)
	}
}

func achatsTexte(lignes []rapport.LigneAchat) (*rapport.Fichier, error) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COMMANDE\tDATE\tPRODUIT\tQUANTITE\tMONTANT")

	var total float64
	for _, l := range lignes {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.2f\n",
			l.CommandeID, l.DateCommande.Format("2006-01-02"), l.NomProduit, l.Quantite, l.Montant)
		total += l.Montant
	}
	fmt.Fprintf(w, "\t\t\tTOTAL\t%.2f\n", total)
	if err := w.Flush(); err != nil {
		return nil, err
	}

	return &rapport.Fichier{
		Nom:         "rapport_achats.txt",
		ContentType: contentTypeTexte,
		Donnees:     buf.Bytes(),
	}, nil
}

func achatsXLSX(lignes []rapport.LigneAchat) (*rapport.Fichier, error) {
	f := excelize.NewFile()
	defer f.Close()

	feuille := f.GetSheetName(0)
	entetes := []string{"Commande", "Date", "Produit", "Quantité", "Montant"}
	for i, e := range entetes {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(feuille, cell, e); err != nil {
			return nil, err
		}
	}

	var total float64
	for i, l := range lignes {
		valeurs := []interface{}{l.CommandeID, l.DateCommande.Format("2006-01-02"), l.NomProduit, l.Quantite, l.Montant}
		for j, v := range valeurs {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(feuille, cell, v); err != nil {
				return nil, err
			}
		}
		total += l.Montant
	}
	totalCell, _ := excelize.CoordinatesToCellName(5, len(lignes)+2)
	if err := f.SetCellValue(feuille, totalCell, total); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return &rapport.Fichier{
		Nom:         "rapport_achats.xlsx",
		ContentType: contentTypeXLSX,
		Donnees:     buf.Bytes(),
	}, nil
}

func chargesTexte(charges []model.Charge) (*rapport.Fichier, error) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tNATURE\tMONTANT")

	var total float64
	for _, ch := range charges {
		fmt.Fprintf(w, "%s\t%s\t%.2f\n", ch.DateCharge.Format("2006-01-02"), ch.Nature, ch.Montant)
		total += ch.Montant
	}
	fmt.Fprintf(w, "\tTOTAL\t%.2f\n", total)
	if err := w.Flush(); err != nil {
		return nil, err
	}

	return &rapport.Fichier{
		Nom:         "rapport_charges.txt",
		ContentType: contentTypeTexte,
		Donnees:     buf.Bytes(),
	}, nil
}

func chargesXLSX(charges []model.Charge) (*rapport.Fichier, error) {
	f := excelize.NewFile()
	defer f.Close()

	feuille := f.GetSheetName(0)
	entetes := []string{"Date", "Nature", "Montant"}
	for i, e := range entetes {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(feuille, cell, e); err != nil {
			return nil, err
		}
	}

	var total float64
	for i, ch := range charges {
		valeurs := []interface{}{ch.DateCharge.Format("2006-01-02"), ch.Nature, ch.Montant}
		for j, v := range valeurs {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(feuille, cell, v); err != nil {
				return nil, err
			}
		}
		total += ch.Montant
	}
	totalCell, _ := excelize.CoordinatesToCellName(3, len(charges)+2)
	if err := f.SetCellValue(feuille, totalCell, total); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return &rapport.Fichier{
		Nom:         "rapport_charges.xlsx",
		ContentType: contentTypeXLSX,
		Donnees:     buf.Bytes(),
	}, nil
}
