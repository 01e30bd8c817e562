package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lordcript/gestion-achatss.io/internal/httperr"
	"github.com/lordcript/gestion-achatss.io/internal/produit"
	"github.com/lordcript/gestion-achatss.io/internal/produit/dto"
)

type ProduitHandler struct {
	uc     produit.UseCase
	logger *zap.Logger
}

func NewProduitHandler(uc produit.UseCase, log *zap.Logger) *ProduitHandler {
	return &ProduitHandler{
		uc:     uc,
		logger: log,
	}
}

type produitRequest struct {
	Nom           string  `json:"nom" binding:"required"`
	Description   string  `json:"description"`
	Reference     string  `json:"reference" binding:"required"`
	PrixUnitaire  float64 `json:"prix_unitaire" binding:"required,gt=0"`
	PrixVente     float64 `json:"prix_vente" binding:"omitempty,gt=0"`
	StockActuel   int     `json:"stock_actuel" binding:"gte=0"`
	FournisseurID int64   `json:"fournisseur_id"`
}

func (h *ProduitHandler) Creer(c *gin.Context) {
	var req produitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"erreur": err.Error()})
		return
	}

	p, err := h.uc.CreerProduit(c.Request.Context(), &dto.CreerProduitInput{
		Nom:           req.Nom,
		Description:   req.Description,
		Reference:     req.Reference,
		PrixUnitaire:  req.PrixUnitaire,
		PrixVente:     req.PrixVente,
		StockActuel:   req.StockActuel,
		FournisseurID: req.FournisseurID,
	})
	if err != nil {
		h.logger.Error("création du produit", zap.Error(err))
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *ProduitHandler) Lister(c *gin.Context) {
	produits, err := h.uc.ListerProduits(c.Request.Context())
	if err != nil {
		h.logger.Error("liste des produits", zap.Error(err))
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusOK, produits)
}

func (h *ProduitHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"erreur": "identifiant invalide"})
		return
	}

	p, err := h.uc.GetProduit(c.Request.Context(), id)
	if err != nil {
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Stock exposes the lightweight stock probe the cart screens poll.
func (h *ProduitHandler) Stock(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"erreur": "identifiant invalide"})
		return
	}

	p, err := h.uc.GetProduit(c.Request.Context(), id)
	if err != nil {
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"produit_id":    p.ID,
		"nom":           p.Nom,
		"prix_unitaire": p.PrixUnitaire,
		"stock_actuel":  p.StockActuel,
	})
}

func (h *ProduitHandler) Modifier(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"erreur": "identifiant invalide"})
		return
	}

	var req produitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"erreur": err.Error()})
		return
	}

	p, err := h.uc.ModifierProduit(c.Request.Context(), &dto.ModifierProduitInput{
		ID:            id,
		Nom:           req.Nom,
		Description:   req.Description,
		Reference:     req.Reference,
		PrixUnitaire:  req.PrixUnitaire,
		PrixVente:     req.PrixVente,
		StockActuel:   req.StockActuel,
		FournisseurID: req.FournisseurID,
	})
	if err != nil {
		h.logger.Error("modification du produit", zap.Int64("id", id), zap.Error(err))
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProduitHandler) Supprimer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"erreur": "identifiant invalide"})
		return
	}

	if err := h.uc.SupprimerProduit(c.Request.Context(), id); err != nil {
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "produit supprimé"})
}
