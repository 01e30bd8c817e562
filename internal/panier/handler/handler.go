package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lordcript/gestion-achatss.io/internal/httperr"
	"github.com/lordcript/gestion-achatss.io/internal/middleware"
	"github.com/lordcript/gestion-achatss.io/internal/panier"
)

type PanierHandler struct {
	manager *panier.Manager
	logger  *zap.Logger
}

func NewPanierHandler(manager *panier.Manager, log *zap.Logger) *PanierHandler {
	return &PanierHandler{
		manager: manager,
		logger:  log,
	}
}

type ajoutRequest struct {
	ProduitID int64 `json:"produit_id" binding:"required"`
	Quantite  int   `json:"quantite" binding:"required,gt=0"`
}

type finalisationRequest struct {
	FournisseurID int64  `json:"fournisseur_id" binding:"required"`
	Societe       string `json:"societe"`
}

func (h *PanierHandler) Ajouter(c *gin.Context) {
	var req ajoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"erreur": err.Error()})
		return
	}

	contenu, err := h.manager.Ajouter(c.Request.Context(), middleware.UtilisateurID(c), req.ProduitID, req.Quantite)
	if err != nil {
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusOK, contenu)
}

func (h *PanierHandler) Contenu(c *gin.Context) {
	c.JSON(http.StatusOK, h.manager.Contenu(middleware.UtilisateurID(c)))
}

func (h *PanierHandler) Vider(c *gin.Context) {
	if err := h.manager.Vider(c.Request.Context(), middleware.UtilisateurID(c)); err != nil {
		h.logger.Error("vidage du panier", zap.Error(err))
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "panier vidé, stock restauré"})
}

func (h *PanierHandler) Finaliser(c *gin.Context) {
	var req finalisationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"erreur": err.Error()})
		return
	}

	cmd, err := h.manager.Finaliser(c.Request.Context(), middleware.UtilisateurID(c), req.FournisseurID, req.Societe)
	if err != nil {
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, cmd)
}
