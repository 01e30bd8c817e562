package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lordcript/gestion-achatss.io/internal/commande"
	"github.com/lordcript/gestion-achatss.io/internal/commande/dto"
	"github.com/lordcript/gestion-achatss.io/internal/httperr"
)

type CommandeHandler struct {
	uc     commande.UseCase
	logger *zap.Logger
}

func NewCommandeHandler(uc commande.UseCase, log *zap.Logger) *CommandeHandler {
	return &CommandeHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CommandeHandler) Creer(c *gin.Context) {
	var req dto.CreerCommandeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"erreur": err.Error()})
		return
	}

	cmd, err := h.uc.CreerCommande(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("création de la commande", zap.Error(err))
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, cmd)
}

func (h *CommandeHandler) Lister(c *gin.Context) {
	commandes, err := h.uc.ListerCommandes(c.Request.Context())
	if err != nil {
		h.logger.Error("liste des commandes", zap.Error(err))
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusOK, commandes)
}

func (h *CommandeHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"erreur": "identifiant invalide"})
		return
	}

	cmd, err := h.uc.GetCommande(c.Request.Context(), id)
	if err != nil {
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cmd)
}

type statutRequest struct {
	Statut string `json:"statut" binding:"required"`
}

func (h *CommandeHandler) ChangerStatut(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"erreur": "identifiant invalide"})
		return
	}

	var req statutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"erreur": err.Error()})
		return
	}

	cmd, err := h.uc.ChangerStatut(c.Request.Context(), id, req.Statut)
	if err != nil {
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cmd)
}

func (h *CommandeHandler) Supprimer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"erreur": "identifiant invalide"})
		return
	}

	if err := h.uc.SupprimerCommande(c.Request.Context(), id); err != nil {
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "commande supprimée, stock ajusté"})
}

func (h *CommandeHandler) Statistiques(c *gin.Context) {
	stats, err := h.uc.StatistiquesProduits(c.Request.Context())
	if err != nil {
		h.logger.Error("statistiques produits", zap.Error(err))
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
