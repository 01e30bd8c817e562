package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lordcript/gestion-achatss.io/internal/charge"
	"github.com/lordcript/gestion-achatss.io/internal/httperr"
)

type ChargeHandler struct {
	uc     charge.UseCase
	logger *zap.Logger
}

func NewChargeHandler(uc charge.UseCase, log *zap.Logger) *ChargeHandler {
	return &ChargeHandler{
		uc:     uc,
		logger: log,
	}
}

type chargeRequest struct {
	Nature  string     `json:"nature" binding:"required"`
	Montant float64    `json:"montant" binding:"required,gt=0"`
	Date    *time.Time `json:"date"`
}

func (h *ChargeHandler) Creer(c *gin.Context) {
	var req chargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"erreur": err.Error()})
		return
	}

	ch, err := h.uc.CreerCharge(c.Request.Context(), req.Nature, req.Montant, req.Date)
	if err != nil {
		h.logger.Error("création de la charge", zap.Error(err))
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ch)
}

func (h *ChargeHandler) Lister(c *gin.Context) {
	charges, err := h.uc.ListerCharges(c.Request.Context())
	if err != nil {
		h.logger.Error("liste des charges", zap.Error(err))
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusOK, charges)
}

func (h *ChargeHandler) Modifier(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"erreur": "identifiant invalide"})
		return
	}

	var req chargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"erreur": err.Error()})
		return
	}

	ch, err := h.uc.ModifierCharge(c.Request.Context(), id, req.Nature, req.Montant, req.Date)
	if err != nil {
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ch)
}

func (h *ChargeHandler) Supprimer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"erreur": "identifiant invalide"})
		return
	}

	if err := h.uc.SupprimerCharge(c.Request.Context(), id); err != nil {
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "charge supprimée"})
}
