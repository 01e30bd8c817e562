package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lordcript/gestion-achatss.io/internal/fournisseur"
	"github.com/lordcript/gestion-achatss.io/internal/httperr"
)

type FournisseurHandler struct {
	uc     fournisseur.UseCase
	logger *zap.Logger
}

func NewFournisseurHandler(uc fournisseur.UseCase, log *zap.Logger) *FournisseurHandler {
	return &FournisseurHandler{
		uc:     uc,
		logger: log,
	}
}

type fournisseurRequest struct {
	Nom     string `json:"nom" binding:"required"`
	Contact string `json:"contact"`
}

func (h *FournisseurHandler) Creer(c *gin.Context) {
	var req fournisseurRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"erreur": err.Error()})
		return
	}

	f, err := h.uc.CreerFournisseur(c.Request.Context(), req.Nom, req.Contact)
	if err != nil {
		h.logger.Error("création du fournisseur", zap.Error(err))
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (h *FournisseurHandler) Lister(c *gin.Context) {
	fournisseurs, err := h.uc.ListerFournisseurs(c.Request.Context())
	if err != nil {
		h.logger.Error("liste des fournisseurs", zap.Error(err))
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusOK, fournisseurs)
}

func (h *FournisseurHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"erreur": "identifiant invalide"})
		return
	}

	f, err := h.uc.GetFournisseur(c.Request.Context(), id)
	if err != nil {
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FournisseurHandler) Modifier(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"erreur": "identifiant invalide"})
		return
	}

	var req fournisseurRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"erreur": err.Error()})
		return
	}

	f, err := h.uc.ModifierFournisseur(c.Request.Context(), id, req.Nom, req.Contact)
	if err != nil {
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusOK, f)
}
