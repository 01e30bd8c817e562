package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lordcript/gestion-achatss.io/internal/httperr"
	"github.com/lordcript/gestion-achatss.io/internal/utilisateur"
	"github.com/lordcript/gestion-achatss.io/internal/utilisateur/dto"
)

type UtilisateurHandler struct {
	uc     utilisateur.UseCase
	logger *zap.Logger
}

func NewUtilisateurHandler(uc utilisateur.UseCase, log *zap.Logger) *UtilisateurHandler {
	return &UtilisateurHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *UtilisateurHandler) Inscrire(c *gin.Context) {
	var req dto.InscriptionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"erreur": err.Error()})
		return
	}

	u, err := h.uc.Inscrire(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("inscription", zap.Error(err))
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *UtilisateurHandler) Connecter(c *gin.Context) {
	var req dto.ConnexionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"erreur": err.Error()})
		return
	}

	token, u, err := h.uc.Connecter(c.Request.Context(), req.NomUtilisateur, req.MotDePasse)
	if err != nil {
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":       token,
		"utilisateur": u,
	})
}

func (h *UtilisateurHandler) ActiverAbonnement(c *gin.Context) {
	u, err := h.uc.ActiverAbonnement(c.Request.Context(), c.Param("nom"))
	if err != nil {
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UtilisateurHandler) SuspendreAbonnement(c *gin.Context) {
	u, err := h.uc.SuspendreAbonnement(c.Request.Context(), c.Param("nom"))
	if err != nil {
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UtilisateurHandler) Lister(c *gin.Context) {
	utilisateurs, err := h.uc.ListerUtilisateurs(c.Request.Context())
	if err != nil {
		h.logger.Error("liste des utilisateurs", zap.Error(err))
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	c.JSON(http.StatusOK, utilisateurs)
}
