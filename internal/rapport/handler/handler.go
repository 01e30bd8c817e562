package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lordcript/gestion-achatss.io/internal/httperr"
	"github.com/lordcript/gestion-achatss.io/internal/rapport"
)

type RapportHandler struct {
	uc     rapport.UseCase
	logger *zap.Logger
}

func NewRapportHandler(uc rapport.UseCase, log *zap.Logger) *RapportHandler {
	return &RapportHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *RapportHandler) Achats(c *gin.Context) {
	fichier, err := h.uc.RapportAchats(c.Request.Context(), c.Query("format"))
	if err != nil {
		h.logger.Error("rapport des achats", zap.Error(err))
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	h.envoyer(c, fichier)
}

func (h *RapportHandler) Charges(c *gin.Context) {
	fichier, err := h.uc.RapportCharges(c.Request.Context(), c.Query("format"))
	if err != nil {
		h.logger.Error("rapport des charges", zap.Error(err))
		c.AbortWithStatusJSON(httperr.Status(err), gin.H{"erreur": err.Error()})
		return
	}
	h.envoyer(c, fichier)
}

func (h *RapportHandler) envoyer(c *gin.Context, f *rapport.Fichier) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Nom))
	c.Data(http.StatusOK, f.ContentType, f.Donnees)
}
