package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLogger tags every request with a trace id and logs its outcome.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := uuid.NewString()
		c.Set("trace_id", traceID)
		c.Header("X-Trace-Id", traceID)

		start := time.Now()
		c.Next()

		log.Info("requête traitée",
			zap.String("trace_id", traceID),
			zap.String("méthode", c.Request.Method),
			zap.String("chemin", c.Request.URL.Path),
			zap.Int("statut", c.Writer.Status()),
			zap.Duration("durée", time.Since(start)),
		)
	}
}
