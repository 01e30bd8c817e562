package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/lordcript/gestion-achatss.io/config"
)

const (
	cleUtilisateurID = "utilisateur_id"
	cleEstAdmin      = "est_admin"
)

// Authentication validates the bearer token and stores the caller's identity
// in the gin context.
func Authentication(jwtCfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"erreur": "jeton manquant"})
			return
		}

		token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("méthode de signature inattendue: %v", t.Header["alg"])
			}
			return []byte(jwtCfg.SecretKey), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"erreur": "jeton invalide"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"erreur": "jeton invalide"})
			return
		}
		sub, err := claims.GetSubject()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"erreur": "jeton invalide"})
			return
		}
		id, err := strconv.ParseInt(sub, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"erreur": "jeton invalide"})
			return
		}

		estAdmin, _ := claims[cleEstAdmin].(bool)
		c.Set(cleUtilisateurID, id)
		c.Set(cleEstAdmin, estAdmin)
		c.Next()
	}
}

// AdminOnly gates a route on the est_admin claim. Must run after Authentication.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(cleEstAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"erreur": "réservé aux administrateurs"})
			return
		}
		c.Next()
	}
}

// UtilisateurID returns the authenticated caller's id, 0 when unauthenticated.
func UtilisateurID(c *gin.Context) int64 {
	return c.GetInt64(cleUtilisateurID)
}
