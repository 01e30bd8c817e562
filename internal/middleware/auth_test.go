package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lordcript/gestion-achatss.io/config"
)

var jwtCfg = &config.JWTConfig{SecretKey: "secret-de-test", TTLHours: 1}

func jeton(t *testing.T, sub string, estAdmin bool, secret string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":       sub,
		"est_admin": estAdmin,
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/prive", Authentication(jwtCfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"utilisateur_id": UtilisateurID(c)})
	})
	r.GET("/admin", Authentication(jwtCfg), AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthenticationSansJeton(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/prive", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticationJetonValide(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/prive", nil)
	req.Header.Set("Authorization", "Bearer "+jeton(t, "42", false, jwtCfg.SecretKey))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"utilisateur_id": 42}`, w.Body.String())
}

func TestAuthenticationMauvaisSecret(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/prive", nil)
	req.Header.Set("Authorization", "Bearer "+jeton(t, "42", false, "autre-secret"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+jeton(t, "42", false, jwtCfg.SecretKey))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+jeton(t, "1", true, jwtCfg.SecretKey))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
