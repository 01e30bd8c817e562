// Package server assembles the HTTP surface.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lordcript/gestion-achatss.io/config"
	chargehandler "github.com/lordcript/gestion-achatss.io/internal/charge/handler"
	commandehandler "github.com/lordcript/gestion-achatss.io/internal/commande/handler"
	fournisseurhandler "github.com/lordcript/gestion-achatss.io/internal/fournisseur/handler"
	"github.com/lordcript/gestion-achatss.io/internal/middleware"
	panierhandler "github.com/lordcript/gestion-achatss.io/internal/panier/handler"
	produithandler "github.com/lordcript/gestion-achatss.io/internal/produit/handler"
	rapporthandler "github.com/lordcript/gestion-achatss.io/internal/rapport/handler"
	utilisateurhandler "github.com/lordcript/gestion-achatss.io/internal/utilisateur/handler"
)

type Handlers struct {
	Produit     *produithandler.ProduitHandler
	Fournisseur *fournisseurhandler.FournisseurHandler
	Commande    *commandehandler.CommandeHandler
	Charge      *chargehandler.ChargeHandler
	Utilisateur *utilisateurhandler.UtilisateurHandler
	Panier      *panierhandler.PanierHandler
	Rapport     *rapporthandler.RapportHandler
}

func NewRouter(cfg *config.Config, log *zap.Logger, h Handlers) *gin.Engine {
	if cfg.Server.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"statut": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/inscription", h.Utilisateur.Inscrire)
		auth.POST("/connexion", h.Utilisateur.Connecter)
	}

	produits := r.Group("/produits")
	{
		produits.POST("", h.Produit.Creer)
		produits.GET("", h.Produit.Lister)
		produits.GET("/stock/:id", h.Produit.Stock)
		produits.GET("/:id", h.Produit.Get)
		produits.PUT("/:id", h.Produit.Modifier)
		produits.DELETE("/:id", h.Produit.Supprimer)
	}

	fournisseurs := r.Group("/fournisseurs")
	{
		fournisseurs.POST("", h.Fournisseur.Creer)
		fournisseurs.GET("", h.Fournisseur.Lister)
		fournisseurs.GET("/:id", h.Fournisseur.Get)
		fournisseurs.PUT("/:id", h.Fournisseur.Modifier)
	}

	commandes := r.Group("/commandes")
	{
		commandes.POST("", h.Commande.Creer)
		commandes.GET("", h.Commande.Lister)
		commandes.GET("/:id", h.Commande.Get)
		commandes.PUT("/:id", h.Commande.ChangerStatut)
		commandes.DELETE("/:id", h.Commande.Supprimer)
	}

	r.GET("/statistiques/produits", h.Commande.Statistiques)

	charges := r.Group("/charges")
	{
		charges.POST("", h.Charge.Creer)
		charges.GET("", h.Charge.Lister)
		charges.PUT("/:id", h.Charge.Modifier)
		charges.DELETE("/:id", h.Charge.Supprimer)
	}

	connecte := middleware.Authentication(&cfg.JWT)

	panier := r.Group("/panier", connecte)
	{
		panier.GET("", h.Panier.Contenu)
		panier.POST("/articles", h.Panier.Ajouter)
		panier.DELETE("", h.Panier.Vider)
		panier.POST("/finaliser", h.Panier.Finaliser)
	}

	rapports := r.Group("/rapports", connecte)
	{
		rapports.GET("/achats", h.Rapport.Achats)
		rapports.GET("/charges", h.Rapport.Charges)
	}

	utilisateurs := r.Group("/utilisateurs", connecte, middleware.AdminOnly())
	{
		utilisateurs.GET("", h.Utilisateur.Lister)
		utilisateurs.POST("/:nom/abonnement/activer", h.Utilisateur.ActiverAbonnement)
		utilisateurs.POST("/:nom/abonnement/suspendre", h.Utilisateur.SuspendreAbonnement)
	}

	return r
}
