package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/lordcript/gestion-achatss.io/config"
	"github.com/lordcript/gestion-achatss.io/internal/broker"
	"github.com/lordcript/gestion-achatss.io/internal/cache"
	chargehandler "github.com/lordcript/gestion-achatss.io/internal/charge/handler"
	chargerepo "github.com/lordcript/gestion-achatss.io/internal/charge/repository"
	chargeusecase "github.com/lordcript/gestion-achatss.io/internal/charge/usecase"
	commandehandler "github.com/lordcript/gestion-achatss.io/internal/commande/handler"
	commanderepo "github.com/lordcript/gestion-achatss.io/internal/commande/repository"
	commandeusecase "github.com/lordcript/gestion-achatss.io/internal/commande/usecase"
	"github.com/lordcript/gestion-achatss.io/internal/database"
	fournisseurhandler "github.com/lordcript/gestion-achatss.io/internal/fournisseur/handler"
	fournisseurrepo "github.com/lordcript/gestion-achatss.io/internal/fournisseur/repository"
	fournisseurusecase "github.com/lordcript/gestion-achatss.io/internal/fournisseur/usecase"
	"github.com/lordcript/gestion-achatss.io/internal/logger"
	"github.com/lordcript/gestion-achatss.io/internal/panier"
	panierhandler "github.com/lordcript/gestion-achatss.io/internal/panier/handler"
	produithandler "github.com/lordcript/gestion-achatss.io/internal/produit/handler"
	produitrepo "github.com/lordcript/gestion-achatss.io/internal/produit/repository"
	produitusecase "github.com/lordcript/gestion-achatss.io/internal/produit/usecase"
	rapporthandler "github.com/lordcript/gestion-achatss.io/internal/rapport/handler"
	rapportrepo "github.com/lordcript/gestion-achatss.io/internal/rapport/repository"
	rapportusecase "github.com/lordcript/gestion-achatss.io/internal/rapport/usecase"
	"github.com/lordcript/gestion-achatss.io/internal/server"
	utilisateurhandler "github.com/lordcript/gestion-achatss.io/internal/utilisateur/handler"
	utilisateurrepo "github.com/lordcript/gestion-achatss.io/internal/utilisateur/repository"
	utilisateurusecase "github.com/lordcript/gestion-achatss.io/internal/utilisateur/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("fichier .env ignoré: %v", err)
	}
	cfg := config.LoadEnv()

	zapLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("initialisation du logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := database.Open(&cfg.Database)
	if err != nil {
		zapLogger.Fatal("ouverture de la base", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.New(context.Background(), &cfg.Redis)
	if err != nil {
		zapLogger.Fatal("connexion à redis", zap.Error(err))
	}
	defer redisClient.Close()

	publisher := broker.New(&cfg.Kafka, zapLogger)
	defer publisher.Close()

	produitUC := produitusecase.NewProduitUseCase(produitrepo.NewSQLRepository(db), redisClient, zapLogger)
	fournisseurRepo := fournisseurrepo.NewSQLRepository(db)
	fournisseurUC := fournisseurusecase.NewFournisseurUseCase(fournisseurRepo, zapLogger)
	commandeUC := commandeusecase.NewCommandeUseCase(commanderepo.NewSQLRepository(db), fournisseurRepo, publisher, zapLogger)
	chargeUC := chargeusecase.NewChargeUseCase(chargerepo.NewSQLRepository(db), zapLogger)
	utilisateurUC := utilisateurusecase.NewUtilisateurUseCase(utilisateurrepo.NewSQLRepository(db), &cfg.JWT, zapLogger)
	rapportUC := rapportusecase.NewRapportUseCase(rapportrepo.NewSQLRepository(db), zapLogger)
	paniers := panier.NewManager(produitUC, commandeUC, zapLogger)

	router := server.NewRouter(cfg, zapLogger, server.Handlers{
		Produit:     produithandler.NewProduitHandler(produitUC, zapLogger),
		Fournisseur: fournisseurhandler.NewFournisseurHandler(fournisseurUC, zapLogger),
		Commande:    commandehandler.NewCommandeHandler(commandeUC, zapLogger),
		Charge:      chargehandler.NewChargeHandler(chargeUC, zapLogger),
		Utilisateur: utilisateurhandler.NewUtilisateurHandler(utilisateurUC, zapLogger),
		Panier:      panierhandler.NewPanierHandler(paniers, zapLogger),
		Rapport:     rapporthandler.NewRapportHandler(rapportUC, zapLogger),
	})

	srv := &http.Server{
		Addr:    cfg.Server.HTTPPort,
		Handler: router,
	}

	go func() {
		zapLogger.Info("serveur démarré", zap.String("adresse", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("serveur http", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("arrêt en cours")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("arrêt du serveur", zap.Error(err))
	}
	zapLogger.Info("serveur arrêté")
}
