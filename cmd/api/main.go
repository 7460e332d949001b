package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/atlasnegoce/negoce-api/internal/application/analytics"
	"github.com/atlasnegoce/negoce-api/internal/application/commande"
	"github.com/atlasnegoce/negoce-api/internal/application/livraison"
	"github.com/atlasnegoce/negoce-api/internal/application/tresorerie"
	"github.com/atlasnegoce/negoce-api/internal/application/usecase"
	"github.com/atlasnegoce/negoce-api/internal/infrastructure/postgres"
	httpRouter "github.com/atlasnegoce/negoce-api/internal/interfaces/http"
	"github.com/atlasnegoce/negoce-api/pkg/config"
	"github.com/atlasnegoce/negoce-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	fournisseurRepo := postgres.NewFournisseurRepository(pool)
	chauffeurRepo := postgres.NewChauffeurRepository(pool)
	produitRepo := postgres.NewProduitRepository(pool)
	bcRepo := postgres.NewBonCommandeRepository(pool)
	blRepo := postgres.NewBonLivraisonRepository(pool)
	paiementRepo := postgres.NewPaiementRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	clientUC := usecase.NewClientUseCase(clientRepo)
	fournisseurUC := usecase.NewFournisseurUseCase(fournisseurRepo)
	chauffeurUC := usecase.NewChauffeurUseCase(chauffeurRepo)
	produitUC := usecase.NewProduitUseCase(produitRepo)
	bonCommandeUC := commande.NewBonCommandeUseCase(txRunner, bcRepo, fournisseurRepo, produitRepo)
	bonLivraisonUC := livraison.NewBonLivraisonUseCase(txRunner, blRepo, clientRepo, chauffeurRepo, produitRepo)
	paiementUC := tresorerie.NewPaiementUseCase(paiementRepo, clientRepo, fournisseurRepo, chauffeurRepo)
	soldeUC := tresorerie.NewSoldeUseCase(clientRepo, fournisseurRepo, chauffeurRepo, blRepo, bcRepo, paiementRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local : http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Negoce API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:       clientUC,
		FournisseurUC:  fournisseurUC,
		ChauffeurUC:    chauffeurUC,
		ProduitUC:      produitUC,
		BonCommandeUC:  bonCommandeUC,
		BonLivraisonUC: bonLivraisonUC,
		PaiementUC:     paiementUC,
		SoldeUC:        soldeUC,
		DashboardUC:    dashboardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP arrêté")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
