package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/atlasnegoce/negoce-api/internal/application/analytics"
	"github.com/atlasnegoce/negoce-api/internal/application/commande"
	"github.com/atlasnegoce/negoce-api/internal/application/livraison"
	"github.com/atlasnegoce/negoce-api/internal/application/tresorerie"
	"github.com/atlasnegoce/negoce-api/internal/application/usecase"
)

// RouterDeps dépendances du routeur.
type RouterDeps struct {
	ClientUC       *usecase.ClientUseCase
	FournisseurUC  *usecase.FournisseurUseCase
	ChauffeurUC    *usecase.ChauffeurUseCase
	ProduitUC      *usecase.ProduitUseCase
	BonCommandeUC  *commande.BonCommandeUseCase
	BonLivraisonUC *livraison.BonLivraisonUseCase
	PaiementUC     *tresorerie.PaiementUseCase
	SoldeUC        *tresorerie.SoldeUseCase
	DashboardUC    *appanalytics.DashboardUseCase
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Clients
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC, deps.SoldeUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)
	clients.Get("/:id/solde", clientHandler.Solde)

	// Fournisseurs
	fournisseurs := api.Group("/fournisseurs")
	fournisseurHandler := NewFournisseurHandler(deps.FournisseurUC, deps.SoldeUC)
	fournisseurs.Post("/", fournisseurHandler.Create)
	fournisseurs.Get("/", fournisseurHandler.List)
	fournisseurs.Get("/:id", fournisseurHandler.GetByID)
	fournisseurs.Put("/:id", fournisseurHandler.Update)
	fournisseurs.Delete("/:id", fournisseurHandler.Delete)
	fournisseurs.Get("/:id/solde", fournisseurHandler.Solde)

	// Chauffeurs
	chauffeurs := api.Group("/chauffeurs")
	chauffeurHandler := NewChauffeurHandler(deps.ChauffeurUC, deps.SoldeUC)
	chauffeurs.Post("/", chauffeurHandler.Create)
	chauffeurs.Get("/", chauffeurHandler.List)
	chauffeurs.Get("/:id", chauffeurHandler.GetByID)
	chauffeurs.Put("/:id", chauffeurHandler.Update)
	chauffeurs.Delete("/:id", chauffeurHandler.Delete)
	chauffeurs.Get("/:id/solde", chauffeurHandler.Solde)

	// Produits
	produits := api.Group("/produits")
	produitHandler := NewProduitHandler(deps.ProduitUC)
	produits.Post("/", produitHandler.Create)
	produits.Get("/", produitHandler.List)
	produits.Get("/:id", produitHandler.GetByID)
	produits.Put("/:id", produitHandler.Update)
	produits.Delete("/:id", produitHandler.Delete)

	// Bons de commande (achats fournisseur)
	bonsCommande := api.Group("/bons-commande")
	bcHandler := NewBonCommandeHandler(deps.BonCommandeUC)
	bonsCommande.Post("/", bcHandler.Create)
	bonsCommande.Get("/", bcHandler.List)
	bonsCommande.Get("/:id", bcHandler.GetByID)
	bonsCommande.Put("/:id/statut", bcHandler.UpdateStatut)
	bonsCommande.Delete("/:id", bcHandler.Delete)

	// Bons de livraison (ventes client)
	bonsLivraison := api.Group("/bons-livraison")
	blHandler := NewBonLivraisonHandler(deps.BonLivraisonUC)
	bonsLivraison.Post("/", blHandler.Create)
	bonsLivraison.Get("/", blHandler.List)
	bonsLivraison.Get("/:id", blHandler.GetByID)
	bonsLivraison.Put("/:id/statut", blHandler.UpdateStatut)
	bonsLivraison.Delete("/:id", blHandler.Delete)

	// Paiements
	paiements := api.Group("/paiements")
	paiementHandler := NewPaiementHandler(deps.PaiementUC)
	paiements.Post("/", paiementHandler.Create)
	paiements.Get("/", paiementHandler.List)
	paiements.Get("/:id", paiementHandler.GetByID)
	paiements.Put("/:id", paiementHandler.Update)
	paiements.Delete("/:id", paiementHandler.Delete)

	// Tableau de bord
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/resume", dashboardHandler.GetResume)
}
