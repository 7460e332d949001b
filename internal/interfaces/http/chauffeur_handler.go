package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atlasnegoce/negoce-api/internal/application/dto"
	"github.com/atlasnegoce/negoce-api/internal/application/tresorerie"
	"github.com/atlasnegoce/negoce-api/internal/application/usecase"
)

// ChauffeurHandler gère les requêtes HTTP des chauffeurs.
type ChauffeurHandler struct {
	uc      *usecase.ChauffeurUseCase
	soldeUC *tresorerie.SoldeUseCase
}

// NewChauffeurHandler construit le handler.
func NewChauffeurHandler(uc *usecase.ChauffeurUseCase, soldeUC *tresorerie.SoldeUseCase) *ChauffeurHandler {
	return &ChauffeurHandler{uc: uc, soldeUC: soldeUC}
}

// Create POST /api/chauffeurs
func (h *ChauffeurHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateChauffeurRequest
	if err := c.BodyParser(&in); err != nil {
		return corpsInvalide(c)
	}
	chauffeur, err := h.uc.Create(in)
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(chauffeur)
}

// List GET /api/chauffeurs
func (h *ChauffeurHandler) List(c *fiber.Ctx) error {
	params, err := parseListeParams(c)
	if err != nil {
		return erreurJSON(c, err)
	}
	list, err := h.uc.List(params)
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/chauffeurs/:id
func (h *ChauffeurHandler) GetByID(c *fiber.Ctx) error {
	chauffeur, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.JSON(chauffeur)
}

// Update PUT /api/chauffeurs/:id
func (h *ChauffeurHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateChauffeurRequest
	if err := c.BodyParser(&in); err != nil {
		return corpsInvalide(c)
	}
	chauffeur, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.JSON(chauffeur)
}

// Delete DELETE /api/chauffeurs/:id
func (h *ChauffeurHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return erreurJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Solde GET /api/chauffeurs/:id/solde
//
// Pour un externe : courses livrées cumulées contre paiements versés.
// Pour un interne : activité nulle, seuls les paiements apparaissent.
func (h *ChauffeurHandler) Solde(c *fiber.Ctx) error {
	solde, err := h.soldeUC.SoldeChauffeur(c.Params("id"))
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.JSON(solde)
}
