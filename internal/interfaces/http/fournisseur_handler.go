package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atlasnegoce/negoce-api/internal/application/dto"
	"github.com/atlasnegoce/negoce-api/internal/application/tresorerie"
	"github.com/atlasnegoce/negoce-api/internal/application/usecase"
)

// FournisseurHandler gère les requêtes HTTP des fournisseurs.
type FournisseurHandler struct {
	uc      *usecase.FournisseurUseCase
	soldeUC *tresorerie.SoldeUseCase
}

// NewFournisseurHandler construit le handler.
func NewFournisseurHandler(uc *usecase.FournisseurUseCase, soldeUC *tresorerie.SoldeUseCase) *FournisseurHandler {
	return &FournisseurHandler{uc: uc, soldeUC: soldeUC}
}

// Create POST /api/fournisseurs
func (h *FournisseurHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFournisseurRequest
	if err := c.BodyParser(&in); err != nil {
		return corpsInvalide(c)
	}
	fournisseur, err := h.uc.Create(in)
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fournisseur)
}

// List GET /api/fournisseurs
func (h *FournisseurHandler) List(c *fiber.Ctx) error {
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

// GetByID GET /api/fournisseurs/:id
func (h *FournisseurHandler) GetByID(c *fiber.Ctx) error {
	fournisseur, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.JSON(fournisseur)
}

// Update PUT /api/fournisseurs/:id
func (h *FournisseurHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFournisseurRequest
	if err := c.BodyParser(&in); err != nil {
		return corpsInvalide(c)
	}
	fournisseur, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.JSON(fournisseur)
}

// Delete DELETE /api/fournisseurs/:id
func (h *FournisseurHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return erreurJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Solde GET /api/fournisseurs/:id/solde
func (h *FournisseurHandler) Solde(c *fiber.Ctx) error {
	solde, err := h.soldeUC.SoldeFournisseur(c.Params("id"))
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.JSON(solde)
}
