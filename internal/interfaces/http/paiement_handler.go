package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atlasnegoce/negoce-api/internal/application/dto"
	"github.com/atlasnegoce/negoce-api/internal/application/tresorerie"
)

// PaiementHandler gère les requêtes HTTP des paiements.
type PaiementHandler struct {
	uc *tresorerie.PaiementUseCase
}

// NewPaiementHandler construit le handler.
func NewPaiementHandler(uc *tresorerie.PaiementUseCase) *PaiementHandler {
	return &PaiementHandler{uc: uc}
}

// Create POST /api/paiements
//
// Reference est obligatoire pour les modes cheque et effet.
func (h *PaiementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaiementRequest
	if err := c.BodyParser(&in); err != nil {
		return corpsInvalide(c)
	}
	paiement, err := h.uc.Create(in)
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(paiement)
}

// List GET /api/paiements?tiers_type=client&tiers_id=...&q=...
func (h *PaiementHandler) List(c *fiber.Ctx) error {
	params, err := parseListeParams(c)
	if err != nil {
		return erreurJSON(c, err)
	}
	list, err := h.uc.List(params, c.Query("tiers_type"), c.Query("tiers_id"))
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/paiements/:id
func (h *PaiementHandler) GetByID(c *fiber.Ctx) error {
	paiement, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.JSON(paiement)
}

// Update PUT /api/paiements/:id (le tiers de rattachement ne change pas)
func (h *PaiementHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePaiementRequest
	if err := c.BodyParser(&in); err != nil {
		return corpsInvalide(c)
	}
	paiement, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.JSON(paiement)
}

// Delete DELETE /api/paiements/:id
func (h *PaiementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return erreurJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
