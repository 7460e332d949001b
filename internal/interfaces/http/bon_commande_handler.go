package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atlasnegoce/negoce-api/internal/application/commande"
	"github.com/atlasnegoce/negoce-api/internal/application/dto"
)

// BonCommandeHandler gère les requêtes HTTP des bons de commande fournisseur.
type BonCommandeHandler struct {
	uc *commande.BonCommandeUseCase
}

// NewBonCommandeHandler construit le handler.
func NewBonCommandeHandler(uc *commande.BonCommandeUseCase) *BonCommandeHandler {
	return &BonCommandeHandler{uc: uc}
}

// Create POST /api/bons-commande
//
// Le numéro (BC-YYYY-NNNN) et le montant total sont calculés côté serveur ;
// en-tête et lignes sont insérés dans la même transaction.
func (h *BonCommandeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBonCommandeRequest
	if err := c.BodyParser(&in); err != nil {
		return corpsInvalide(c)
	}
	bc, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bc)
}

// List GET /api/bons-commande?fournisseur_id=...&q=...&date_debut=...
func (h *BonCommandeHandler) List(c *fiber.Ctx) error {
	params, err := parseListeParams(c)
	if err != nil {
		return erreurJSON(c, err)
	}
	list, err := h.uc.List(params, c.Query("fournisseur_id"))
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/bons-commande/:id
func (h *BonCommandeHandler) GetByID(c *fiber.Ctx) error {
	bc, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.JSON(bc)
}

// UpdateStatut PUT /api/bons-commande/:id/statut
//
// Statuts acceptés : en_cours, recue, annulee. Un BC annulé est figé (409).
func (h *BonCommandeHandler) UpdateStatut(c *fiber.Ctx) error {
	var in dto.UpdateStatutRequest
	if err := c.BodyParser(&in); err != nil {
		return corpsInvalide(c)
	}
	bc, err := h.uc.UpdateStatut(c.Params("id"), in.Statut)
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.JSON(bc)
}

// Delete DELETE /api/bons-commande/:id
func (h *BonCommandeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return erreurJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
