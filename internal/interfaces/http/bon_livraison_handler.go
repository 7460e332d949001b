package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atlasnegoce/negoce-api/internal/application/dto"
	"github.com/atlasnegoce/negoce-api/internal/application/livraison"
)

// BonLivraisonHandler gère les requêtes HTTP des bons de livraison client.
type BonLivraisonHandler struct {
	uc *livraison.BonLivraisonUseCase
}

// NewBonLivraisonHandler construit le handler.
func NewBonLivraisonHandler(uc *livraison.BonLivraisonUseCase) *BonLivraisonHandler {
	return &BonLivraisonHandler{uc: uc}
}

// Create POST /api/bons-livraison
//
// Le numéro (BL-YYYY-NNNN) et le montant total sont calculés côté serveur.
// Le coût unitaire de chaque ligne est figé depuis le catalogue à la création.
func (h *BonLivraisonHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBonLivraisonRequest
	if err := c.BodyParser(&in); err != nil {
		return corpsInvalide(c)
	}
	bl, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bl)
}

// List GET /api/bons-livraison?client_id=...&q=...&date_debut=...
func (h *BonLivraisonHandler) List(c *fiber.Ctx) error {
	params, err := parseListeParams(c)
	if err != nil {
		return erreurJSON(c, err)
	}
	list, err := h.uc.List(params, c.Query("client_id"))
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/bons-livraison/:id
func (h *BonLivraisonHandler) GetByID(c *fiber.Ctx) error {
	bl, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.JSON(bl)
}

// UpdateStatut PUT /api/bons-livraison/:id/statut
//
// Statuts acceptés : en_cours, livree, annulee. Un BL annulé est figé (409) ;
// seul un BL livré entre dans le calcul de marge.
func (h *BonLivraisonHandler) UpdateStatut(c *fiber.Ctx) error {
	var in dto.UpdateStatutRequest
	if err := c.BodyParser(&in); err != nil {
		return corpsInvalide(c)
	}
	bl, err := h.uc.UpdateStatut(c.Params("id"), in.Statut)
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.JSON(bl)
}

// Delete DELETE /api/bons-livraison/:id
func (h *BonLivraisonHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return erreurJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
