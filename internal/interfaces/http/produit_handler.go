package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atlasnegoce/negoce-api/internal/application/dto"
	"github.com/atlasnegoce/negoce-api/internal/application/usecase"
)

// ProduitHandler gère les requêtes HTTP du catalogue produits.
type ProduitHandler struct {
	uc *usecase.ProduitUseCase
}

// NewProduitHandler construit le handler.
func NewProduitHandler(uc *usecase.ProduitUseCase) *ProduitHandler {
	return &ProduitHandler{uc: uc}
}

// Create POST /api/produits
func (h *ProduitHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProduitRequest
	if err := c.BodyParser(&in); err != nil {
		return corpsInvalide(c)
	}
	produit, err := h.uc.Create(in)
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(produit)
}

// List GET /api/produits
func (h *ProduitHandler) List(c *fiber.Ctx) error {
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

// GetByID GET /api/produits/:id
func (h *ProduitHandler) GetByID(c *fiber.Ctx) error {
	produit, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.JSON(produit)
}

// Update PUT /api/produits/:id
func (h *ProduitHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProduitRequest
	if err := c.BodyParser(&in); err != nil {
		return corpsInvalide(c)
	}
	produit, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.JSON(produit)
}

// Delete DELETE /api/produits/:id
func (h *ProduitHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return erreurJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
