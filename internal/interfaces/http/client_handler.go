package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atlasnegoce/negoce-api/internal/application/dto"
	"github.com/atlasnegoce/negoce-api/internal/application/tresorerie"
	"github.com/atlasnegoce/negoce-api/internal/application/usecase"
)

// ClientHandler gère les requêtes HTTP des clients.
type ClientHandler struct {
	uc      *usecase.ClientUseCase
	soldeUC *tresorerie.SoldeUseCase
}

// NewClientHandler construit le handler.
func NewClientHandler(uc *usecase.ClientUseCase, soldeUC *tresorerie.SoldeUseCase) *ClientHandler {
	return &ClientHandler{uc: uc, soldeUC: soldeUC}
}

// Create POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return corpsInvalide(c)
	}
	client, err := h.uc.Create(in)
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// List GET /api/clients?q=...&date_debut=...&page=1&page_size=20
func (h *ClientHandler) List(c *fiber.Ctx) error {
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

// GetByID GET /api/clients/:id
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	client, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.JSON(client)
}

// Update PUT /api/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return corpsInvalide(c)
	}
	client, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.JSON(client)
}

// Delete DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return erreurJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Solde GET /api/clients/:id/solde
//
// Renvoie le solde du client : CA des BL non annulés, paiements cumulés,
// dette ou avance (crédit initial déduit) et marge des BL livrés.
func (h *ClientHandler) Solde(c *fiber.Ctx) error {
	solde, err := h.soldeUC.SoldeClient(c.Params("id"))
	if err != nil {
		return erreurJSON(c, err)
	}
	return c.JSON(solde)
}
