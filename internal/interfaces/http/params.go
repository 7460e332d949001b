// Package http expose l'API REST : handlers Fiber, routeur et mapping des
// erreurs du domaine vers les codes HTTP.
package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/atlasnegoce/negoce-api/internal/application/dto"
	"github.com/atlasnegoce/negoce-api/internal/domain"
)

const dateLayout = "2006-01-02"

// parseListeParams lit les paramètres communs des écrans de liste :
// ?q=...&date_debut=2026-01-01&date_fin=2026-01-31&page=1&page_size=20
// Les bornes de dates sont incluses ; date_fin couvre la journée entière.
func parseListeParams(c *fiber.Ctx) (dto.ListeParams, error) {
	params := dto.ListeParams{Query: c.Query("q")}

	if s := c.Query("date_debut"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return params, domain.ErrInvalidInput
		}
		params.DateDebut = &t
	}
	if s := c.Query("date_fin"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return params, domain.ErrInvalidInput
		}
		fin := t.Add(24*time.Hour - time.Nanosecond)
		params.DateFin = &fin
	}

	params.Page, _ = strconv.Atoi(c.Query("page", "1"))
	params.PageSize, _ = strconv.Atoi(c.Query("page_size", "20"))
	return params, nil
}

// erreurJSON traduit une erreur du domaine en réponse HTTP.
func erreurJSON(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func corpsInvalide(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
}
