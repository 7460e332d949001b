package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/atlasnegoce/negoce-api/internal/application/analytics"
	"github.com/atlasnegoce/negoce-api/internal/application/dto"
)

// DashboardHandler gère les endpoints du tableau de bord.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construit le handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetResume renvoie la synthèse financière du jour et du mois en cours.
// GET /api/dashboard/resume
//
// Réponse : DashboardResumeDTO (ca_jour, ca_mois, marge_mois, achats_mois,
// encaissements_mois, top_clients[5], periode).
// Aucun paramètre ; les plages de dates sont calculées côté serveur.
func (h *DashboardHandler) GetResume(c *fiber.Ctx) error {
	resume, err := h.uc.GetResume(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(resume)
}
