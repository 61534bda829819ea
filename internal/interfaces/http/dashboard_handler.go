package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/obrasoft/almoxarifado-api/internal/application/analytics"
	"github.com/obrasoft/almoxarifado-api/internal/application/dto"
)

// DashboardHandler trata o resumo do painel (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devolve o resumo do almoxarifado. GET /api/dashboard
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}

// GetLowStock devolve os piores materiais abaixo do mínimo.
// GET /api/dashboard/estoque-baixo?limite=20
func (h *DashboardHandler) GetLowStock(c *fiber.Ctx) error {
	alerts, err := h.uc.GetLowStock(c.Context(), c.QueryInt("limite"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"items": alerts})
}
