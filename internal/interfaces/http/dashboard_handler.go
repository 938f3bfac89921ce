package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/finca-pro/internal/application/analytics"
	"github.com/tu-usuario/finca-pro/pkg/logger"
)

// DashboardHandler maneja la consulta del resumen de la finca.
type DashboardHandler struct {
	uc  *analytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Summary godoc
// @Summary      Resumen del estado actual de la finca
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.JSON(summary)
}
