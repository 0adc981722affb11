package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/analytics"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
)

// DashboardHandler expone el resumen agregado del panel.
type DashboardHandler struct {
	uc      *analytics.DashboardUseCase
	counter *RequestCounter
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, counter *RequestCounter) *DashboardHandler {
	return &DashboardHandler{uc: uc, counter: counter}
}

// Summary godoc
// @Summary      Resumen del dashboard (totales, stock, movimientos, widgets)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out.RequestCount = h.counter.Count()
	return c.JSON(out)
}
