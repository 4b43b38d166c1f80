package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gopidistributors/billing-api/internal/application/analytics"
	"github.com/gopidistributors/billing-api/internal/application/dto"
)

// DashboardHandler serves the landing-screen summary.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Dashboard summary
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummary
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
