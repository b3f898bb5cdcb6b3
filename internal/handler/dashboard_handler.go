package handler

import (
	"go-tuckshop-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetMetrics returns the dashboard aggregates for today.
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	metrics, err := h.service.GetMetrics()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(metrics)
}
