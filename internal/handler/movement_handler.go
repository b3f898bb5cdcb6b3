package handler

import (
	"go-tuckshop-pos/internal/model"
	"go-tuckshop-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type MovementHandler struct {
	service service.LedgerService
}

func NewMovementHandler(s service.LedgerService) *MovementHandler {
	return &MovementHandler{service: s}
}

// GetMovements returns the full movement history, newest first.
func (h *MovementHandler) GetMovements(c *fiber.Ctx) error {
	movements, err := h.service.MovementHistory()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movements)
}

// RecordMovement records a manual restock or adjustment against a product.
func (h *MovementHandler) RecordMovement(c *fiber.Ctx) error {
	var req model.RecordMovementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validateBody(&req); err != nil {
		return respondError(c, err)
	}

	movement, err := h.service.RecordMovement(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movement)
}

// UpdateReason edits the free-text reason on a movement, the only field on
// a ledger row that is ever updated.
func (h *MovementHandler) UpdateReason(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req model.UpdateReasonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validateBody(&req); err != nil {
		return respondError(c, err)
	}

	if err := h.service.UpdateMovementReason(id, req.Reason); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Reason updated"})
}
