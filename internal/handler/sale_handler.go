package handler

import (
	"go-tuckshop-pos/internal/model"
	"go-tuckshop-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SaleHandler struct {
	service service.LedgerService
}

func NewSaleHandler(s service.LedgerService) *SaleHandler {
	return &SaleHandler{service: s}
}

func (h *SaleHandler) Checkout(c *fiber.Ctx) error {
	var req model.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validateBody(&req); err != nil {
		return respondError(c, err)
	}

	if err := h.service.ProcessSale(req.Items); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Sale completed successfully"})
}

func (h *SaleHandler) Refund(c *fiber.Ctx) error {
	var req model.RefundRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validateBody(&req); err != nil {
		return respondError(c, err)
	}

	if err := h.service.ProcessRefund(req.MovementID, req.Reason); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Refund processed successfully"})
}

func (h *SaleHandler) Return(c *fiber.Ctx) error {
	var req model.ReturnRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validateBody(&req); err != nil {
		return respondError(c, err)
	}

	if err := h.service.ProcessReturn(req.MovementID, req.Reason); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Return processed successfully"})
}
