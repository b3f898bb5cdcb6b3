package handler

import (
	"go-tuckshop-pos/internal/model"
	"go-tuckshop-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(s service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	category, err := h.service.GetCategoryByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(category)
}

func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req model.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validateBody(&req); err != nil {
		return respondError(c, err)
	}

	category, err := h.service.CreateCategory(req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req model.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validateBody(&req); err != nil {
		return respondError(c, err)
	}

	category, err := h.service.UpdateCategory(id, req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category updated", "data": category})
}

func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.service.DeleteCategory(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}
