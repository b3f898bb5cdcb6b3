package handler

import (
	"errors"
	"strconv"

	"go-tuckshop-pos/internal/apperror"
	"go-tuckshop-pos/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps the service error taxonomy to HTTP status codes. This is
// the only place HTTP knows about error codes.
func statusFor(code string) int {
	switch code {
	case apperror.CodeNotFound:
		return fiber.StatusNotFound
	case apperror.CodeValidation, apperror.CodeInsufficientStock:
		return fiber.StatusBadRequest
	case apperror.CodeConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return c.Status(statusFor(appErr.Code)).JSON(fiber.Map{"error": appErr.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
}

// validateBody runs struct validation and converts the first failure into a
// typed validation error.
func validateBody(data interface{}) error {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		first := errs[0]
		return apperror.Validation("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	return nil
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, apperror.Validation("invalid %s parameter", name)
	}
	return uint(id), nil
}
