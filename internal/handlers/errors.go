package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"wardrobe/internal/apperrors"
)

// respondError maps the shared error taxonomy to the transport envelope.
// Every error carries a machine-readable code plus a human message; limit
// rejections additionally carry the numbers an upgrade prompt needs.
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    "validation_error",
			"message": validationErr.Message,
			"field":   validationErr.Field,
		})
	}

	var limitErr *apperrors.LimitReachedError
	if errors.As(err, &limitErr) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"code":    "limit_reached",
			"message": limitErr.Error(),
			"kind":    limitErr.Kind,
			"current": limitErr.Current,
			"limit":   limitErr.Limit,
		})
	}

	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"code":    "unauthorized",
			"message": "Authentication required",
		})
	case errors.Is(err, apperrors.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"code":    "not_found",
			"message": "Resource not found",
		})
	case errors.Is(err, apperrors.ErrNotionNotConfigured):
		return c.Status(fiber.StatusPreconditionFailed).JSON(fiber.Map{
			"code":    "notion_not_configured",
			"message": "Notion storage is selected but not fully configured",
		})
	case errors.Is(err, apperrors.ErrUnsupportedInNotionMode):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    "unsupported_in_notion_mode",
			"message": "This operation is not supported while using Notion storage",
		})
	case errors.Is(err, apperrors.ErrNotionUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"code":    "notion_unavailable",
			"message": "Notion is temporarily unavailable; try again",
		})
	case errors.Is(err, apperrors.ErrNotionRejected):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"code":    "notion_rejected",
			"message": "Notion rejected the request; check your integration token and permissions",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"code":    "internal_error",
		"message": "Something went wrong",
	})
}

// respondValidationErrors renders validator tag failures field by field.
func respondValidationErrors(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return respondError(c, err)
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    "validation_error",
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
