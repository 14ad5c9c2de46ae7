package handlers

import (
	"log"

	"wardrobe/internal/middleware"
	"wardrobe/internal/models"
	"wardrobe/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SettingsHandler handles HTTP requests for storage preferences and the
// Notion connection.
type SettingsHandler struct {
	service  *services.SettingsService
	validate *validator.Validate
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(service *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the settings routes with the Fiber app.
func (h *SettingsHandler) RegisterRoutes(router fiber.Router) {
	settingsRoutes := router.Group("/settings")
	settingsRoutes.Get("/storage", h.HandleGetPreferences)
	settingsRoutes.Put("/storage", h.HandleUpdateStorageType)
	settingsRoutes.Put("/notion", h.HandleUpdateNotionConfig)
	settingsRoutes.Post("/notion/validate", h.HandleValidateNotionConfig)
	settingsRoutes.Delete("/notion", h.HandleResetNotionConfig)
}

// HandleGetPreferences reports the caller's storage settings. Credentials
// are never echoed back; only whether the Notion link is complete.
func (h *SettingsHandler) HandleGetPreferences(c *fiber.Ctx) error {
	prefs, err := h.service.GetPreferences(middleware.UserID(c))
	if err != nil {
		log.Printf("Error getting storage preferences: %v", err)
		return respondError(c, err)
	}
	return c.JSON(prefs)
}

// StorageTypeRequest represents the request body for switching backends.
type StorageTypeRequest struct {
	StorageType string `json:"storage_type" validate:"required,oneof=local notion"`
}

// HandleUpdateStorageType switches the caller's backend preference.
func (h *SettingsHandler) HandleUpdateStorageType(c *fiber.Ctx) error {
	var req StorageTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    "bad_request",
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.service.UpdateStorageType(middleware.UserID(c), models.StorageType(req.StorageType)); err != nil {
		log.Printf("Error updating storage type: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Storage preference updated"})
}

// NotionConfigRequest represents the request body for the Notion connection.
// All three fields travel together; partial configs are rejected.
type NotionConfigRequest struct {
	Token             string `json:"token" validate:"required"`
	ItemsDatabaseID   string `json:"items_database_id" validate:"required"`
	OutfitsDatabaseID string `json:"outfits_database_id" validate:"required"`
}

func (r NotionConfigRequest) toConfig() models.NotionConfig {
	return models.NotionConfig{
		Token:             r.Token,
		ItemsDatabaseID:   r.ItemsDatabaseID,
		OutfitsDatabaseID: r.OutfitsDatabaseID,
	}
}

// HandleUpdateNotionConfig stores the caller's Notion credentials.
func (h *SettingsHandler) HandleUpdateNotionConfig(c *fiber.Ctx) error {
	var req NotionConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    "bad_request",
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.service.UpdateNotionConfig(middleware.UserID(c), req.toConfig()); err != nil {
		log.Printf("Error updating Notion config: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notion configuration saved"})
}

// HandleValidateNotionConfig probes a candidate config against the live
// Notion API without storing it.
func (h *SettingsHandler) HandleValidateNotionConfig(c *fiber.Ctx) error {
	var req NotionConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    "bad_request",
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.service.ValidateNotionConfig(c.UserContext(), req.toConfig()); err != nil {
		log.Printf("Notion config validation failed: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notion configuration is valid", "valid": true})
}

// HandleResetNotionConfig clears the stored credentials and drops the caller
// back to local storage.
func (h *SettingsHandler) HandleResetNotionConfig(c *fiber.Ctx) error {
	if err := h.service.ResetNotionConfig(middleware.UserID(c)); err != nil {
		log.Printf("Error resetting Notion config: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notion configuration cleared"})
}
