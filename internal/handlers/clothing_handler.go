package handlers

import (
	"log"
	"time"

	"wardrobe/internal/middleware"
	"wardrobe/internal/models"
	"wardrobe/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ClothingHandler handles HTTP requests for clothing items.
type ClothingHandler struct {
	service  *services.ClothingService
	validate *validator.Validate
}

// NewClothingHandler creates a new ClothingHandler.
func NewClothingHandler(service *services.ClothingService) *ClothingHandler {
	return &ClothingHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the clothing routes with the Fiber app.
func (h *ClothingHandler) RegisterRoutes(router fiber.Router) {
	clothingRoutes := router.Group("/clothing")
	clothingRoutes.Get("/", h.HandleGetClothingItems)
	clothingRoutes.Post("/", h.HandleCreateClothingItem)
	clothingRoutes.Patch("/:id", h.HandleUpdateClothingItem)
	clothingRoutes.Delete("/:id", h.HandleDeleteClothingItem)
}

// CreateClothingRequest represents the request body for item creation.
type CreateClothingRequest struct {
	Name         string     `json:"name" validate:"required,min=1,max=255"`
	CategoryID   uint       `json:"category_id" validate:"required"`
	Brand        string     `json:"brand" validate:"omitempty,max=100"`
	Color        string     `json:"color" validate:"omitempty,max=50"`
	Size         string     `json:"size" validate:"omitempty,max=50"`
	Season       string     `json:"season" validate:"omitempty,oneof=spring summer fall winter all"`
	ImageURL     string     `json:"image_url" validate:"omitempty,url,max=500"`
	Price        int        `json:"price" validate:"omitempty,gte=0"`
	PurchaseDate *time.Time `json:"purchase_date"`
	Notes        string     `json:"notes" validate:"omitempty,max=1000"`
	Tags         []string   `json:"tags" validate:"omitempty,dive,max=50"`
}

// HandleCreateClothingItem creates a new clothing item for the caller.
func (h *ClothingHandler) HandleCreateClothingItem(c *fiber.Ctx) error {
	var req CreateClothingRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing clothing create body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    "bad_request",
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	input := models.ClothingItemInput{
		Name:         req.Name,
		CategoryID:   req.CategoryID,
		Brand:        req.Brand,
		Color:        req.Color,
		Size:         req.Size,
		Season:       models.Season(req.Season),
		ImageURL:     req.ImageURL,
		Price:        req.Price,
		PurchaseDate: req.PurchaseDate,
		Notes:        req.Notes,
		Tags:         req.Tags,
	}

	item, err := h.service.CreateClothingItem(c.UserContext(), middleware.UserID(c), input)
	if err != nil {
		log.Printf("Error creating clothing item: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleGetClothingItems retrieves the caller's items with optional filters.
func (h *ClothingHandler) HandleGetClothingItems(c *fiber.Ctx) error {
	filter := models.ClothingFilter{
		Brand:  c.Query("brand"),
		Search: c.Query("search"),
	}
	if categoryID := c.QueryInt("category_id", 0); categoryID > 0 {
		id := uint(categoryID)
		filter.CategoryID = &id
	}
	if season := c.Query("season"); season != "" {
		s := models.Season(season)
		filter.Season = &s
	}

	items, err := h.service.GetClothingItems(c.UserContext(), middleware.UserID(c), filter)
	if err != nil {
		log.Printf("Error listing clothing items: %v", err)
		return respondError(c, err)
	}
	return c.JSON(items)
}

// UpdateClothingRequest represents a partial update; absent fields are
// left untouched.
type UpdateClothingRequest struct {
	Name         *string    `json:"name" validate:"omitempty,min=1,max=255"`
	CategoryID   *uint      `json:"category_id"`
	Brand        *string    `json:"brand" validate:"omitempty,max=100"`
	Color        *string    `json:"color" validate:"omitempty,max=50"`
	Size         *string    `json:"size" validate:"omitempty,max=50"`
	Season       *string    `json:"season" validate:"omitempty,oneof=spring summer fall winter all"`
	ImageURL     *string    `json:"image_url" validate:"omitempty,url,max=500"`
	Price        *int       `json:"price" validate:"omitempty,gte=0"`
	PurchaseDate *time.Time `json:"purchase_date"`
	Notes        *string    `json:"notes" validate:"omitempty,max=1000"`
	Tags         *[]string  `json:"tags" validate:"omitempty,dive,max=50"`
}

// HandleUpdateClothingItem applies a partial update to an owned item.
func (h *ClothingHandler) HandleUpdateClothingItem(c *fiber.Ctx) error {
	var req UpdateClothingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    "bad_request",
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	patch := models.ClothingItemPatch{
		Name:         req.Name,
		CategoryID:   req.CategoryID,
		Brand:        req.Brand,
		Color:        req.Color,
		Size:         req.Size,
		ImageURL:     req.ImageURL,
		Price:        req.Price,
		PurchaseDate: req.PurchaseDate,
		Notes:        req.Notes,
		Tags:         req.Tags,
	}
	if req.Season != nil {
		season := models.Season(*req.Season)
		patch.Season = &season
	}

	if err := h.service.UpdateClothingItem(c.UserContext(), middleware.UserID(c), c.Params("id"), patch); err != nil {
		log.Printf("Error updating clothing item %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Clothing item updated successfully"})
}

// HandleDeleteClothingItem removes an owned item.
func (h *ClothingHandler) HandleDeleteClothingItem(c *fiber.Ctx) error {
	if err := h.service.DeleteClothingItem(c.UserContext(), middleware.UserID(c), c.Params("id")); err != nil {
		log.Printf("Error deleting clothing item %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Clothing item deleted successfully"})
}
