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

// OutfitHandler handles HTTP requests for outfits.
type OutfitHandler struct {
	service  *services.OutfitService
	validate *validator.Validate
}

// NewOutfitHandler creates a new OutfitHandler.
func NewOutfitHandler(service *services.OutfitService) *OutfitHandler {
	return &OutfitHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the outfit routes with the Fiber app.
func (h *OutfitHandler) RegisterRoutes(router fiber.Router) {
	outfitRoutes := router.Group("/outfits")
	outfitRoutes.Get("/", h.HandleGetOutfits)
	outfitRoutes.Get("/:id", h.HandleGetOutfitByID)
	outfitRoutes.Post("/", h.HandleCreateOutfit)
	outfitRoutes.Patch("/:id", h.HandleUpdateOutfit)
	outfitRoutes.Delete("/:id", h.HandleDeleteOutfit)
}

// CreateOutfitRequest represents the request body for outfit creation.
type CreateOutfitRequest struct {
	Name            string     `json:"name" validate:"required,min=1,max=255"`
	Description     string     `json:"description" validate:"omitempty,max=1000"`
	Occasion        string     `json:"occasion" validate:"omitempty,oneof=casual work formal sport party travel"`
	Season          string     `json:"season" validate:"omitempty,oneof=spring summer fall winter all"`
	Rating          int        `json:"rating" validate:"omitempty,min=1,max=5"`
	LastWorn        *time.Time `json:"last_worn"`
	Tags            []string   `json:"tags" validate:"omitempty,dive,max=50"`
	ClothingItemIDs []string   `json:"clothing_item_ids"`
}

// HandleCreateOutfit creates a new outfit for the caller.
func (h *OutfitHandler) HandleCreateOutfit(c *fiber.Ctx) error {
	var req CreateOutfitRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing outfit create body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    "bad_request",
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	input := models.OutfitInput{
		Name:            req.Name,
		Description:     req.Description,
		Occasion:        models.Occasion(req.Occasion),
		Season:          models.Season(req.Season),
		Rating:          req.Rating,
		LastWorn:        req.LastWorn,
		Tags:            req.Tags,
		ClothingItemIDs: req.ClothingItemIDs,
	}

	outfit, err := h.service.CreateOutfit(c.UserContext(), middleware.UserID(c), input)
	if err != nil {
		log.Printf("Error creating outfit: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(outfit)
}

// HandleGetOutfits retrieves the caller's outfits with optional filters.
func (h *OutfitHandler) HandleGetOutfits(c *fiber.Ctx) error {
	filter := models.OutfitFilter{
		Search: c.Query("search"),
	}
	if occasion := c.Query("occasion"); occasion != "" {
		o := models.Occasion(occasion)
		filter.Occasion = &o
	}
	if season := c.Query("season"); season != "" {
		s := models.Season(season)
		filter.Season = &s
	}

	outfits, err := h.service.GetOutfits(c.UserContext(), middleware.UserID(c), filter)
	if err != nil {
		log.Printf("Error listing outfits: %v", err)
		return respondError(c, err)
	}
	return c.JSON(outfits)
}

// HandleGetOutfitByID retrieves a single owned outfit. In Notion mode this
// surfaces an explicit unsupported-operation error.
func (h *OutfitHandler) HandleGetOutfitByID(c *fiber.Ctx) error {
	outfit, err := h.service.GetOutfitByID(c.UserContext(), middleware.UserID(c), c.Params("id"))
	if err != nil {
		log.Printf("Error getting outfit %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(outfit)
}

// UpdateOutfitRequest represents a partial update.
type UpdateOutfitRequest struct {
	Name            *string    `json:"name" validate:"omitempty,min=1,max=255"`
	Description     *string    `json:"description" validate:"omitempty,max=1000"`
	Occasion        *string    `json:"occasion" validate:"omitempty,oneof=casual work formal sport party travel"`
	Season          *string    `json:"season" validate:"omitempty,oneof=spring summer fall winter all"`
	Rating          *int       `json:"rating" validate:"omitempty,min=1,max=5"`
	LastWorn        *time.Time `json:"last_worn"`
	Tags            *[]string  `json:"tags" validate:"omitempty,dive,max=50"`
	ClothingItemIDs *[]string  `json:"clothing_item_ids"`
}

// HandleUpdateOutfit applies a partial update to an owned outfit.
func (h *OutfitHandler) HandleUpdateOutfit(c *fiber.Ctx) error {
	var req UpdateOutfitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    "bad_request",
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	patch := models.OutfitPatch{
		Name:            req.Name,
		Description:     req.Description,
		Rating:          req.Rating,
		LastWorn:        req.LastWorn,
		Tags:            req.Tags,
		ClothingItemIDs: req.ClothingItemIDs,
	}
	if req.Occasion != nil {
		occasion := models.Occasion(*req.Occasion)
		patch.Occasion = &occasion
	}
	if req.Season != nil {
		season := models.Season(*req.Season)
		patch.Season = &season
	}

	if err := h.service.UpdateOutfit(c.UserContext(), middleware.UserID(c), c.Params("id"), patch); err != nil {
		log.Printf("Error updating outfit %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Outfit updated successfully"})
}

// HandleDeleteOutfit removes an owned outfit.
func (h *OutfitHandler) HandleDeleteOutfit(c *fiber.Ctx) error {
	if err := h.service.DeleteOutfit(c.UserContext(), middleware.UserID(c), c.Params("id")); err != nil {
		log.Printf("Error deleting outfit %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Outfit deleted successfully"})
}
