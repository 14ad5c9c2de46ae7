package handlers

import (
	"log"

	"wardrobe/internal/models"
	"wardrobe/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for the shared category taxonomy.
type CategoryHandler struct {
	repo     repositories.CategoryRepository
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(repo repositories.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{
		repo:     repo,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Post("/", h.HandleCreateCategory)
}

// HandleGetCategories lists every category.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.repo.GetAll()
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return respondError(c, err)
	}
	return c.JSON(categories)
}

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Type string `json:"type" validate:"omitempty,max=50"`
}

// HandleCreateCategory adds a category to the shared taxonomy.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    "bad_request",
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	category := models.Category{
		Name: req.Name,
		Type: req.Type,
	}
	if err := h.repo.Create(&category); err != nil {
		log.Printf("Error creating category: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}
