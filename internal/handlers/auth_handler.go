package handlers

import (
	"log"
	"strings"

	"wardrobe/internal/middleware"
	"wardrobe/internal/models"
	"wardrobe/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication and auth status.
type AuthHandler struct {
	authService     *services.AuthService
	settingsService *services.SettingsService
	validate        *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, settingsService *services.SettingsService) *AuthHandler {
	return &AuthHandler{
		authService:     authService,
		settingsService: settingsService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the public authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
}

// RegisterProtectedRoutes registers the session-scoped auth state routes.
func (h *AuthHandler) RegisterProtectedRoutes(router fiber.Router) {
	accountRoutes := router.Group("/account")
	accountRoutes.Get("/auth-status", h.HandleGetAuthStatus)
	accountRoutes.Post("/auth-status/recalculate", h.HandleRecalculateAuthLevel)
	accountRoutes.Put("/passkey", h.HandleSetPasskey)
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"omitempty,max=100"`
	Password string `json:"password" validate:"required,min=6"`
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    "bad_request",
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	user := models.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	}
	if err := h.authService.RegisterUser(&user); err != nil {
		log.Printf("Error registering user: %v", err)
		if strings.Contains(err.Error(), "already registered") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"code":    "email_taken",
				"message": "Registration failed: email already registered",
			})
		}
		return respondError(c, err)
	}

	// For security, do not return the password hash
	user.Password = ""
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    "bad_request",
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	token, err := h.authService.LoginUser(req.Email, req.Password)
	if err != nil {
		log.Printf("Error during login for %s: %v", req.Email, err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"code":    "unauthorized",
			"message": "Authentication failed",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}

// HandleGetAuthStatus reports the caller's derived auth level bundle.
func (h *AuthHandler) HandleGetAuthStatus(c *fiber.Ctx) error {
	status, err := h.settingsService.GetAuthStatus(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(status)
}

// HandleRecalculateAuthLevel recomputes and persists the cached auth level.
func (h *AuthHandler) HandleRecalculateAuthLevel(c *fiber.Ctx) error {
	status, err := h.settingsService.RecalculateAuthLevel(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(status)
}

// PasskeyRequest represents the request body for the passkey flag.
type PasskeyRequest struct {
	Enabled bool `json:"enabled"`
}

// HandleSetPasskey flips the passkey feature flag for the caller.
func (h *AuthHandler) HandleSetPasskey(c *fiber.Ctx) error {
	var req PasskeyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    "bad_request",
			"message": "Invalid request body",
		})
	}
	status, err := h.settingsService.SetPasskeyEnabled(middleware.UserID(c), req.Enabled)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(status)
}
