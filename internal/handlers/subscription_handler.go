package handlers

import (
	"log"

	"wardrobe/internal/middleware"
	"wardrobe/internal/models"
	"wardrobe/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SubscriptionHandler handles HTTP requests for plans, subscriptions, usage
// and limit checks.
type SubscriptionHandler struct {
	service  *services.SubscriptionService
	validate *validator.Validate
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(service *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the subscription routes with the Fiber app.
func (h *SubscriptionHandler) RegisterRoutes(router fiber.Router) {
	subRoutes := router.Group("/subscription")
	subRoutes.Get("/plans", h.HandleGetPlans)
	subRoutes.Get("/", h.HandleGetSubscription)
	subRoutes.Post("/subscribe", h.HandleSubscribe)
	subRoutes.Post("/cancel", h.HandleCancel)
	subRoutes.Get("/usage", h.HandleGetUsage)
	subRoutes.Get("/limits/:kind", h.HandleCheckLimit)
}

// HandleGetPlans lists the plan catalog.
func (h *SubscriptionHandler) HandleGetPlans(c *fiber.Ctx) error {
	plans, err := h.service.GetPlans()
	if err != nil {
		log.Printf("Error listing plans: %v", err)
		return respondError(c, err)
	}
	return c.JSON(plans)
}

// HandleGetSubscription reports the caller's in-effect subscription. A user
// on free-tier defaults gets a null subscription, not an error.
func (h *SubscriptionHandler) HandleGetSubscription(c *fiber.Ctx) error {
	sub, err := h.service.GetUserSubscription(middleware.UserID(c))
	if err != nil {
		log.Printf("Error getting subscription: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"subscription": sub})
}

// SubscribeRequest represents the request body for subscribing to a plan.
type SubscribeRequest struct {
	PlanID uint `json:"plan_id" validate:"required"`
}

// HandleSubscribe puts the caller on the requested plan.
func (h *SubscriptionHandler) HandleSubscribe(c *fiber.Ctx) error {
	var req SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    "bad_request",
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	sub, err := h.service.Subscribe(middleware.UserID(c), req.PlanID)
	if err != nil {
		log.Printf("Error subscribing to plan %d: %v", req.PlanID, err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

// HandleCancel cancels the caller's active subscription.
func (h *SubscriptionHandler) HandleCancel(c *fiber.Ctx) error {
	if err := h.service.CancelSubscription(middleware.UserID(c)); err != nil {
		log.Printf("Error canceling subscription: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Subscription canceled"})
}

// HandleGetUsage reports the caller's current wardrobe counts from whichever
// backend their data lives in.
func (h *SubscriptionHandler) HandleGetUsage(c *fiber.Ctx) error {
	usage, err := h.service.GetUserUsage(c.UserContext(), middleware.UserID(c))
	if err != nil {
		log.Printf("Error getting usage: %v", err)
		return respondError(c, err)
	}
	return c.JSON(usage)
}

// HandleCheckLimit answers whether the caller can create one more item or
// outfit under their effective limits.
func (h *SubscriptionHandler) HandleCheckLimit(c *fiber.Ctx) error {
	kind := models.LimitKind(c.Params("kind"))
	if kind != models.LimitKindItems && kind != models.LimitKindOutfits {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    "bad_request",
			"message": "kind must be items or outfits",
		})
	}

	check, err := h.service.CheckLimits(c.UserContext(), middleware.UserID(c), kind)
	if err != nil {
		log.Printf("Error checking %s limit: %v", kind, err)
		return respondError(c, err)
	}
	return c.JSON(check)
}
