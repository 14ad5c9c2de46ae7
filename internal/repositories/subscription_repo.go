package repositories

import (
	"time"

	"wardrobe/internal/models"
)

// SubscriptionRepository defines the interface for plan and subscription
// data access. GetActiveForUser returns (nil, nil) when no subscription is
// in effect; a free-tier user is a normal state, not an error.
type SubscriptionRepository interface {
	GetPlans() ([]models.SubscriptionPlan, error)
	GetPlanByID(id uint) (*models.SubscriptionPlan, error)
	GetActiveForUser(userID string, now time.Time) (*models.UserSubscription, error)
	CancelActive(userID string) error
	Create(sub *models.UserSubscription) error
}
