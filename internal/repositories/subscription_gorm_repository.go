package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"wardrobe/internal/apperrors"
	"wardrobe/internal/models"
)

// GORMSubscriptionRepository is a GORM implementation of SubscriptionRepository.
type GORMSubscriptionRepository struct {
	db *gorm.DB
}

// NewGORMSubscriptionRepository creates a new instance of GORMSubscriptionRepository.
func NewGORMSubscriptionRepository(db *gorm.DB) *GORMSubscriptionRepository {
	return &GORMSubscriptionRepository{
		db: db,
	}
}

// GetPlans retrieves the plan catalog, cheapest first.
func (r *GORMSubscriptionRepository) GetPlans() ([]models.SubscriptionPlan, error) {
	var plans []models.SubscriptionPlan
	if err := r.db.Order("price ASC").Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to get plans: %w", err)
	}
	return plans, nil
}

// GetPlanByID retrieves a single plan.
func (r *GORMSubscriptionRepository) GetPlanByID(id uint) (*models.SubscriptionPlan, error) {
	var plan models.SubscriptionPlan
	if err := r.db.First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get plan %d: %w", id, err)
	}
	return &plan, nil
}

// GetActiveForUser retrieves the user's in-effect subscription, or nil when
// none exists (the free-tier state).
func (r *GORMSubscriptionRepository) GetActiveForUser(userID string, now time.Time) (*models.UserSubscription, error) {
	var sub models.UserSubscription
	err := r.db.
		Where("user_id = ? AND status = ? AND current_period_end >= ?", userID, models.SubscriptionActive, now).
		Order("current_period_end DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active subscription for user %s: %w", userID, err)
	}
	return &sub, nil
}

// CancelActive transitions every active row for the user to canceled. It is
// a no-op when there is nothing to cancel.
func (r *GORMSubscriptionRepository) CancelActive(userID string) error {
	err := r.db.Model(&models.UserSubscription{}).
		Where("user_id = ? AND status = ?", userID, models.SubscriptionActive).
		Update("status", models.SubscriptionCanceled).Error
	if err != nil {
		return fmt.Errorf("failed to cancel subscription for user %s: %w", userID, err)
	}
	return nil
}

// Create inserts a new subscription row.
func (r *GORMSubscriptionRepository) Create(sub *models.UserSubscription) error {
	if err := r.db.Create(sub).Error; err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}
