package models

import (
	"time"

	"gorm.io/gorm"
)

// Unlimited marks a plan dimension with no quota.
const Unlimited = -1

// SubscriptionPlan is a global catalog entry.
type SubscriptionPlan struct {
	ID               uint     `json:"id" gorm:"primaryKey"`
	Name             string   `json:"name" gorm:"uniqueIndex;type:varchar(100)"`
	Price            int      `json:"price"` // monthly, in cents
	MaxClothingItems int      `json:"max_clothing_items"`
	MaxOutfits       int      `json:"max_outfits"`
	CanUploadImages  bool     `json:"can_upload_images"`
	Features         []string `json:"features" gorm:"serializer:json"`
	gorm.Model
}

// SubscriptionStatus is the lifecycle state of a user subscription.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionExpired  SubscriptionStatus = "expired"
)

// UserSubscription links a user to a plan. At most one active row per user,
// enforced by application logic: the previous active row is canceled before
// a new one is inserted, never the reverse.
type UserSubscription struct {
	ID                 uint               `json:"id" gorm:"primaryKey"`
	UserID             string             `json:"user_id" gorm:"index;type:varchar(36);not null"`
	PlanID             uint               `json:"plan_id" gorm:"not null"`
	Status             SubscriptionStatus `json:"status" gorm:"type:varchar(20);index"`
	CurrentPeriodStart time.Time          `json:"current_period_start"`
	CurrentPeriodEnd   time.Time          `json:"current_period_end"`
	gorm.Model
}

// InEffect reports whether the subscription currently grants its plan.
func (s *UserSubscription) InEffect(now time.Time) bool {
	return s.Status == SubscriptionActive && !s.CurrentPeriodEnd.Before(now)
}

// Limits is the effective quota set derived from a plan (or the free tier).
type Limits struct {
	MaxItems        int  `json:"max_items"`
	MaxOutfits      int  `json:"max_outfits"`
	CanUploadImages bool `json:"can_upload_images"`
}

// Usage holds a user's current wardrobe counts.
type Usage struct {
	ItemsCount   int64 `json:"items_count"`
	OutfitsCount int64 `json:"outfits_count"`
}

// LimitKind names the quota dimension a check or rejection refers to.
type LimitKind string

const (
	LimitKindItems   LimitKind = "items"
	LimitKindOutfits LimitKind = "outfits"
)

// LimitCheck is the answer to "can this user add one more X right now".
// NearLimit turns on once usage crosses the warning threshold, before
// CanPerform turns off.
type LimitCheck struct {
	CanPerform   bool  `json:"can_perform"`
	CurrentCount int64 `json:"current_count"`
	Limit        int   `json:"limit"`
	NearLimit    bool  `json:"near_limit"`
}
