package services

import (
	"wardrobe/internal/models"
)

// FreeTierLimits is the canonical quota for users with no in-effect
// subscription. Defined exactly once; every fallback path uses it.
var FreeTierLimits = models.Limits{
	MaxItems:        20,
	MaxOutfits:      5,
	CanUploadImages: false,
}

// NearLimitThreshold is the usage fraction at which the UI starts warning.
const NearLimitThreshold = 0.8

// ComputeLimits derives the effective quota from a plan. A nil plan means
// no subscription is in effect and yields the free tier.
func ComputeLimits(plan *models.SubscriptionPlan) models.Limits {
	if plan == nil {
		return FreeTierLimits
	}
	return models.Limits{
		MaxItems:        plan.MaxClothingItems,
		MaxOutfits:      plan.MaxOutfits,
		CanUploadImages: plan.CanUploadImages,
	}
}

// CheckLimit reports whether one more record may be added. The comparison
// is strictly less-than: a user sitting exactly at the limit is full.
func CheckLimit(usage int64, limit int) bool {
	return limit == models.Unlimited || usage < int64(limit)
}

// IsNearLimit reports whether usage has crossed the warning threshold.
// Unlimited quotas are never near.
func IsNearLimit(usage int64, limit int, threshold float64) bool {
	if limit == models.Unlimited {
		return false
	}
	return float64(usage) >= float64(limit)*threshold
}

// LimitFor selects the quota dimension for a kind.
func LimitFor(limits models.Limits, kind models.LimitKind) int {
	if kind == models.LimitKindOutfits {
		return limits.MaxOutfits
	}
	return limits.MaxItems
}
