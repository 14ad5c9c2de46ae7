package services_test

import (
	"testing"

	"wardrobe/internal/models"
	"wardrobe/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestComputeLimits(t *testing.T) {
	// A nil plan means no subscription is in effect
	limits := services.ComputeLimits(nil)
	assert.Equal(t, services.FreeTierLimits, limits)
	assert.Equal(t, 20, limits.MaxItems)
	assert.Equal(t, 5, limits.MaxOutfits)
	assert.False(t, limits.CanUploadImages)

	plan := &models.SubscriptionPlan{
		Name:             "Plus",
		MaxClothingItems: 200,
		MaxOutfits:       50,
		CanUploadImages:  true,
	}
	limits = services.ComputeLimits(plan)
	assert.Equal(t, 200, limits.MaxItems)
	assert.Equal(t, 50, limits.MaxOutfits)
	assert.True(t, limits.CanUploadImages)
}

func TestCheckLimit(t *testing.T) {
	// Strictly less-than: sitting exactly at the limit means full
	assert.True(t, services.CheckLimit(0, 20))
	assert.True(t, services.CheckLimit(19, 20))
	assert.False(t, services.CheckLimit(20, 20))
	assert.False(t, services.CheckLimit(21, 20))

	// Unlimited plans never refuse
	assert.True(t, services.CheckLimit(0, models.Unlimited))
	assert.True(t, services.CheckLimit(1000000, models.Unlimited))

	// A zero limit refuses everything
	assert.False(t, services.CheckLimit(0, 0))
}

func TestIsNearLimit(t *testing.T) {
	// 16/20 = 0.8 crosses the default threshold
	assert.False(t, services.IsNearLimit(15, 20, services.NearLimitThreshold))
	assert.True(t, services.IsNearLimit(16, 20, services.NearLimitThreshold))
	assert.True(t, services.IsNearLimit(20, 20, services.NearLimitThreshold))

	assert.False(t, services.IsNearLimit(1000000, models.Unlimited, services.NearLimitThreshold))
}

func TestLimitFor(t *testing.T) {
	limits := models.Limits{MaxItems: 20, MaxOutfits: 5}
	assert.Equal(t, 20, services.LimitFor(limits, models.LimitKindItems))
	assert.Equal(t, 5, services.LimitFor(limits, models.LimitKindOutfits))
}
