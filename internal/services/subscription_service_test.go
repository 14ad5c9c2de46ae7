package services_test

import (
	"context"
	"testing"
	"time"

	"wardrobe/internal/models"
	"wardrobe/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestGate(subs *MockSubscriptionRepository, users *MockUserRepository, local *MockWardrobeBackend) (*services.LimitGate, *services.StorageRouter) {
	router := services.NewStorageRouter(users, local, nil)
	return services.NewLimitGate(subs, router), router
}

func TestLimitGate_EffectiveLimits_FreeTierFallback(t *testing.T) {
	subs := new(MockSubscriptionRepository)
	gate, _ := newTestGate(subs, new(MockUserRepository), new(MockWardrobeBackend))

	// No in-effect subscription is a normal state, not an error
	subs.On("GetActiveForUser", "user-1", mock.Anything).Return(nil, nil).Once()

	limits, err := gate.EffectiveLimits("user-1")
	assert.NoError(t, err)
	assert.Equal(t, services.FreeTierLimits, limits)
	subs.AssertExpectations(t)
}

func TestLimitGate_EffectiveLimits_FromPlan(t *testing.T) {
	subs := new(MockSubscriptionRepository)
	gate, _ := newTestGate(subs, new(MockUserRepository), new(MockWardrobeBackend))

	sub := &models.UserSubscription{UserID: "user-1", PlanID: 2, Status: models.SubscriptionActive}
	plan := &models.SubscriptionPlan{ID: 2, Name: "Pro", MaxClothingItems: models.Unlimited, MaxOutfits: models.Unlimited, CanUploadImages: true}

	subs.On("GetActiveForUser", "user-1", mock.Anything).Return(sub, nil).Once()
	subs.On("GetPlanByID", uint(2)).Return(plan, nil).Once()

	limits, err := gate.EffectiveLimits("user-1")
	assert.NoError(t, err)
	assert.Equal(t, models.Unlimited, limits.MaxItems)
	assert.Equal(t, models.Unlimited, limits.MaxOutfits)
	assert.True(t, limits.CanUploadImages)
	subs.AssertExpectations(t)
}

func TestLimitGate_Check(t *testing.T) {
	subs := new(MockSubscriptionRepository)
	users := new(MockUserRepository)
	local := new(MockWardrobeBackend)
	gate, _ := newTestGate(subs, users, local)

	subs.On("GetActiveForUser", "user-1", mock.Anything).Return(nil, nil)
	users.On("GetByID", "user-1").Return(localUser("user-1"), nil)

	// 3 of 20: plenty of room, no warning yet
	local.On("CountClothingItems", mock.Anything, "user-1").Return(int64(3), nil).Once()
	check, err := gate.Check(context.Background(), "user-1", models.LimitKindItems)
	assert.NoError(t, err)
	assert.True(t, check.CanPerform)
	assert.False(t, check.NearLimit)

	// 19 of 20: one slot left, past the warning threshold
	local.On("CountClothingItems", mock.Anything, "user-1").Return(int64(19), nil).Once()
	check, err = gate.Check(context.Background(), "user-1", models.LimitKindItems)
	assert.NoError(t, err)
	assert.True(t, check.CanPerform)
	assert.True(t, check.NearLimit)
	assert.Equal(t, int64(19), check.CurrentCount)
	assert.Equal(t, 20, check.Limit)

	// 5 of 5 outfits: full
	local.On("CountOutfits", mock.Anything, "user-1").Return(int64(5), nil).Once()
	check, err = gate.Check(context.Background(), "user-1", models.LimitKindOutfits)
	assert.NoError(t, err)
	assert.False(t, check.CanPerform)
	assert.True(t, check.NearLimit)
	assert.Equal(t, 5, check.Limit)
	local.AssertExpectations(t)
}

func TestLimitGate_Check_UnlimitedNeverNear(t *testing.T) {
	subs := new(MockSubscriptionRepository)
	users := new(MockUserRepository)
	local := new(MockWardrobeBackend)
	gate, _ := newTestGate(subs, users, local)

	sub := &models.UserSubscription{UserID: "user-1", PlanID: 2, Status: models.SubscriptionActive}
	plan := &models.SubscriptionPlan{ID: 2, Name: "Pro", MaxClothingItems: models.Unlimited, MaxOutfits: models.Unlimited}
	subs.On("GetActiveForUser", "user-1", mock.Anything).Return(sub, nil).Once()
	subs.On("GetPlanByID", uint(2)).Return(plan, nil).Once()
	users.On("GetByID", "user-1").Return(localUser("user-1"), nil)
	local.On("CountClothingItems", mock.Anything, "user-1").Return(int64(100000), nil).Once()

	check, err := gate.Check(context.Background(), "user-1", models.LimitKindItems)
	assert.NoError(t, err)
	assert.True(t, check.CanPerform)
	assert.False(t, check.NearLimit)
}

func TestSubscriptionService_Subscribe_CancelsBeforeInsert(t *testing.T) {
	subs := new(MockSubscriptionRepository)
	gate, router := newTestGate(subs, new(MockUserRepository), new(MockWardrobeBackend))
	service := services.NewSubscriptionService(subs, gate, router, nil)

	plan := &models.SubscriptionPlan{ID: 3, Name: "Plus", MaxClothingItems: 200, MaxOutfits: 50}

	var canceledFirst bool
	subs.On("GetPlanByID", uint(3)).Return(plan, nil).Once()
	subs.On("CancelActive", "user-1").Run(func(args mock.Arguments) {
		canceledFirst = true
	}).Return(nil).Once()
	subs.On("Create", mock.AnythingOfType("*models.UserSubscription")).Run(func(args mock.Arguments) {
		// The old row must already be canceled when the new one is inserted
		assert.True(t, canceledFirst)
	}).Return(nil).Once()

	sub, err := service.Subscribe("user-1", 3)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", sub.UserID)
	assert.Equal(t, uint(3), sub.PlanID)
	assert.Equal(t, models.SubscriptionActive, sub.Status)
	assert.True(t, sub.CurrentPeriodEnd.After(sub.CurrentPeriodStart))
	subs.AssertExpectations(t)
}

func TestSubscriptionService_Subscribe_UnknownPlan(t *testing.T) {
	subs := new(MockSubscriptionRepository)
	gate, router := newTestGate(subs, new(MockUserRepository), new(MockWardrobeBackend))
	service := services.NewSubscriptionService(subs, gate, router, nil)

	subs.On("GetPlanByID", uint(99)).Return(nil, assert.AnError).Once()

	_, err := service.Subscribe("user-1", 99)
	assert.Error(t, err)
	subs.AssertNotCalled(t, "CancelActive", mock.Anything)
	subs.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSubscriptionService_CancelThenFreeTier(t *testing.T) {
	subs := new(MockSubscriptionRepository)
	gate, router := newTestGate(subs, new(MockUserRepository), new(MockWardrobeBackend))
	service := services.NewSubscriptionService(subs, gate, router, nil)

	subs.On("CancelActive", "user-1").Return(nil).Once()
	assert.NoError(t, service.CancelSubscription("user-1"))

	// After cancellation the gate falls back to free-tier limits
	subs.On("GetActiveForUser", "user-1", mock.Anything).Return(nil, nil).Once()
	limits, err := gate.EffectiveLimits("user-1")
	assert.NoError(t, err)
	assert.Equal(t, services.FreeTierLimits, limits)
	subs.AssertExpectations(t)
}

func TestLimitGate_ExpiredSubscriptionNotInEffect(t *testing.T) {
	sub := models.UserSubscription{
		Status:           models.SubscriptionActive,
		CurrentPeriodEnd: time.Now().Add(-time.Hour),
	}
	assert.False(t, sub.InEffect(time.Now()))

	sub.CurrentPeriodEnd = time.Now().Add(time.Hour)
	assert.True(t, sub.InEffect(time.Now()))

	sub.Status = models.SubscriptionCanceled
	assert.False(t, sub.InEffect(time.Now()))
}
