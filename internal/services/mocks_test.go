package services_test

import (
	"context"
	"time"

	"wardrobe/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// MockSubscriptionRepository is a mock implementation of
// repositories.SubscriptionRepository
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) GetPlans() ([]models.SubscriptionPlan, error) {
	args := m.Called()
	return args.Get(0).([]models.SubscriptionPlan), args.Error(1)
}

func (m *MockSubscriptionRepository) GetPlanByID(id uint) (*models.SubscriptionPlan, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubscriptionPlan), args.Error(1)
}

func (m *MockSubscriptionRepository) GetActiveForUser(userID string, now time.Time) (*models.UserSubscription, error) {
	args := m.Called(userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSubscription), args.Error(1)
}

func (m *MockSubscriptionRepository) CancelActive(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Create(sub *models.UserSubscription) error {
	args := m.Called(sub)
	return args.Error(0)
}

// MockWardrobeBackend is a mock implementation of repositories.WardrobeBackend
type MockWardrobeBackend struct {
	mock.Mock
}

func (m *MockWardrobeBackend) CreateClothingItem(ctx context.Context, userID string, input models.ClothingItemInput, maxItems int) (models.ClothingItem, error) {
	args := m.Called(ctx, userID, input, maxItems)
	return args.Get(0).(models.ClothingItem), args.Error(1)
}

func (m *MockWardrobeBackend) ListClothingItems(ctx context.Context, userID string, filter models.ClothingFilter) ([]models.ClothingItem, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ClothingItem), args.Error(1)
}

func (m *MockWardrobeBackend) UpdateClothingItem(ctx context.Context, userID, id string, patch models.ClothingItemPatch) error {
	args := m.Called(ctx, userID, id, patch)
	return args.Error(0)
}

func (m *MockWardrobeBackend) DeleteClothingItem(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockWardrobeBackend) CountClothingItems(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWardrobeBackend) CreateOutfit(ctx context.Context, userID string, input models.OutfitInput, maxOutfits int) (models.Outfit, error) {
	args := m.Called(ctx, userID, input, maxOutfits)
	return args.Get(0).(models.Outfit), args.Error(1)
}

func (m *MockWardrobeBackend) ListOutfits(ctx context.Context, userID string, filter models.OutfitFilter) ([]models.Outfit, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Outfit), args.Error(1)
}

func (m *MockWardrobeBackend) GetOutfit(ctx context.Context, userID, id string) (models.Outfit, error) {
	args := m.Called(ctx, userID, id)
	return args.Get(0).(models.Outfit), args.Error(1)
}

func (m *MockWardrobeBackend) UpdateOutfit(ctx context.Context, userID, id string, patch models.OutfitPatch) error {
	args := m.Called(ctx, userID, id, patch)
	return args.Error(0)
}

func (m *MockWardrobeBackend) DeleteOutfit(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockWardrobeBackend) CountOutfits(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
