package services

import (
	"context"

	"wardrobe/internal/models"
)

// ClothingService handles business logic related to clothing items. All
// storage dispatch is delegated to the router; the only logic here is the
// quota resolution on the create path.
type ClothingService struct {
	router *StorageRouter
	gate   *LimitGate
}

// NewClothingService creates a new ClothingService.
func NewClothingService(router *StorageRouter, gate *LimitGate) *ClothingService {
	return &ClothingService{
		router: router,
		gate:   gate,
	}
}

// CreateClothingItem creates a new item for the user, enforcing the plan
// quota. The resolved limit travels into the backend so the relational
// path can enforce it atomically with the insert.
func (s *ClothingService) CreateClothingItem(ctx context.Context, userID string, input models.ClothingItemInput) (models.ClothingItem, error) {
	limits, err := s.gate.EffectiveLimits(userID)
	if err != nil {
		return models.ClothingItem{}, err
	}
	return s.router.CreateClothingItem(ctx, userID, input, limits.MaxItems)
}

// GetClothingItems retrieves the caller's items.
func (s *ClothingService) GetClothingItems(ctx context.Context, userID string, filter models.ClothingFilter) ([]models.ClothingItem, error) {
	return s.router.ListClothingItems(ctx, userID, filter)
}

// UpdateClothingItem applies a partial update to an owned item.
func (s *ClothingService) UpdateClothingItem(ctx context.Context, userID, id string, patch models.ClothingItemPatch) error {
	return s.router.UpdateClothingItem(ctx, userID, id, patch)
}

// DeleteClothingItem removes an owned item.
func (s *ClothingService) DeleteClothingItem(ctx context.Context, userID, id string) error {
	return s.router.DeleteClothingItem(ctx, userID, id)
}
