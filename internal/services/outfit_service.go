package services

import (
	"context"

	"wardrobe/internal/models"
)

// OutfitService handles business logic related to outfits.
type OutfitService struct {
	router *StorageRouter
	gate   *LimitGate
}

// NewOutfitService creates a new OutfitService.
func NewOutfitService(router *StorageRouter, gate *LimitGate) *OutfitService {
	return &OutfitService{
		router: router,
		gate:   gate,
	}
}

// CreateOutfit creates a new outfit for the user, enforcing the plan quota.
func (s *OutfitService) CreateOutfit(ctx context.Context, userID string, input models.OutfitInput) (models.Outfit, error) {
	limits, err := s.gate.EffectiveLimits(userID)
	if err != nil {
		return models.Outfit{}, err
	}
	return s.router.CreateOutfit(ctx, userID, input, limits.MaxOutfits)
}

// GetOutfits retrieves the caller's outfits.
func (s *OutfitService) GetOutfits(ctx context.Context, userID string, filter models.OutfitFilter) ([]models.Outfit, error) {
	return s.router.ListOutfits(ctx, userID, filter)
}

// GetOutfitByID retrieves a single owned outfit. Unsupported in Notion mode.
func (s *OutfitService) GetOutfitByID(ctx context.Context, userID, id string) (models.Outfit, error) {
	return s.router.GetOutfit(ctx, userID, id)
}

// UpdateOutfit applies a partial update to an owned outfit.
func (s *OutfitService) UpdateOutfit(ctx context.Context, userID, id string, patch models.OutfitPatch) error {
	return s.router.UpdateOutfit(ctx, userID, id, patch)
}

// DeleteOutfit removes an owned outfit.
func (s *OutfitService) DeleteOutfit(ctx context.Context, userID, id string) error {
	return s.router.DeleteOutfit(ctx, userID, id)
}
