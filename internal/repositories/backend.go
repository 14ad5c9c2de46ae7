package repositories

import (
	"context"

	"wardrobe/internal/models"
)

// WardrobeBackend is the sealed storage contract both backends implement.
// Every operation is scoped to the owning user; implementations must make
// cross-user access structurally impossible, never filter after fetch.
//
// Create operations take the effective quota for their kind so a backend
// that can enforce it atomically (the relational one) does so inside the
// same write. models.Unlimited disables the check.
type WardrobeBackend interface {
	CreateClothingItem(ctx context.Context, userID string, input models.ClothingItemInput, maxItems int) (models.ClothingItem, error)
	ListClothingItems(ctx context.Context, userID string, filter models.ClothingFilter) ([]models.ClothingItem, error)
	UpdateClothingItem(ctx context.Context, userID, id string, patch models.ClothingItemPatch) error
	DeleteClothingItem(ctx context.Context, userID, id string) error
	CountClothingItems(ctx context.Context, userID string) (int64, error)

	CreateOutfit(ctx context.Context, userID string, input models.OutfitInput, maxOutfits int) (models.Outfit, error)
	ListOutfits(ctx context.Context, userID string, filter models.OutfitFilter) ([]models.Outfit, error)
	GetOutfit(ctx context.Context, userID, id string) (models.Outfit, error)
	UpdateOutfit(ctx context.Context, userID, id string, patch models.OutfitPatch) error
	DeleteOutfit(ctx context.Context, userID, id string) error
	CountOutfits(ctx context.Context, userID string) (int64, error)
}
