package services

import (
	"context"

	"wardrobe/internal/apperrors"
	"wardrobe/internal/models"
	"wardrobe/internal/repositories"
)

// NotionBackendFactory builds a Notion backend for one user's credentials.
// Injected so tests can substitute a fake without network access.
type NotionBackendFactory func(cfg models.NotionConfig) repositories.WardrobeBackend

// StorageRouter dispatches every wardrobe operation to the backend the
// calling user has configured. It owns no state beyond its collaborators;
// each operation loads the user's preference exactly once, selects a
// backend, and forwards. Callers never learn which backend served them:
// return shapes are identical on both paths, and backend errors pass
// through unchanged.
type StorageRouter struct {
	users  repositories.UserRepository
	local  repositories.WardrobeBackend
	notion NotionBackendFactory
}

// NewStorageRouter creates a new StorageRouter.
func NewStorageRouter(users repositories.UserRepository, local repositories.WardrobeBackend, notion NotionBackendFactory) *StorageRouter {
	return &StorageRouter{
		users:  users,
		local:  local,
		notion: notion,
	}
}

// backendFor selects the backend for one request. Notion mode with an
// incomplete config fails outright; silently falling back to the local
// store would write a user's data to a backend they did not choose.
func (r *StorageRouter) backendFor(userID string) (repositories.WardrobeBackend, error) {
	user, err := r.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	switch user.StorageType {
	case models.StorageNotion:
		cfg := user.NotionConfig()
		if !cfg.Complete() {
			return nil, apperrors.ErrNotionNotConfigured
		}
		return r.notion(cfg), nil
	default:
		// Local is the default for unset or unknown preferences.
		return r.local, nil
	}
}

func (r *StorageRouter) CreateClothingItem(ctx context.Context, userID string, input models.ClothingItemInput, maxItems int) (models.ClothingItem, error) {
	backend, err := r.backendFor(userID)
	if err != nil {
		return models.ClothingItem{}, err
	}
	return backend.CreateClothingItem(ctx, userID, input, maxItems)
}

func (r *StorageRouter) ListClothingItems(ctx context.Context, userID string, filter models.ClothingFilter) ([]models.ClothingItem, error) {
	backend, err := r.backendFor(userID)
	if err != nil {
		return nil, err
	}
	return backend.ListClothingItems(ctx, userID, filter)
}

func (r *StorageRouter) UpdateClothingItem(ctx context.Context, userID, id string, patch models.ClothingItemPatch) error {
	backend, err := r.backendFor(userID)
	if err != nil {
		return err
	}
	return backend.UpdateClothingItem(ctx, userID, id, patch)
}

func (r *StorageRouter) DeleteClothingItem(ctx context.Context, userID, id string) error {
	backend, err := r.backendFor(userID)
	if err != nil {
		return err
	}
	return backend.DeleteClothingItem(ctx, userID, id)
}

func (r *StorageRouter) CreateOutfit(ctx context.Context, userID string, input models.OutfitInput, maxOutfits int) (models.Outfit, error) {
	backend, err := r.backendFor(userID)
	if err != nil {
		return models.Outfit{}, err
	}
	return backend.CreateOutfit(ctx, userID, input, maxOutfits)
}

func (r *StorageRouter) ListOutfits(ctx context.Context, userID string, filter models.OutfitFilter) ([]models.Outfit, error) {
	backend, err := r.backendFor(userID)
	if err != nil {
		return nil, err
	}
	return backend.ListOutfits(ctx, userID, filter)
}

// GetOutfit forwards the single-outfit lookup. In Notion mode the backend
// reports it as unsupported rather than failing generically.
func (r *StorageRouter) GetOutfit(ctx context.Context, userID, id string) (models.Outfit, error) {
	backend, err := r.backendFor(userID)
	if err != nil {
		return models.Outfit{}, err
	}
	return backend.GetOutfit(ctx, userID, id)
}

func (r *StorageRouter) UpdateOutfit(ctx context.Context, userID, id string, patch models.OutfitPatch) error {
	backend, err := r.backendFor(userID)
	if err != nil {
		return err
	}
	return backend.UpdateOutfit(ctx, userID, id, patch)
}

func (r *StorageRouter) DeleteOutfit(ctx context.Context, userID, id string) error {
	backend, err := r.backendFor(userID)
	if err != nil {
		return err
	}
	return backend.DeleteOutfit(ctx, userID, id)
}

// Usage returns the caller's current counts from whichever backend holds
// their data.
func (r *StorageRouter) Usage(ctx context.Context, userID string) (models.Usage, error) {
	backend, err := r.backendFor(userID)
	if err != nil {
		return models.Usage{}, err
	}
	items, err := backend.CountClothingItems(ctx, userID)
	if err != nil {
		return models.Usage{}, err
	}
	outfits, err := backend.CountOutfits(ctx, userID)
	if err != nil {
		return models.Usage{}, err
	}
	return models.Usage{ItemsCount: items, OutfitsCount: outfits}, nil
}

// Count returns one usage dimension.
func (r *StorageRouter) Count(ctx context.Context, userID string, kind models.LimitKind) (int64, error) {
	backend, err := r.backendFor(userID)
	if err != nil {
		return 0, err
	}
	if kind == models.LimitKindOutfits {
		return backend.CountOutfits(ctx, userID)
	}
	return backend.CountClothingItems(ctx, userID)
}
