package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"wardrobe/internal/apperrors"
	"wardrobe/internal/models"
)

// CreateOutfit inserts a new outfit and its join rows. Referenced items must
// all belong to userID; a foreign or absent reference is NotFound so item
// existence never leaks across users. Quota enforcement mirrors
// CreateClothingItem: the owner row is locked, then count and insert share
// one transaction.
func (r *GORMWardrobeRepository) CreateOutfit(ctx context.Context, userID string, input models.OutfitInput, maxOutfits int) (models.Outfit, error) {
	m := OutfitModel{
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		Occasion:    string(input.Occasion),
		Season:      string(input.Season),
		Rating:      input.Rating,
		LastWorn:    input.LastWorn,
		Tags:        input.Tags,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if maxOutfits != models.Unlimited {
			if err := lockOwner(tx, userID); err != nil {
				return err
			}
			var count int64
			if err := tx.Model(&OutfitModel{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to count outfits: %w", err)
			}
			if count >= int64(maxOutfits) {
				return &apperrors.LimitReachedError{Kind: models.LimitKindOutfits, Current: count, Limit: maxOutfits}
			}
		}

		items, err := r.ownedItems(tx, userID, input.ClothingItemIDs)
		if err != nil {
			return err
		}
		m.Items = items

		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("failed to create outfit: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Outfit{}, err
	}
	return m.toDomain(), nil
}

// ListOutfits retrieves the caller's outfits with their items, newest first.
func (r *GORMWardrobeRepository) ListOutfits(ctx context.Context, userID string, filter models.OutfitFilter) ([]models.Outfit, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Occasion != nil {
		q = q.Where("occasion = ?", string(*filter.Occasion))
	}
	if filter.Season != nil {
		q = q.Where("season = ?", string(*filter.Season))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var rows []OutfitModel
	if err := q.Preload("Items").Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list outfits: %w", err)
	}

	outfits := make([]models.Outfit, 0, len(rows))
	for i := range rows {
		outfits = append(outfits, rows[i].toDomain())
	}
	return outfits, nil
}

// GetOutfit retrieves a single outfit owned by userID.
func (r *GORMWardrobeRepository) GetOutfit(ctx context.Context, userID, id string) (models.Outfit, error) {
	localID, err := models.ParseLocalID(id)
	if err != nil {
		return models.Outfit{}, apperrors.ErrNotFound
	}

	var m OutfitModel
	if err := r.db.WithContext(ctx).Preload("Items").First(&m, "id = ? AND user_id = ?", uint(localID), userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Outfit{}, apperrors.ErrNotFound
		}
		return models.Outfit{}, fmt.Errorf("failed to get outfit %s: %w", id, err)
	}
	return m.toDomain(), nil
}

// UpdateOutfit applies a partial update. A non-nil ClothingItemIDs replaces
// the join set wholesale.
func (r *GORMWardrobeRepository) UpdateOutfit(ctx context.Context, userID, id string, patch models.OutfitPatch) error {
	localID, err := models.ParseLocalID(id)
	if err != nil {
		return apperrors.ErrNotFound
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m OutfitModel
		if err := tx.First(&m, "id = ? AND user_id = ?", uint(localID), userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("failed to load outfit %s: %w", id, err)
		}

		applyOutfitPatch(&m, patch)
		if err := tx.Save(&m).Error; err != nil {
			return fmt.Errorf("failed to update outfit %s: %w", id, err)
		}

		if patch.ClothingItemIDs != nil {
			items, err := r.ownedItems(tx, userID, *patch.ClothingItemIDs)
			if err != nil {
				return err
			}
			if err := tx.Model(&m).Association("Items").Replace(items); err != nil {
				return fmt.Errorf("failed to replace outfit items: %w", err)
			}
		}
		return nil
	})
}

// DeleteOutfit removes an outfit and its join rows.
func (r *GORMWardrobeRepository) DeleteOutfit(ctx context.Context, userID, id string) error {
	localID, err := models.ParseLocalID(id)
	if err != nil {
		return apperrors.ErrNotFound
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m OutfitModel
		if err := tx.First(&m, "id = ? AND user_id = ?", uint(localID), userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("failed to load outfit %s: %w", id, err)
		}
		if err := tx.Model(&m).Association("Items").Clear(); err != nil {
			return fmt.Errorf("failed to clear outfit items: %w", err)
		}
		if err := tx.Delete(&m).Error; err != nil {
			return fmt.Errorf("failed to delete outfit %s: %w", id, err)
		}
		return nil
	})
}

// CountOutfits returns the caller's current outfit count.
func (r *GORMWardrobeRepository) CountOutfits(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OutfitModel{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count outfits: %w", err)
	}
	return count, nil
}

// ownedItems resolves item IDs to rows owned by userID. Any ID that does
// not resolve (bad format, absent, or another user's) fails the whole call.
func (r *GORMWardrobeRepository) ownedItems(tx *gorm.DB, userID string, ids []string) ([]ClothingItemModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	localIDs := make([]uint, 0, len(ids))
	for _, id := range ids {
		localID, err := models.ParseLocalID(id)
		if err != nil {
			return nil, apperrors.ErrNotFound
		}
		localIDs = append(localIDs, uint(localID))
	}

	var items []ClothingItemModel
	if err := tx.Where("id IN ? AND user_id = ?", localIDs, userID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load outfit items: %w", err)
	}
	if len(items) != len(localIDs) {
		return nil, apperrors.ErrNotFound
	}
	return items, nil
}

func applyOutfitPatch(m *OutfitModel, patch models.OutfitPatch) {
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Description != nil {
		m.Description = *patch.Description
	}
	if patch.Occasion != nil {
		m.Occasion = string(*patch.Occasion)
	}
	if patch.Season != nil {
		m.Season = string(*patch.Season)
	}
	if patch.Rating != nil {
		m.Rating = *patch.Rating
	}
	if patch.LastWorn != nil {
		m.LastWorn = patch.LastWorn
	}
	if patch.Tags != nil {
		m.Tags = *patch.Tags
	}
}
