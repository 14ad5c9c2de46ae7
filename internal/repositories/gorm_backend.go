package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"wardrobe/internal/apperrors"
	"wardrobe/internal/models"
)

// GORMWardrobeRepository is the relational implementation of WardrobeBackend.
type GORMWardrobeRepository struct {
	db *gorm.DB
}

// NewGORMWardrobeRepository creates a new instance of GORMWardrobeRepository.
func NewGORMWardrobeRepository(db *gorm.DB) *GORMWardrobeRepository {
	return &GORMWardrobeRepository{
		db: db,
	}
}

// lockOwner serializes quota-limited creates for one user. The update takes
// a row lock on the owner, so a second transaction blocks here until the
// first commits and its insert is visible to the count that follows. A plain
// count-then-insert is not enough: under read committed, two transactions
// can both count one short of the limit and both insert.
func lockOwner(tx *gorm.DB, userID string) error {
	err := tx.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("updated_at", time.Now()).Error
	if err != nil {
		return fmt.Errorf("failed to lock user %s: %w", userID, err)
	}
	return nil
}

// CreateClothingItem inserts a new item owned by userID. When maxItems is
// not unlimited, the owner row is locked and the count and insert run in one
// transaction, so two concurrent creates cannot both squeeze past the last
// free slot.
func (r *GORMWardrobeRepository) CreateClothingItem(ctx context.Context, userID string, input models.ClothingItemInput, maxItems int) (models.ClothingItem, error) {
	m := clothingModelFromInput(userID, input)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if maxItems != models.Unlimited {
			if err := lockOwner(tx, userID); err != nil {
				return err
			}
			var count int64
			if err := tx.Model(&ClothingItemModel{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to count clothing items: %w", err)
			}
			if count >= int64(maxItems) {
				return &apperrors.LimitReachedError{Kind: models.LimitKindItems, Current: count, Limit: maxItems}
			}
		}
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("failed to create clothing item: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.ClothingItem{}, err
	}
	return m.toDomain(), nil
}

// ListClothingItems retrieves the caller's items, newest first.
func (r *GORMWardrobeRepository) ListClothingItems(ctx context.Context, userID string, filter models.ClothingFilter) ([]models.ClothingItem, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Season != nil {
		q = q.Where("season = ?", string(*filter.Season))
	}
	if filter.Brand != "" {
		q = q.Where("brand = ?", filter.Brand)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR notes LIKE ?", pattern, pattern)
	}

	var rows []ClothingItemModel
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list clothing items: %w", err)
	}

	items := make([]models.ClothingItem, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].toDomain())
	}
	return items, nil
}

// UpdateClothingItem applies a partial update. The lookup predicate is
// always (id AND user_id); a foreign or absent id is uniformly NotFound.
func (r *GORMWardrobeRepository) UpdateClothingItem(ctx context.Context, userID, id string, patch models.ClothingItemPatch) error {
	localID, err := models.ParseLocalID(id)
	if err != nil {
		return apperrors.ErrNotFound
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m ClothingItemModel
		if err := tx.First(&m, "id = ? AND user_id = ?", uint(localID), userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("failed to load clothing item %s: %w", id, err)
		}

		applyClothingPatch(&m, patch)
		if err := tx.Save(&m).Error; err != nil {
			return fmt.Errorf("failed to update clothing item %s: %w", id, err)
		}
		return nil
	})
}

// DeleteClothingItem removes an item owned by userID.
func (r *GORMWardrobeRepository) DeleteClothingItem(ctx context.Context, userID, id string) error {
	localID, err := models.ParseLocalID(id)
	if err != nil {
		return apperrors.ErrNotFound
	}

	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", uint(localID), userID).Delete(&ClothingItemModel{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete clothing item %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountClothingItems returns the caller's current item count.
func (r *GORMWardrobeRepository) CountClothingItems(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ClothingItemModel{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count clothing items: %w", err)
	}
	return count, nil
}

func applyClothingPatch(m *ClothingItemModel, patch models.ClothingItemPatch) {
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.CategoryID != nil {
		m.CategoryID = *patch.CategoryID
	}
	if patch.Brand != nil {
		m.Brand = *patch.Brand
	}
	if patch.Color != nil {
		m.Color = *patch.Color
	}
	if patch.Size != nil {
		m.Size = *patch.Size
	}
	if patch.Season != nil {
		m.Season = string(*patch.Season)
	}
	if patch.ImageURL != nil {
		m.ImageURL = *patch.ImageURL
	}
	if patch.Price != nil {
		m.Price = *patch.Price
	}
	if patch.PurchaseDate != nil {
		m.PurchaseDate = patch.PurchaseDate
	}
	if patch.Notes != nil {
		m.Notes = *patch.Notes
	}
	if patch.Tags != nil {
		m.Tags = *patch.Tags
	}
}
