package repositories

import (
	"time"

	"gorm.io/gorm"

	"wardrobe/internal/models"
)

// ClothingItemModel is the relational row behind models.ClothingItem.
// Persistence rows are kept separate from the domain types because the
// Notion backend serves the same domain types from a very different shape.
type ClothingItemModel struct {
	gorm.Model
	UserID       string `gorm:"index;type:varchar(36);not null"`
	CategoryID   uint
	Name         string `gorm:"type:varchar(255);not null"`
	Brand        string `gorm:"type:varchar(100)"`
	Color        string `gorm:"type:varchar(50)"`
	Size         string `gorm:"type:varchar(50)"`
	Season       string `gorm:"type:varchar(10)"`
	ImageURL     string `gorm:"type:varchar(500)"`
	Price        int
	PurchaseDate *time.Time
	Notes        string   `gorm:"type:varchar(1000)"`
	Tags         []string `gorm:"serializer:json"`
}

func (ClothingItemModel) TableName() string { return "clothing_items" }

// OutfitModel is the relational row behind models.Outfit. Items go through
// an explicit join table.
type OutfitModel struct {
	gorm.Model
	UserID      string `gorm:"index;type:varchar(36);not null"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:varchar(1000)"`
	Occasion    string `gorm:"type:varchar(20)"`
	Season      string `gorm:"type:varchar(10)"`
	Rating      int
	LastWorn    *time.Time
	Tags        []string            `gorm:"serializer:json"`
	Items       []ClothingItemModel `gorm:"many2many:outfit_items"`
}

func (OutfitModel) TableName() string { return "outfits" }

func (m *ClothingItemModel) toDomain() models.ClothingItem {
	return models.ClothingItem{
		ID:           models.LocalID(m.ID).String(),
		UserID:       m.UserID,
		Name:         m.Name,
		CategoryID:   m.CategoryID,
		Brand:        m.Brand,
		Color:        m.Color,
		Size:         m.Size,
		Season:       models.Season(m.Season),
		ImageURL:     m.ImageURL,
		Price:        m.Price,
		PurchaseDate: m.PurchaseDate,
		Notes:        m.Notes,
		Tags:         m.Tags,
		CreatedAt:    m.CreatedAt,
	}
}

func clothingModelFromInput(userID string, input models.ClothingItemInput) ClothingItemModel {
	return ClothingItemModel{
		UserID:       userID,
		CategoryID:   input.CategoryID,
		Name:         input.Name,
		Brand:        input.Brand,
		Color:        input.Color,
		Size:         input.Size,
		Season:       string(input.Season),
		ImageURL:     input.ImageURL,
		Price:        input.Price,
		PurchaseDate: input.PurchaseDate,
		Notes:        input.Notes,
		Tags:         input.Tags,
	}
}

func (m *OutfitModel) toDomain() models.Outfit {
	itemIDs := make([]string, 0, len(m.Items))
	for _, item := range m.Items {
		itemIDs = append(itemIDs, models.LocalID(item.ID).String())
	}
	return models.Outfit{
		ID:              models.LocalID(m.ID).String(),
		UserID:          m.UserID,
		Name:            m.Name,
		Description:     m.Description,
		Occasion:        models.Occasion(m.Occasion),
		Season:          models.Season(m.Season),
		Rating:          m.Rating,
		LastWorn:        m.LastWorn,
		Tags:            m.Tags,
		ClothingItemIDs: itemIDs,
		CreatedAt:       m.CreatedAt,
	}
}
