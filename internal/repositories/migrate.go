package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"wardrobe/internal/models"
)

// AutoMigrate creates or updates every relational table the app owns.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.SubscriptionPlan{},
		&models.UserSubscription{},
		&ClothingItemModel{},
		&OutfitModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	return nil
}
