package models

import (
	"time"

	"gorm.io/gorm"
)

// StorageType selects which backend serves a user's wardrobe data.
type StorageType string

const (
	// StorageLocal is the default: the app's own relational database.
	StorageLocal StorageType = "local"
	// StorageNotion routes wardrobe data to the user's own Notion workspace.
	StorageNotion StorageType = "notion"
)

// User represents an account. AuthLevel is a cached projection of the
// feature flags (passkey enabled, Notion fully configured); it is recomputed
// on every flag mutation and must never be treated as a source of truth.
type User struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Name     string `json:"name" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	Password string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security

	StorageType       StorageType `json:"storage_type" gorm:"type:varchar(20);default:local"`
	NotionToken       string      `json:"-" gorm:"type:varchar(255)"`
	NotionItemsDBID   string      `json:"-" gorm:"type:varchar(64)"`
	NotionOutfitsDBID string      `json:"-" gorm:"type:varchar(64)"`

	PasskeyEnabled  bool       `json:"passkey_enabled"`
	AuthLevel       int        `json:"auth_level" gorm:"default:1"`
	AuthCompletedAt *time.Time `json:"auth_completed_at,omitempty"`

	gorm.Model // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// NotionConfig is the set of credentials needed to operate in Notion mode.
// A partially filled config is a valid stored state but not an operable one.
type NotionConfig struct {
	Token             string
	ItemsDatabaseID   string
	OutfitsDatabaseID string
}

// Complete reports whether every field required for Notion mode is present.
func (c NotionConfig) Complete() bool {
	return c.Token != "" && c.ItemsDatabaseID != "" && c.OutfitsDatabaseID != ""
}

// NotionConfig returns the user's stored Notion credentials.
func (u *User) NotionConfig() NotionConfig {
	return NotionConfig{
		Token:             u.NotionToken,
		ItemsDatabaseID:   u.NotionItemsDBID,
		OutfitsDatabaseID: u.NotionOutfitsDBID,
	}
}

// StoragePreferences is the client-facing view of a user's storage settings.
// Credentials are reduced to a linked/not-linked flag.
type StoragePreferences struct {
	StorageType  StorageType `json:"storage_type"`
	NotionLinked bool        `json:"notion_linked"`
}

// AuthStatus summarizes how far a user has taken the optional security and
// integration features. Level is 1-4 per the analyzer's truth table.
type AuthStatus struct {
	Level             int      `json:"level"`
	CompletedFeatures []string `json:"completed_features"`
	MissingFeatures   []string `json:"missing_features"`
	NextSteps         []string `json:"next_steps"`
	Description       string   `json:"description"`
}
