package models

import "time"

// Season classifies when a piece of clothing is worn.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
	SeasonAll    Season = "all"
)

// ClothingItem is the backend-independent representation of a wardrobe item.
// ID is the transport form of whichever ID space the owning backend uses:
// a decimal LocalID for the relational store, an opaque NotionID otherwise.
type ClothingItem struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Name         string     `json:"name"`
	CategoryID   uint       `json:"category_id"`
	Brand        string     `json:"brand,omitempty"`
	Color        string     `json:"color,omitempty"`
	Size         string     `json:"size,omitempty"`
	Season       Season     `json:"season,omitempty"`
	ImageURL     string     `json:"image_url,omitempty"`
	Price        int        `json:"price,omitempty"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ClothingItemInput carries the fields a caller may set on create. The owner
// is never part of the input; it is stamped from the authenticated session.
type ClothingItemInput struct {
	Name         string
	CategoryID   uint
	Brand        string
	Color        string
	Size         string
	Season       Season
	ImageURL     string
	Price        int
	PurchaseDate *time.Time
	Notes        string
	Tags         []string
}

// ClothingItemPatch carries a partial update; nil fields are left untouched.
type ClothingItemPatch struct {
	Name         *string
	CategoryID   *uint
	Brand        *string
	Color        *string
	Size         *string
	Season       *Season
	ImageURL     *string
	Price        *int
	PurchaseDate *time.Time
	Notes        *string
	Tags         *[]string
}

// ClothingFilter narrows a listing. All criteria are ANDed together.
type ClothingFilter struct {
	CategoryID *uint
	Season     *Season
	Brand      string
	Search     string
}
