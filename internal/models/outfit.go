package models

import "time"

// Occasion classifies what an outfit is composed for.
type Occasion string

const (
	OccasionCasual Occasion = "casual"
	OccasionWork   Occasion = "work"
	OccasionFormal Occasion = "formal"
	OccasionSport  Occasion = "sport"
	OccasionParty  Occasion = "party"
	OccasionTravel Occasion = "travel"
)

// Outfit is the backend-independent representation of a composed outfit.
// ClothingItemIDs reference items in the same backend the outfit lives in.
type Outfit struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	Name            string     `json:"name"`
	Description     string     `json:"description,omitempty"`
	Occasion        Occasion   `json:"occasion,omitempty"`
	Season          Season     `json:"season,omitempty"`
	Rating          int        `json:"rating,omitempty"`
	LastWorn        *time.Time `json:"last_worn,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
	ClothingItemIDs []string   `json:"clothing_item_ids"`
	CreatedAt       time.Time  `json:"created_at"`
}

// OutfitInput carries the fields a caller may set on create.
type OutfitInput struct {
	Name            string
	Description     string
	Occasion        Occasion
	Season          Season
	Rating          int
	LastWorn        *time.Time
	Tags            []string
	ClothingItemIDs []string
}

// OutfitPatch carries a partial update; nil fields are left untouched.
// A non-nil ClothingItemIDs replaces the item set wholesale.
type OutfitPatch struct {
	Name            *string
	Description     *string
	Occasion        *Occasion
	Season          *Season
	Rating          *int
	LastWorn        *time.Time
	Tags            *[]string
	ClothingItemIDs *[]string
}

// OutfitFilter narrows a listing.
type OutfitFilter struct {
	Occasion *Occasion
	Season   *Season
	Search   string
}
