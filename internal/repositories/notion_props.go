package repositories

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jomei/notionapi"

	"wardrobe/internal/models"
)

// Property names form the wire contract with a user's Notion databases.
// Changing any of these breaks compatibility with existing workspaces.
const (
	propName         = "Name"
	propUserID       = "UserID"
	propCategoryID   = "CategoryID"
	propBrand        = "Brand"
	propColor        = "Color"
	propSize         = "Size"
	propSeason       = "Season"
	propImageURL     = "ImageURL"
	propPrice        = "Price"
	propPurchaseDate = "PurchaseDate"
	propNotes        = "Notes"
	propTags         = "Tags"
	propDescription  = "Description"
	propOccasion     = "Occasion"
	propRating       = "Rating"
	propLastWorn     = "LastWorn"
	propItems        = "ClothingItems"
)

// ratingGlyph is repeated Rating times to encode an outfit rating. The
// decoder counts runes; it never parses an integer out of the string.
const ratingGlyph = "★"

func encodeRating(rating int) string {
	if rating < 0 {
		rating = 0
	}
	return strings.Repeat(ratingGlyph, rating)
}

func decodeRating(s string) int {
	return utf8.RuneCountInString(s)
}

func titleProp(v string) notionapi.TitleProperty {
	return notionapi.TitleProperty{
		Title: []notionapi.RichText{{Text: &notionapi.Text{Content: v}}},
	}
}

func richTextProp(v string) notionapi.RichTextProperty {
	if v == "" {
		return notionapi.RichTextProperty{RichText: []notionapi.RichText{}}
	}
	return notionapi.RichTextProperty{
		RichText: []notionapi.RichText{{Text: &notionapi.Text{Content: v}}},
	}
}

func selectProp(v string) notionapi.SelectProperty {
	return notionapi.SelectProperty{Select: notionapi.Option{Name: v}}
}

func multiSelectProp(values []string) notionapi.MultiSelectProperty {
	opts := make([]notionapi.Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, notionapi.Option{Name: v})
	}
	return notionapi.MultiSelectProperty{MultiSelect: opts}
}

func numberProp(v int) notionapi.NumberProperty {
	return notionapi.NumberProperty{Number: float64(v)}
}

func dateProp(t time.Time) notionapi.DateProperty {
	d := notionapi.Date(t)
	return notionapi.DateProperty{Date: &notionapi.DateObject{Start: &d}}
}

func relationProp(ids []string) notionapi.RelationProperty {
	rels := make([]notionapi.Relation, 0, len(ids))
	for _, id := range ids {
		rels = append(rels, notionapi.Relation{ID: notionapi.PageID(id)})
	}
	return notionapi.RelationProperty{Relation: rels}
}

func plainText(rts []notionapi.RichText) string {
	var b strings.Builder
	for _, rt := range rts {
		if rt.PlainText != "" {
			b.WriteString(rt.PlainText)
		} else if rt.Text != nil {
			b.WriteString(rt.Text.Content)
		}
	}
	return b.String()
}

func readTitle(props notionapi.Properties, name string) string {
	if p, ok := props[name].(*notionapi.TitleProperty); ok {
		return plainText(p.Title)
	}
	return ""
}

func readRichText(props notionapi.Properties, name string) string {
	if p, ok := props[name].(*notionapi.RichTextProperty); ok {
		return plainText(p.RichText)
	}
	return ""
}

func readSelect(props notionapi.Properties, name string) string {
	if p, ok := props[name].(*notionapi.SelectProperty); ok {
		return p.Select.Name
	}
	return ""
}

func readMultiSelect(props notionapi.Properties, name string) []string {
	p, ok := props[name].(*notionapi.MultiSelectProperty)
	if !ok || len(p.MultiSelect) == 0 {
		return nil
	}
	values := make([]string, 0, len(p.MultiSelect))
	for _, opt := range p.MultiSelect {
		values = append(values, opt.Name)
	}
	return values
}

func readNumber(props notionapi.Properties, name string) int {
	if p, ok := props[name].(*notionapi.NumberProperty); ok {
		return int(p.Number)
	}
	return 0
}

func readDate(props notionapi.Properties, name string) *time.Time {
	p, ok := props[name].(*notionapi.DateProperty)
	if !ok || p.Date == nil || p.Date.Start == nil {
		return nil
	}
	t := time.Time(*p.Date.Start)
	return &t
}

func readURL(props notionapi.Properties, name string) string {
	if p, ok := props[name].(*notionapi.URLProperty); ok {
		return p.URL
	}
	return ""
}

func readRelationIDs(props notionapi.Properties, name string) []string {
	p, ok := props[name].(*notionapi.RelationProperty)
	if !ok || len(p.Relation) == 0 {
		return nil
	}
	ids := make([]string, 0, len(p.Relation))
	for _, rel := range p.Relation {
		ids = append(ids, string(rel.ID))
	}
	return ids
}

// clothingItemProps builds the full property set for an item page. The owner
// is written as a rich-text property; it is the only access-scoping
// mechanism this backend has.
func clothingItemProps(userID string, input models.ClothingItemInput) notionapi.Properties {
	props := notionapi.Properties{
		propName:       titleProp(input.Name),
		propUserID:     richTextProp(userID),
		propCategoryID: richTextProp(models.LocalID(input.CategoryID).String()),
		propBrand:      richTextProp(input.Brand),
		propColor:      richTextProp(input.Color),
		propSize:       richTextProp(input.Size),
		propNotes:      richTextProp(input.Notes),
		propPrice:      numberProp(input.Price),
		propTags:       multiSelectProp(input.Tags),
		propImageURL:   notionapi.URLProperty{URL: input.ImageURL},
	}
	if input.Season != "" {
		props[propSeason] = selectProp(string(input.Season))
	}
	if input.PurchaseDate != nil {
		props[propPurchaseDate] = dateProp(*input.PurchaseDate)
	}
	return props
}

func clothingItemFromPage(page notionapi.Page) models.ClothingItem {
	categoryID, _ := models.ParseLocalID(readRichText(page.Properties, propCategoryID))
	return models.ClothingItem{
		ID:           string(page.ID),
		UserID:       readRichText(page.Properties, propUserID),
		Name:         readTitle(page.Properties, propName),
		CategoryID:   uint(categoryID),
		Brand:        readRichText(page.Properties, propBrand),
		Color:        readRichText(page.Properties, propColor),
		Size:         readRichText(page.Properties, propSize),
		Season:       models.Season(readSelect(page.Properties, propSeason)),
		ImageURL:     readURL(page.Properties, propImageURL),
		Price:        readNumber(page.Properties, propPrice),
		PurchaseDate: readDate(page.Properties, propPurchaseDate),
		Notes:        readRichText(page.Properties, propNotes),
		Tags:         readMultiSelect(page.Properties, propTags),
		CreatedAt:    page.CreatedTime,
	}
}

func outfitProps(userID string, input models.OutfitInput) notionapi.Properties {
	props := notionapi.Properties{
		propName:        titleProp(input.Name),
		propUserID:      richTextProp(userID),
		propDescription: richTextProp(input.Description),
		propRating:      richTextProp(encodeRating(input.Rating)),
		propTags:        multiSelectProp(input.Tags),
		propItems:       relationProp(input.ClothingItemIDs),
	}
	if input.Occasion != "" {
		props[propOccasion] = selectProp(string(input.Occasion))
	}
	if input.Season != "" {
		props[propSeason] = selectProp(string(input.Season))
	}
	if input.LastWorn != nil {
		props[propLastWorn] = dateProp(*input.LastWorn)
	}
	return props
}

func outfitFromPage(page notionapi.Page) models.Outfit {
	return models.Outfit{
		ID:              string(page.ID),
		UserID:          readRichText(page.Properties, propUserID),
		Name:            readTitle(page.Properties, propName),
		Description:     readRichText(page.Properties, propDescription),
		Occasion:        models.Occasion(readSelect(page.Properties, propOccasion)),
		Season:          models.Season(readSelect(page.Properties, propSeason)),
		Rating:          decodeRating(readRichText(page.Properties, propRating)),
		LastWorn:        readDate(page.Properties, propLastWorn),
		Tags:            readMultiSelect(page.Properties, propTags),
		ClothingItemIDs: readRelationIDs(page.Properties, propItems),
		CreatedAt:       page.CreatedTime,
	}
}
