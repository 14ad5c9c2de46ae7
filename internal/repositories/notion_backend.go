package repositories

import (
	"context"
	"errors"

	"github.com/jomei/notionapi"

	"wardrobe/internal/apperrors"
	"wardrobe/internal/models"
	"wardrobe/pkg/notion"
)

const notionPageSize = 100

// NotionWardrobeRepository serves wardrobe data from a user's own Notion
// workspace. Items and outfits are pages in two configured databases; the
// owning user is a rich-text property and every query filters on it, since
// the workspace itself has no row-level security. Deletion archives the
// page, it never removes it.
type NotionWardrobeRepository struct {
	client    *notionapi.Client
	itemsDB   notionapi.DatabaseID
	outfitsDB notionapi.DatabaseID
}

// NewNotionWardrobeRepository creates a backend for one user's workspace.
// The config must already be validated as complete by the caller.
func NewNotionWardrobeRepository(client *notionapi.Client, cfg models.NotionConfig) *NotionWardrobeRepository {
	return &NotionWardrobeRepository{
		client:    client,
		itemsDB:   notionapi.DatabaseID(cfg.ItemsDatabaseID),
		outfitsDB: notionapi.DatabaseID(cfg.OutfitsDatabaseID),
	}
}

// CreateClothingItem creates an item page. Notion offers no conditional
// write, so quota enforcement here is check-then-act: two concurrent
// creates can overshoot the limit by one. Accepted; see the limit gate.
func (r *NotionWardrobeRepository) CreateClothingItem(ctx context.Context, userID string, input models.ClothingItemInput, maxItems int) (models.ClothingItem, error) {
	if maxItems != models.Unlimited {
		count, err := r.CountClothingItems(ctx, userID)
		if err != nil {
			return models.ClothingItem{}, err
		}
		if count >= int64(maxItems) {
			return models.ClothingItem{}, &apperrors.LimitReachedError{Kind: models.LimitKindItems, Current: count, Limit: maxItems}
		}
	}

	page, err := r.client.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent:     notionapi.Parent{Type: notionapi.ParentTypeDatabaseID, DatabaseID: r.itemsDB},
		Properties: clothingItemProps(userID, input),
	})
	if err != nil {
		return models.ClothingItem{}, notion.ClassifyError(err)
	}
	return clothingItemFromPage(*page), nil
}

// ListClothingItems queries the items database, newest first. The owner
// filter is always the first condition.
func (r *NotionWardrobeRepository) ListClothingItems(ctx context.Context, userID string, filter models.ClothingFilter) ([]models.ClothingItem, error) {
	conditions := notionapi.AndCompoundFilter{ownerFilter(userID)}
	if filter.CategoryID != nil {
		conditions = append(conditions, notionapi.PropertyFilter{
			Property: propCategoryID,
			RichText: &notionapi.TextFilterCondition{Equals: models.LocalID(*filter.CategoryID).String()},
		})
	}
	if filter.Season != nil {
		conditions = append(conditions, notionapi.PropertyFilter{
			Property: propSeason,
			Select:   &notionapi.SelectFilterCondition{Equals: string(*filter.Season)},
		})
	}
	if filter.Brand != "" {
		conditions = append(conditions, notionapi.PropertyFilter{
			Property: propBrand,
			RichText: &notionapi.TextFilterCondition{Equals: filter.Brand},
		})
	}
	if filter.Search != "" {
		conditions = append(conditions, notionapi.PropertyFilter{
			Property: propName,
			RichText: &notionapi.TextFilterCondition{Contains: filter.Search},
		})
	}

	pages, err := r.queryAll(ctx, r.itemsDB, conditions)
	if err != nil {
		return nil, err
	}
	items := make([]models.ClothingItem, 0, len(pages))
	for _, page := range pages {
		items = append(items, clothingItemFromPage(page))
	}
	return items, nil
}

// UpdateClothingItem applies a partial update after verifying ownership.
func (r *NotionWardrobeRepository) UpdateClothingItem(ctx context.Context, userID, id string, patch models.ClothingItemPatch) error {
	if err := r.verifyOwnership(ctx, userID, id); err != nil {
		return err
	}

	props := notionapi.Properties{}
	if patch.Name != nil {
		props[propName] = titleProp(*patch.Name)
	}
	if patch.CategoryID != nil {
		props[propCategoryID] = richTextProp(models.LocalID(*patch.CategoryID).String())
	}
	if patch.Brand != nil {
		props[propBrand] = richTextProp(*patch.Brand)
	}
	if patch.Color != nil {
		props[propColor] = richTextProp(*patch.Color)
	}
	if patch.Size != nil {
		props[propSize] = richTextProp(*patch.Size)
	}
	if patch.Season != nil {
		props[propSeason] = selectProp(string(*patch.Season))
	}
	if patch.ImageURL != nil {
		props[propImageURL] = notionapi.URLProperty{URL: *patch.ImageURL}
	}
	if patch.Price != nil {
		props[propPrice] = numberProp(*patch.Price)
	}
	if patch.PurchaseDate != nil {
		props[propPurchaseDate] = dateProp(*patch.PurchaseDate)
	}
	if patch.Notes != nil {
		props[propNotes] = richTextProp(*patch.Notes)
	}
	if patch.Tags != nil {
		props[propTags] = multiSelectProp(*patch.Tags)
	}
	if len(props) == 0 {
		return nil
	}

	_, err := r.client.Page.Update(ctx, notionapi.PageID(id), &notionapi.PageUpdateRequest{Properties: props})
	if err != nil {
		return notion.ClassifyError(err)
	}
	return nil
}

// DeleteClothingItem archives the page; Notion data is never destroyed.
func (r *NotionWardrobeRepository) DeleteClothingItem(ctx context.Context, userID, id string) error {
	return r.archive(ctx, userID, id)
}

// CountClothingItems counts the caller's item pages.
func (r *NotionWardrobeRepository) CountClothingItems(ctx context.Context, userID string) (int64, error) {
	pages, err := r.queryAll(ctx, r.itemsDB, notionapi.AndCompoundFilter{ownerFilter(userID)})
	if err != nil {
		return 0, err
	}
	return int64(len(pages)), nil
}

// CreateOutfit creates an outfit page. Item references must be NotionIDs
// of pages in the same workspace; relations are stored as a page-reference
// list. Quota enforcement is check-then-act, as for items.
func (r *NotionWardrobeRepository) CreateOutfit(ctx context.Context, userID string, input models.OutfitInput, maxOutfits int) (models.Outfit, error) {
	if maxOutfits != models.Unlimited {
		count, err := r.CountOutfits(ctx, userID)
		if err != nil {
			return models.Outfit{}, err
		}
		if count >= int64(maxOutfits) {
			return models.Outfit{}, &apperrors.LimitReachedError{Kind: models.LimitKindOutfits, Current: count, Limit: maxOutfits}
		}
	}

	page, err := r.client.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent:     notionapi.Parent{Type: notionapi.ParentTypeDatabaseID, DatabaseID: r.outfitsDB},
		Properties: outfitProps(userID, input),
	})
	if err != nil {
		return models.Outfit{}, notion.ClassifyError(err)
	}
	return outfitFromPage(*page), nil
}

// ListOutfits queries the outfits database, newest first.
func (r *NotionWardrobeRepository) ListOutfits(ctx context.Context, userID string, filter models.OutfitFilter) ([]models.Outfit, error) {
	conditions := notionapi.AndCompoundFilter{ownerFilter(userID)}
	if filter.Occasion != nil {
		conditions = append(conditions, notionapi.PropertyFilter{
			Property: propOccasion,
			Select:   &notionapi.SelectFilterCondition{Equals: string(*filter.Occasion)},
		})
	}
	if filter.Season != nil {
		conditions = append(conditions, notionapi.PropertyFilter{
			Property: propSeason,
			Select:   &notionapi.SelectFilterCondition{Equals: string(*filter.Season)},
		})
	}
	if filter.Search != "" {
		conditions = append(conditions, notionapi.PropertyFilter{
			Property: propName,
			RichText: &notionapi.TextFilterCondition{Contains: filter.Search},
		})
	}

	pages, err := r.queryAll(ctx, r.outfitsDB, conditions)
	if err != nil {
		return nil, err
	}
	outfits := make([]models.Outfit, 0, len(pages))
	for _, page := range pages {
		outfits = append(outfits, outfitFromPage(page))
	}
	return outfits, nil
}

// GetOutfit is not supported here: the query model offers no sane
// single-page-by-opaque-id lookup scoped to an owner filter.
func (r *NotionWardrobeRepository) GetOutfit(ctx context.Context, userID, id string) (models.Outfit, error) {
	return models.Outfit{}, apperrors.ErrUnsupportedInNotionMode
}

// UpdateOutfit applies a partial update. A non-nil ClothingItemIDs replaces
// the relation list wholesale; Notion exposes no incremental add/remove.
func (r *NotionWardrobeRepository) UpdateOutfit(ctx context.Context, userID, id string, patch models.OutfitPatch) error {
	if err := r.verifyOwnership(ctx, userID, id); err != nil {
		return err
	}

	props := notionapi.Properties{}
	if patch.Name != nil {
		props[propName] = titleProp(*patch.Name)
	}
	if patch.Description != nil {
		props[propDescription] = richTextProp(*patch.Description)
	}
	if patch.Occasion != nil {
		props[propOccasion] = selectProp(string(*patch.Occasion))
	}
	if patch.Season != nil {
		props[propSeason] = selectProp(string(*patch.Season))
	}
	if patch.Rating != nil {
		props[propRating] = richTextProp(encodeRating(*patch.Rating))
	}
	if patch.LastWorn != nil {
		props[propLastWorn] = dateProp(*patch.LastWorn)
	}
	if patch.Tags != nil {
		props[propTags] = multiSelectProp(*patch.Tags)
	}
	if patch.ClothingItemIDs != nil {
		props[propItems] = relationProp(*patch.ClothingItemIDs)
	}
	if len(props) == 0 {
		return nil
	}

	_, err := r.client.Page.Update(ctx, notionapi.PageID(id), &notionapi.PageUpdateRequest{Properties: props})
	if err != nil {
		return notion.ClassifyError(err)
	}
	return nil
}

// DeleteOutfit archives the page.
func (r *NotionWardrobeRepository) DeleteOutfit(ctx context.Context, userID, id string) error {
	return r.archive(ctx, userID, id)
}

// CountOutfits counts the caller's outfit pages.
func (r *NotionWardrobeRepository) CountOutfits(ctx context.Context, userID string) (int64, error) {
	pages, err := r.queryAll(ctx, r.outfitsDB, notionapi.AndCompoundFilter{ownerFilter(userID)})
	if err != nil {
		return 0, err
	}
	return int64(len(pages)), nil
}

func ownerFilter(userID string) notionapi.PropertyFilter {
	return notionapi.PropertyFilter{
		Property: propUserID,
		RichText: &notionapi.TextFilterCondition{Equals: userID},
	}
}

// queryAll walks the query cursor to exhaustion, newest pages first.
func (r *NotionWardrobeRepository) queryAll(ctx context.Context, db notionapi.DatabaseID, filter notionapi.AndCompoundFilter) ([]notionapi.Page, error) {
	var pages []notionapi.Page
	var cursor notionapi.Cursor
	for {
		resp, err := r.client.Database.Query(ctx, db, &notionapi.DatabaseQueryRequest{
			Filter: filter,
			Sorts: []notionapi.SortObject{
				{Timestamp: notionapi.TimestampCreated, Direction: notionapi.SortOrderDESC},
			},
			StartCursor: cursor,
			PageSize:    notionPageSize,
		})
		if err != nil {
			return nil, notion.ClassifyError(err)
		}
		pages = append(pages, resp.Results...)
		if !resp.HasMore {
			return pages, nil
		}
		cursor = resp.NextCursor
	}
}

// verifyOwnership fetches the page and checks its owner property. A foreign
// owner, an archived page, or a bad id are all NotFound: the workspace has
// no other scoping mechanism, and existence must not leak.
func (r *NotionWardrobeRepository) verifyOwnership(ctx context.Context, userID, id string) error {
	page, err := r.client.Page.Get(ctx, notionapi.PageID(id))
	if err != nil {
		classified := notion.ClassifyError(err)
		var apiErr *apperrors.NotionAPIError
		if errors.As(classified, &apiErr) && apiErr.StatusCode == 404 {
			return apperrors.ErrNotFound
		}
		return classified
	}
	if page.Archived || readRichText(page.Properties, propUserID) != userID {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *NotionWardrobeRepository) archive(ctx context.Context, userID, id string) error {
	if err := r.verifyOwnership(ctx, userID, id); err != nil {
		return err
	}
	_, err := r.client.Page.Update(ctx, notionapi.PageID(id), &notionapi.PageUpdateRequest{
		Properties: notionapi.Properties{},
		Archived:   true,
	})
	if err != nil {
		return notion.ClassifyError(err)
	}
	return nil
}
