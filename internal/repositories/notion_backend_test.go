package repositories_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"wardrobe/internal/apperrors"
	"wardrobe/internal/models"
	"wardrobe/internal/repositories"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// redirectTransport reroutes every request to a local test server, keeping
// the path intact. The Notion client's API host is not configurable.
type redirectTransport struct {
	target *url.URL
}

func (rt redirectTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.URL.Scheme = rt.target.Scheme
	clone.URL.Host = rt.target.Host
	return http.DefaultTransport.RoundTrip(clone)
}

// notionTestRepo builds a repository whose client talks to handler instead
// of the real API.
func notionTestRepo(t *testing.T, handler http.Handler) *repositories.NotionWardrobeRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	target, err := url.Parse(srv.URL)
	require.NoError(t, err)

	client := notionapi.NewClient(
		notionapi.Token("secret-token"),
		notionapi.WithHTTPClient(&http.Client{Transport: redirectTransport{target: target}}),
	)
	return repositories.NewNotionWardrobeRepository(client, models.NotionConfig{
		Token:             "secret-token",
		ItemsDatabaseID:   "items-db",
		OutfitsDatabaseID: "outfits-db",
	})
}

func itemPageJSON(id, name, owner string) string {
	return fmt.Sprintf(`{
		"object": "page",
		"id": %q,
		"created_time": "2025-05-01T10:00:00Z",
		"last_edited_time": "2025-05-01T10:00:00Z",
		"archived": false,
		"properties": {
			"Name": {"id": "title", "type": "title", "title": [{"type": "text", "text": {"content": %q}, "plain_text": %q}]},
			"UserID": {"id": "usr", "type": "rich_text", "rich_text": [{"type": "text", "text": {"content": %q}, "plain_text": %q}]},
			"Brand": {"id": "brd", "type": "rich_text", "rich_text": [{"type": "text", "text": {"content": "Uniqlo"}, "plain_text": "Uniqlo"}]}
		}
	}`, id, name, name, owner, owner)
}

func TestNotionWardrobeRepository_ListClothingItemsPaginatesToExhaustion(t *testing.T) {
	var cursors []string
	var filters []map[string]interface{}

	repo := notionTestRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/databases/items-db/query", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		cursor, _ := req["start_cursor"].(string)
		cursors = append(cursors, cursor)
		if f, ok := req["filter"].(map[string]interface{}); ok {
			filters = append(filters, f)
		}

		w.Header().Set("Content-Type", "application/json")
		if len(cursors) == 1 {
			fmt.Fprintf(w, `{"object":"list","results":[%s],"has_more":true,"next_cursor":"page-two"}`,
				itemPageJSON("page-id-1", "Wool coat", "user-1"))
			return
		}
		fmt.Fprintf(w, `{"object":"list","results":[%s],"has_more":false}`,
			itemPageJSON("page-id-2", "Linen shirt", "user-1"))
	}))

	items, err := repo.ListClothingItems(context.Background(), "user-1", models.ClothingFilter{})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "page-id-1", items[0].ID)
	assert.Equal(t, "Wool coat", items[0].Name)
	assert.Equal(t, "Uniqlo", items[0].Brand)
	assert.Equal(t, "Linen shirt", items[1].Name)
	assert.Equal(t, "user-1", items[1].UserID)

	// The second request resumes from the cursor the first response returned
	require.Equal(t, []string{"", "page-two"}, cursors)

	// Owner equality is the first condition on every page of the query
	require.Len(t, filters, 2)
	for _, f := range filters {
		and, ok := f["and"].([]interface{})
		require.True(t, ok)
		require.NotEmpty(t, and)
		first, ok := and[0].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "UserID", first["property"])
	}
}

func TestNotionWardrobeRepository_RateLimitedIsUnavailable(t *testing.T) {
	repo := notionTestRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"object":"error","status":429,"code":"rate_limited","message":"Rate limited"}`)
	}))

	_, err := repo.ListClothingItems(context.Background(), "user-1", models.ClothingFilter{})
	assert.ErrorIs(t, err, apperrors.ErrNotionUnavailable)

	var apiErr *apperrors.NotionAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 429, apiErr.StatusCode)
	assert.True(t, apiErr.Retryable())
}

func TestNotionWardrobeRepository_BadTokenIsRejected(t *testing.T) {
	repo := notionTestRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"object":"error","status":401,"code":"unauthorized","message":"API token is invalid"}`)
	}))

	_, err := repo.ListClothingItems(context.Background(), "user-1", models.ClothingFilter{})
	assert.ErrorIs(t, err, apperrors.ErrNotionRejected)
	assert.NotErrorIs(t, err, apperrors.ErrNotionUnavailable)

	var apiErr *apperrors.NotionAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.False(t, apiErr.Retryable())
}

func TestNotionWardrobeRepository_GetOutfitUnsupported(t *testing.T) {
	repo := repositories.NewNotionWardrobeRepository(nil, models.NotionConfig{
		Token:             "secret-token",
		ItemsDatabaseID:   "items-db",
		OutfitsDatabaseID: "outfits-db",
	})

	_, err := repo.GetOutfit(context.Background(), "user-1", "some-page-id")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedInNotionMode)
}
