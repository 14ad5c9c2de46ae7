package notion_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"

	"wardrobe/internal/apperrors"
	"wardrobe/pkg/notion"
)

func TestClassifyError_Nil(t *testing.T) {
	assert.NoError(t, notion.ClassifyError(nil))
}

func TestClassifyError_APIErrors(t *testing.T) {
	// A 5xx from the API is transient: retry later, keep the config
	err := notion.ClassifyError(&notionapi.Error{Status: 503, Code: "service_unavailable", Message: "down"})
	assert.ErrorIs(t, err, apperrors.ErrNotionUnavailable)

	var apiErr *apperrors.NotionAPIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 503, apiErr.StatusCode)
	assert.Equal(t, "service_unavailable", apiErr.Code)
	assert.True(t, apiErr.Retryable())

	// Throttling is transient too
	err = notion.ClassifyError(&notionapi.Error{Status: 429, Code: "rate_limited"})
	assert.ErrorIs(t, err, apperrors.ErrNotionUnavailable)

	// A 4xx means the stored config is wrong; retrying cannot help
	err = notion.ClassifyError(&notionapi.Error{Status: 401, Code: "unauthorized", Message: "API token is invalid"})
	assert.ErrorIs(t, err, apperrors.ErrNotionRejected)
	assert.NotErrorIs(t, err, apperrors.ErrNotionUnavailable)
	assert.ErrorAs(t, err, &apiErr)
	assert.False(t, apiErr.Retryable())

	// Wrapped API errors still classify
	wrapped := fmt.Errorf("query items: %w", &notionapi.Error{Status: 404, Code: "object_not_found"})
	assert.ErrorIs(t, notion.ClassifyError(wrapped), apperrors.ErrNotionRejected)
}

func TestClassifyError_TransportErrors(t *testing.T) {
	// Anything that never produced an API response is unavailable
	err := notion.ClassifyError(errors.New("dial tcp: connection refused"))
	assert.ErrorIs(t, err, apperrors.ErrNotionUnavailable)

	var apiErr *apperrors.NotionAPIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestNewClient_DefaultsTimeout(t *testing.T) {
	assert.NotNil(t, notion.NewClient("secret-token", 0))
	assert.NotNil(t, notion.NewClient("secret-token", notion.DefaultTimeout))
}
