// Package notion wraps construction of the Notion API client and the
// classification of its failures into the app's error taxonomy.
package notion

import (
	"errors"
	"net/http"
	"time"

	"github.com/jomei/notionapi"

	"wardrobe/internal/apperrors"
)

// DefaultTimeout bounds every call to the Notion API. The workspace is an
// external network dependency; a hung call must not hold a request handler.
const DefaultTimeout = 15 * time.Second

// NewClient creates a Notion API client for one user's integration token.
// Clients are cheap; one is built per request from the stored config.
func NewClient(token string, timeout time.Duration) *notionapi.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return notionapi.NewClient(
		notionapi.Token(token),
		notionapi.WithHTTPClient(&http.Client{Timeout: timeout}),
	)
}

// ClassifyError converts a raw client error into the taxonomy: API 5xx and
// 429 responses are retryable (unavailable), other API errors mean the user
// must reconfigure, and anything else (DNS, timeout, connection reset) is
// treated as unavailable.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *notionapi.Error
	if errors.As(err, &apiErr) {
		return &apperrors.NotionAPIError{
			StatusCode: apiErr.Status,
			Code:       string(apiErr.Code),
			Message:    apiErr.Message,
		}
	}
	return apperrors.ErrNotionUnavailable
}
