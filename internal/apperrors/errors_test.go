package apperrors_test

import (
	"errors"
	"testing"

	"wardrobe/internal/apperrors"
	"wardrobe/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNotionAPIError_SentinelMapping(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		unavailable bool
		rejected    bool
	}{
		{"internal server error", 500, true, false},
		{"bad gateway", 502, true, false},
		{"service unavailable", 503, true, false},
		{"rate limited", 429, true, false},
		{"bad request", 400, false, true},
		{"unauthorized", 401, false, true},
		{"forbidden", 403, false, true},
		{"not found", 404, false, true},
		{"conflict", 409, false, true},
		{"success is neither", 200, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &apperrors.NotionAPIError{StatusCode: tt.status, Code: "code", Message: "message"}
			assert.Equal(t, tt.unavailable, errors.Is(err, apperrors.ErrNotionUnavailable))
			assert.Equal(t, tt.rejected, errors.Is(err, apperrors.ErrNotionRejected))
			// Retryable tracks the unavailable class exactly
			assert.Equal(t, tt.unavailable, err.Retryable())
		})
	}
}

func TestNotionAPIError_Message(t *testing.T) {
	err := &apperrors.NotionAPIError{StatusCode: 404, Code: "object_not_found", Message: "Could not find database"}
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "object_not_found")

	// Without a message only the status is reported
	bare := &apperrors.NotionAPIError{StatusCode: 500}
	assert.Contains(t, bare.Error(), "500")
}

func TestLimitReachedError_Message(t *testing.T) {
	err := &apperrors.LimitReachedError{Kind: models.LimitKindOutfits, Current: 5, Limit: 5}
	assert.Equal(t, "outfits limit reached (5 of 5)", err.Error())
}
