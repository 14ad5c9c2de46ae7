// Package apperrors defines the error taxonomy shared by both storage
// backends and surfaced through the API. Adapters return these types
// unchanged; the router never translates one backend's errors into the
// other's shape.
package apperrors

import (
	"errors"
	"fmt"

	"wardrobe/internal/models"
)

// Sentinel errors - authorization and lookup
var (
	ErrUnauthorized = errors.New("wardrobe: unauthorized")
	// ErrNotFound covers both a genuinely absent record and one owned by
	// another user; the two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("wardrobe: not found")
)

// Sentinel errors - Notion backend
var (
	ErrNotionNotConfigured     = errors.New("wardrobe: notion storage selected but not fully configured")
	ErrUnsupportedInNotionMode = errors.New("wardrobe: operation not supported in notion mode")
	ErrNotionUnavailable       = errors.New("wardrobe: notion unavailable")
	ErrNotionRejected          = errors.New("wardrobe: notion rejected the request")
)

// ValidationError reports malformed input caught before it reaches a backend.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// LimitReachedError rejects a create that would exceed the user's plan.
// It carries enough for the client to render an upgrade prompt.
type LimitReachedError struct {
	Kind    models.LimitKind
	Current int64
	Limit   int
}

func (e *LimitReachedError) Error() string {
	return fmt.Sprintf("%s limit reached (%d of %d)", e.Kind, e.Current, e.Limit)
}

// NotionAPIError wraps an error response from the Notion API.
type NotionAPIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *NotionAPIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("notion API error (HTTP %d)", e.StatusCode)
	}
	return fmt.Sprintf("notion API error (HTTP %d, %s): %s", e.StatusCode, e.Code, e.Message)
}

// Is maps HTTP status classes onto the Notion sentinels: 5xx and 429 are
// retryable (unavailable), every other 4xx means the user must reconfigure.
func (e *NotionAPIError) Is(target error) bool {
	if e.StatusCode >= 500 || e.StatusCode == 429 {
		return errors.Is(target, ErrNotionUnavailable)
	}
	if e.StatusCode >= 400 {
		return errors.Is(target, ErrNotionRejected)
	}
	return false
}

// Retryable reports whether the failure is transient.
func (e *NotionAPIError) Retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}
