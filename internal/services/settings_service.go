package services

import (
	"context"
	"time"

	"wardrobe/internal/apperrors"
	"wardrobe/internal/models"
	"wardrobe/internal/repositories"
)

// NotionConfigProbe checks a config against the live Notion API. Injected
// so tests can substitute a fake.
type NotionConfigProbe func(ctx context.Context, cfg models.NotionConfig) error

// SettingsService manages a user's storage preference, Notion credentials,
// and the derived auth level. Every flag mutation recomputes the cached
// level so it never drifts from the flags.
type SettingsService struct {
	users repositories.UserRepository
	probe NotionConfigProbe
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(users repositories.UserRepository, probe NotionConfigProbe) *SettingsService {
	return &SettingsService{
		users: users,
		probe: probe,
	}
}

// GetPreferences returns the caller's storage settings view.
func (s *SettingsService) GetPreferences(userID string) (models.StoragePreferences, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return models.StoragePreferences{}, err
	}
	return models.StoragePreferences{
		StorageType:  user.StorageType,
		NotionLinked: user.NotionConfig().Complete(),
	}, nil
}

// UpdateStorageType switches the backend preference. Selecting Notion with
// an incomplete config is allowed as a stored state; wardrobe operations
// will fail with a configuration error until the config is completed.
func (s *SettingsService) UpdateStorageType(userID string, storageType models.StorageType) error {
	if storageType != models.StorageLocal && storageType != models.StorageNotion {
		return apperrors.NewValidationError("storage_type", "must be local or notion")
	}
	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	user.StorageType = storageType
	return s.users.Update(user)
}

// UpdateNotionConfig stores the user's Notion credentials and recomputes
// the auth level. All three fields must be supplied together.
func (s *SettingsService) UpdateNotionConfig(userID string, cfg models.NotionConfig) error {
	if !cfg.Complete() {
		return apperrors.NewValidationError("notion_config", "token and both database IDs are required")
	}
	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	user.NotionToken = cfg.Token
	user.NotionItemsDBID = cfg.ItemsDatabaseID
	user.NotionOutfitsDBID = cfg.OutfitsDatabaseID
	refreshAuthLevel(user, time.Now())
	return s.users.Update(user)
}

// ValidateNotionConfig probes both configured databases against the live
// API without storing anything. Returns the taxonomy's Notion errors on
// failure so the client can distinguish retryable from reconfigure.
func (s *SettingsService) ValidateNotionConfig(ctx context.Context, cfg models.NotionConfig) error {
	if !cfg.Complete() {
		return apperrors.ErrNotionNotConfigured
	}
	return s.probe(ctx, cfg)
}

// ResetNotionConfig clears the stored credentials, drops the preference
// back to local storage, and recomputes the auth level.
func (s *SettingsService) ResetNotionConfig(userID string) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	user.NotionToken = ""
	user.NotionItemsDBID = ""
	user.NotionOutfitsDBID = ""
	user.StorageType = models.StorageLocal
	refreshAuthLevel(user, time.Now())
	return s.users.Update(user)
}

// GetAuthStatus derives the caller's auth status from the stored flags.
func (s *SettingsService) GetAuthStatus(userID string) (models.AuthStatus, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return models.AuthStatus{}, err
	}
	return AnalyzeAuthLevel(user.PasskeyEnabled, user.NotionConfig().Complete()), nil
}

// RecalculateAuthLevel recomputes and persists the cached level. A repair
// operation: the cache should already match, but staleness is cheap to fix.
func (s *SettingsService) RecalculateAuthLevel(userID string) (models.AuthStatus, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return models.AuthStatus{}, err
	}
	status := refreshAuthLevel(user, time.Now())
	if err := s.users.Update(user); err != nil {
		return models.AuthStatus{}, err
	}
	return status, nil
}

// SetPasskeyEnabled flips the passkey feature flag. The ceremony itself is
// handled by the external identity layer; only the derived state lives here.
func (s *SettingsService) SetPasskeyEnabled(userID string, enabled bool) (models.AuthStatus, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return models.AuthStatus{}, err
	}
	user.PasskeyEnabled = enabled
	status := refreshAuthLevel(user, time.Now())
	if err := s.users.Update(user); err != nil {
		return models.AuthStatus{}, err
	}
	return status, nil
}
