package services

import (
	"time"

	"wardrobe/internal/models"
)

const (
	featurePasskey = "passkey"
	featureNotion  = "notion"
)

const (
	stepPasskey = "Enable a passkey for phishing-resistant sign-in"
	stepNotion  = "Link your Notion workspace to own your wardrobe data"
)

// AnalyzeAuthLevel derives the 1-4 auth level from the two feature flags.
// It is a pure function: same flags, same answer, no side effects. The
// level mapping is exhaustive:
//
//	passkey=false notion=false -> 1
//	passkey=true  notion=false -> 2
//	passkey=false notion=true  -> 3
//	passkey=true  notion=true  -> 4
func AnalyzeAuthLevel(passkeyEnabled, notionComplete bool) models.AuthStatus {
	status := models.AuthStatus{
		CompletedFeatures: []string{},
		MissingFeatures:   []string{},
		NextSteps:         []string{},
	}

	switch {
	case !passkeyEnabled && !notionComplete:
		status.Level = 1
		status.Description = "Basic account: no optional security features enabled"
	case passkeyEnabled && !notionComplete:
		status.Level = 2
		status.Description = "Passkey enabled; Notion workspace not linked"
	case !passkeyEnabled && notionComplete:
		status.Level = 3
		status.Description = "Notion workspace linked; no passkey enabled"
	default:
		status.Level = 4
		status.Description = "Fully set up: passkey enabled and Notion workspace linked"
	}

	if passkeyEnabled {
		status.CompletedFeatures = append(status.CompletedFeatures, featurePasskey)
	} else {
		status.MissingFeatures = append(status.MissingFeatures, featurePasskey)
		status.NextSteps = append(status.NextSteps, stepPasskey)
	}
	if notionComplete {
		status.CompletedFeatures = append(status.CompletedFeatures, featureNotion)
	} else {
		status.MissingFeatures = append(status.MissingFeatures, featureNotion)
		status.NextSteps = append(status.NextSteps, stepNotion)
	}

	return status
}

// refreshAuthLevel recomputes the cached level from the user's flags and
// stamps the one-time completion timestamp on the first transition into
// level 4. The analyzer itself stays pure; the stamping lives with the
// caller mutating the user.
func refreshAuthLevel(user *models.User, now time.Time) models.AuthStatus {
	status := AnalyzeAuthLevel(user.PasskeyEnabled, user.NotionConfig().Complete())
	previous := user.AuthLevel
	user.AuthLevel = status.Level
	if status.Level == 4 && previous != 4 && user.AuthCompletedAt == nil {
		user.AuthCompletedAt = &now
	}
	return status
}
