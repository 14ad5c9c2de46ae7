package services_test

import (
	"testing"

	"wardrobe/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeAuthLevel(t *testing.T) {
	cases := []struct {
		name    string
		passkey bool
		notion  bool
		level   int
	}{
		{"nothing enabled", false, false, 1},
		{"passkey only", true, false, 2},
		{"notion only", false, true, 3},
		{"both enabled", true, true, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status := services.AnalyzeAuthLevel(tc.passkey, tc.notion)
			assert.Equal(t, tc.level, status.Level)
			assert.NotEmpty(t, status.Description)

			if tc.passkey {
				assert.Contains(t, status.CompletedFeatures, "passkey")
				assert.NotContains(t, status.MissingFeatures, "passkey")
			} else {
				assert.Contains(t, status.MissingFeatures, "passkey")
			}
			if tc.notion {
				assert.Contains(t, status.CompletedFeatures, "notion")
			} else {
				assert.Contains(t, status.MissingFeatures, "notion")
			}

			// Every missing feature gets a next step; completed ones do not
			assert.Len(t, status.NextSteps, len(status.MissingFeatures))
			assert.Len(t, status.CompletedFeatures, 2-len(status.MissingFeatures))
		})
	}
}

func TestAnalyzeAuthLevelIsPure(t *testing.T) {
	first := services.AnalyzeAuthLevel(true, false)
	second := services.AnalyzeAuthLevel(true, false)
	assert.Equal(t, first, second)
}

func TestAnalyzeAuthLevelFullyConfigured(t *testing.T) {
	status := services.AnalyzeAuthLevel(true, true)
	assert.Equal(t, 4, status.Level)
	assert.Empty(t, status.MissingFeatures)
	assert.Empty(t, status.NextSteps)
	assert.ElementsMatch(t, []string{"passkey", "notion"}, status.CompletedFeatures)
}
