package generating

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adpilot/adpilot-api/internal/domain"
)

func TestBuildFallbackAdSet(t *testing.T) {
	platforms := []domain.Platform{
		domain.PlatformGoogle,
		domain.PlatformMeta,
		domain.PlatformLinkedIn,
		domain.PlatformMicrosoft,
	}

	t.Run("always produces a structurally complete set", func(t *testing.T) {
		payloads := []domain.GenerationPayload{
			{}, // everything missing
			{CompanyName: "  "},
			{CompanyName: "Acme", Description: "Running shoes", Keywords: []string{"shoes"}},
		}

		for _, platform := range platforms {
			for _, payload := range payloads {
				adSet := buildFallbackAdSet(platform, payload)
				assert.True(t, adSet.IsComplete, "platform %s", platform)
				assert.NoError(t, adSet.Validate())
			}
		}
	})

	t.Run("is deterministic for identical inputs", func(t *testing.T) {
		payload := domain.GenerationPayload{CompanyName: "Acme", Keywords: []string{"shoes"}}

		first := buildFallbackAdSet(domain.PlatformGoogle, payload)
		second := buildFallbackAdSet(domain.PlatformGoogle, payload)
		assert.Equal(t, first, second)
	})

	t.Run("respects platform copy limits", func(t *testing.T) {
		payload := domain.GenerationPayload{
			CompanyName: "A Company With An Unreasonably Long Legal Name Incorporated",
			Description: "An extremely long product description that goes on and on well past any sensible advertising copy limit imposed by the platforms we target",
		}

		adSet := buildFallbackAdSet(domain.PlatformGoogle, payload)
		for _, ad := range adSet.Google {
			assert.LessOrEqual(t, len([]rune(ad.Headline1)), googleHeadlineMax)
			assert.LessOrEqual(t, len([]rune(ad.Headline2)), googleHeadlineMax)
			assert.LessOrEqual(t, len([]rune(ad.Headline3)), googleHeadlineMax)
			assert.LessOrEqual(t, len([]rune(ad.Description1)), googleDescriptionMax)
			assert.LessOrEqual(t, len([]rune(ad.Description2)), googleDescriptionMax)
		}
	})
}

func TestBuildFallbackAnalysis(t *testing.T) {
	t.Run("fills every field from an empty payload", func(t *testing.T) {
		analysis := buildFallbackAnalysis(domain.GenerationPayload{})
		assert.NotEmpty(t, analysis.CompanyName)
		assert.NotEmpty(t, analysis.Description)
		assert.NotEmpty(t, analysis.TargetAudience)
		assert.NotEmpty(t, analysis.Keywords)
		assert.NotEmpty(t, analysis.Tone)
	})

	t.Run("derives the company name from the url host", func(t *testing.T) {
		analysis := buildFallbackAnalysis(domain.GenerationPayload{URL: "https://www.acme.test/shop"})
		assert.Equal(t, "Acme", analysis.CompanyName)
	})
}

func TestFallbackImageURL(t *testing.T) {
	url := fallbackImageURL(domain.GenerationPayload{CompanyName: "Acme", ImageFormat: "story"})
	assert.Contains(t, url, "1024x1792")
	assert.Contains(t, url, "Acme")

	assert.Equal(t, url, fallbackImageURL(domain.GenerationPayload{CompanyName: "Acme", ImageFormat: "story"}))
}
