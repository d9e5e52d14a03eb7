package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	payload := GenerationPayload{
		URL:            "https://acme.test",
		CompanyName:    "Acme",
		Description:    "Rocket-powered gadgets",
		TargetAudience: "coyotes",
		Keywords:       []string{"rockets", "gadgets"},
		Tone:           "bold",
		Language:       "english",
	}

	t.Run("identical inputs produce identical fingerprints", func(t *testing.T) {
		first := Fingerprint(KindAdCopy, PlatformGoogle, payload)
		second := Fingerprint(KindAdCopy, PlatformGoogle, payload)

		assert.Equal(t, first, second)
		assert.Len(t, first, 64)
	})

	t.Run("normalization ignores case and surrounding whitespace", func(t *testing.T) {
		noisy := payload
		noisy.CompanyName = "  ACME "
		noisy.Tone = "BOLD"

		assert.Equal(t,
			Fingerprint(KindAdCopy, PlatformGoogle, payload),
			Fingerprint(KindAdCopy, PlatformGoogle, noisy),
		)
	})

	t.Run("any field change produces a different fingerprint", func(t *testing.T) {
		base := Fingerprint(KindAdCopy, PlatformGoogle, payload)

		changed := payload
		changed.Description = "Anvil delivery service"
		assert.NotEqual(t, base, Fingerprint(KindAdCopy, PlatformGoogle, changed))

		assert.NotEqual(t, base, Fingerprint(KindAdCopy, PlatformMeta, payload))
		assert.NotEqual(t, base, Fingerprint(KindAdImage, PlatformGoogle, payload))
	})

	t.Run("keyword order matters", func(t *testing.T) {
		reordered := payload
		reordered.Keywords = []string{"gadgets", "rockets"}

		assert.NotEqual(t,
			Fingerprint(KindAdCopy, PlatformGoogle, payload),
			Fingerprint(KindAdCopy, PlatformGoogle, reordered),
		)
	})
}

func TestCacheKey(t *testing.T) {
	payload := GenerationPayload{URL: "https://acme.test"}

	t.Run("analysis kinds share entries across users", func(t *testing.T) {
		first := CacheKey(1, KindWebsiteAnalysis, "", payload)
		second := CacheKey(42, KindWebsiteAnalysis, "", payload)

		assert.Equal(t, first, second)
	})

	t.Run("ad kinds are scoped to the requesting user", func(t *testing.T) {
		first := CacheKey(1, KindAdCopy, PlatformGoogle, payload)
		second := CacheKey(42, KindAdCopy, PlatformGoogle, payload)

		assert.NotEqual(t, first, second)
		assert.Contains(t, first, "u1:")
		assert.Contains(t, second, "u42:")
	})
}

func TestHasAnySuccessfulPlatform(t *testing.T) {
	result := &GenerationResult{
		Platforms: []PlatformResult{
			{Platform: PlatformGoogle, Status: StatusDegraded},
			{Platform: PlatformMeta, Status: StatusSucceeded},
		},
	}
	assert.True(t, result.HasAnySuccessfulPlatform())

	result.Platforms[1].Status = StatusRejected
	assert.False(t, result.HasAnySuccessfulPlatform())

	empty := &GenerationResult{}
	assert.False(t, empty.HasAnySuccessfulPlatform())
}
