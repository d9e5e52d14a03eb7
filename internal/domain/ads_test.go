package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratedAdSetValidate(t *testing.T) {
	completeGoogle := GoogleAd{
		Headline1:    "Acme gadgets",
		Headline2:    "Built to last",
		Headline3:    "Free shipping",
		Description1: "Everything a coyote needs.",
		Description2: "Order today, delivered tomorrow.",
	}

	t.Run("complete set validates and is marked complete", func(t *testing.T) {
		set := &GeneratedAdSet{
			Platform: PlatformGoogle,
			Google:   []GoogleAd{completeGoogle},
		}

		assert.NoError(t, set.Validate())
		assert.True(t, set.IsComplete)
	})

	t.Run("empty variation slice fails", func(t *testing.T) {
		set := &GeneratedAdSet{Platform: PlatformMeta}

		assert.Error(t, set.Validate())
		assert.False(t, set.IsComplete)
	})

	t.Run("missing required field fails", func(t *testing.T) {
		incomplete := completeGoogle
		incomplete.Description2 = ""

		set := &GeneratedAdSet{
			Platform: PlatformGoogle,
			Google:   []GoogleAd{completeGoogle, incomplete},
		}

		assert.ErrorContains(t, set.Validate(), "google ad 1")
		assert.False(t, set.IsComplete)
	})

	t.Run("unknown platform fails", func(t *testing.T) {
		set := &GeneratedAdSet{Platform: Platform("myspace")}

		assert.ErrorContains(t, set.Validate(), "unknown platform")
	})
}
