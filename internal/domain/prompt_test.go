package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptTemplateRender(t *testing.T) {
	tmpl := &PromptTemplate{
		SystemPrompt: "You write ads in {{language}}.",
		UserPrompt:   "Write ads for {{company_name}} targeting {{target_audience}}.",
	}

	t.Run("substitutes placeholders in both bodies", func(t *testing.T) {
		system, user := tmpl.Render(map[string]string{
			"language":        "english",
			"company_name":    "Acme",
			"target_audience": "coyotes",
		})

		assert.Equal(t, "You write ads in english.", system)
		assert.Equal(t, "Write ads for Acme targeting coyotes.", user)
	})

	t.Run("unknown placeholders stay visible", func(t *testing.T) {
		system, user := tmpl.Render(map[string]string{"language": "english"})

		assert.Equal(t, "You write ads in english.", system)
		assert.Contains(t, user, "{{company_name}}")
	})
}
