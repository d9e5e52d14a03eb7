package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adpilot/adpilot-api/infrastructure/repository"
)

func TestLedgerIDColumnFitsGeneratedIDs(t *testing.T) {
	schema := strings.Join(schemaStatements, "\n")

	assert.Contains(t, schema,
		fmt.Sprintf("id VARCHAR(%d) PRIMARY KEY", repository.LedgerIDLength),
		"credit_ledger.id must be sized from the repository's ID length")
}

// Every ad-copy seed prompt must ask the model for each field the matching
// domain struct requires, otherwise a reply that follows the prompt exactly
// is rejected by validation and the generation degrades.
func TestSeedPromptsRequestAllRequiredFields(t *testing.T) {
	requiredFields := map[string][]string{
		"google_ads":    {"headline1", "headline2", "headline3", "description1", "description2"},
		"meta_ads":      {"headline", "primary_text", "description", "image_prompt"},
		"linkedin_ads":  {"headline", "intro_text", "description"},
		"microsoft_ads": {"headline1", "headline2", "headline3", "description1", "description2"},
	}

	prompts := make(map[string]seedPrompt, len(seedPrompts))
	for _, p := range seedPrompts {
		prompts[p.Key] = p
	}

	for key, fields := range requiredFields {
		t.Run(key, func(t *testing.T) {
			p, ok := prompts[key]
			require.True(t, ok, "seed prompt %s missing", key)

			for _, field := range fields {
				assert.Contains(t, p.SystemPrompt, field)
			}
		})
	}
}
