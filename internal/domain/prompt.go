package domain

import (
	"strings"
	"time"
)

// Prompt template keys known to the application. System-owned templates are
// seeded at bootstrap and read-only through the API.
const (
	PromptKeyWebsiteAnalysis  = "website_analysis"
	PromptKeyAudienceAnalysis = "audience_analysis"
	PromptKeyGoogleAds        = "google_ads"
	PromptKeyMetaAds          = "meta_ads"
	PromptKeyLinkedInAds      = "linkedin_ads"
	PromptKeyMicrosoftAds     = "microsoft_ads"
	PromptKeyImageBrief       = "image_brief"
)

// PromptTemplate is a versioned prompt stored in the app_prompts table.
type PromptTemplate struct {
	Key          string    `json:"key"`
	Version      int       `json:"version"`
	SystemPrompt string    `json:"system_prompt"`
	UserPrompt   string    `json:"user_prompt"`
	SystemOwned  bool      `json:"system_owned"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Render substitutes {{name}} placeholders in both prompt bodies. Unknown
// placeholders are left in place so a broken template is visible downstream.
func (t *PromptTemplate) Render(vars map[string]string) (system string, user string) {
	system = t.SystemPrompt
	user = t.UserPrompt
	for name, value := range vars {
		placeholder := "{{" + name + "}}"
		system = strings.ReplaceAll(system, placeholder, value)
		user = strings.ReplaceAll(user, placeholder, value)
	}
	return system, user
}
