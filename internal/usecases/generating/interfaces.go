package generating

import (
	"github.com/adpilot/adpilot-api/internal/domain"
)

// AdGenerator is the provider-facing side of the workflow, implemented by
// the OpenAI integrator. It holds no credit or cache logic.
type AdGenerator interface {
	GenerateAdSet(platform domain.Platform, tmpl *domain.PromptTemplate, payload domain.GenerationPayload) (*domain.GeneratedAdSet, error)
	AnalyzeWebsite(tmpl *domain.PromptTemplate, payload domain.GenerationPayload) (*domain.WebsiteAnalysis, error)
	GenerateImage(tmpl *domain.PromptTemplate, platform domain.Platform, payload domain.GenerationPayload) (string, error)
}
