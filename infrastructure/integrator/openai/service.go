package openai

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/adpilot/adpilot-api/infrastructure/integrator/openai/openaiclient"
	"github.com/adpilot/adpilot-api/internal/config"
	"github.com/adpilot/adpilot-api/internal/domain"
	"github.com/adpilot/adpilot-api/pkg/utils"

	openaidomain "github.com/adpilot/adpilot-api/infrastructure/integrator/openai/domain"
)

// Integrator adapts the OpenAI-compatible provider to the generation
// workflow. It renders prompt templates, issues the provider calls and maps
// the loosely-typed JSON replies into validated ad structures. It never
// touches credits or the response cache.
type Integrator struct {
	cfg    *config.Config
	Client openaiclient.Client
}

func New(cfg *config.Config, client openaiclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
	}
}

// GenerateAdSet produces ad copy variations for one platform.
func (s *Integrator) GenerateAdSet(platform domain.Platform, tmpl *domain.PromptTemplate, payload domain.GenerationPayload) (*domain.GeneratedAdSet, error) {
	system, user := tmpl.Render(promptVars(platform, payload))

	resp, err := s.Client.CreateChatCompletion(&openaidomain.ChatCompletionRequest{
		Model: s.cfg.OpenAI.Model,
		Messages: []openaidomain.Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature:    0.7,
		ResponseFormat: &openaidomain.ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform": platform,
			"error":    err.Error(),
		}).Error("generation: ad copy request failed")
		return nil, err
	}

	content := extractJSON(resp.Choices[0].Message.Content)

	adSet := &domain.GeneratedAdSet{Platform: platform}

	switch platform {
	case domain.PlatformGoogle:
		var parsed struct {
			Ads []domain.GoogleAd `json:"ads"`
		}
		if err := json.Unmarshal([]byte(content), &parsed); err != nil {
			return nil, errors.Wrap(domain.ErrInvalidProviderResponse, err.Error())
		}
		adSet.Google = parsed.Ads
	case domain.PlatformMeta:
		var parsed struct {
			Ads []domain.MetaAd `json:"ads"`
		}
		if err := json.Unmarshal([]byte(content), &parsed); err != nil {
			return nil, errors.Wrap(domain.ErrInvalidProviderResponse, err.Error())
		}
		adSet.Meta = parsed.Ads
	case domain.PlatformLinkedIn:
		var parsed struct {
			Ads []domain.LinkedInAd `json:"ads"`
		}
		if err := json.Unmarshal([]byte(content), &parsed); err != nil {
			return nil, errors.Wrap(domain.ErrInvalidProviderResponse, err.Error())
		}
		adSet.LinkedIn = parsed.Ads
	case domain.PlatformMicrosoft:
		var parsed struct {
			Ads []domain.MicrosoftAd `json:"ads"`
		}
		if err := json.Unmarshal([]byte(content), &parsed); err != nil {
			return nil, errors.Wrap(domain.ErrInvalidProviderResponse, err.Error())
		}
		adSet.Microsoft = parsed.Ads
	}

	// Never trust the provider's shape: every required field is checked
	// before the set is returned.
	if err := adSet.Validate(); err != nil {
		logrus.WithFields(logrus.Fields{
			"platform": platform,
			"error":    err.Error(),
		}).Warn("generation: provider returned an incomplete ad set")
		logrus.Debugf("generation: rejected provider payload: %s", utils.PrettyJson([]byte(content)))
		return nil, errors.Wrap(domain.ErrInvalidProviderResponse, err.Error())
	}

	logrus.WithField("platform", platform).Debug("generation: ad set generated")

	return adSet, nil
}

// AnalyzeWebsite produces a structured analysis of the website referenced by
// the payload URL.
func (s *Integrator) AnalyzeWebsite(tmpl *domain.PromptTemplate, payload domain.GenerationPayload) (*domain.WebsiteAnalysis, error) {
	system, user := tmpl.Render(promptVars("", payload))

	resp, err := s.Client.CreateChatCompletion(&openaidomain.ChatCompletionRequest{
		Model: s.cfg.OpenAI.Model,
		Messages: []openaidomain.Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature:    0.3,
		ResponseFormat: &openaidomain.ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"url":   payload.URL,
			"error": err.Error(),
		}).Error("generation: website analysis request failed")
		return nil, err
	}

	content := extractJSON(resp.Choices[0].Message.Content)

	var analysis domain.WebsiteAnalysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return nil, errors.Wrap(domain.ErrInvalidProviderResponse, err.Error())
	}

	if analysis.CompanyName == "" && analysis.Description == "" {
		return nil, errors.Wrap(domain.ErrInvalidProviderResponse, "analysis has no usable fields")
	}

	return &analysis, nil
}

// imageBriefTool is the tool the model is asked to call in the first phase
// of image generation. The refined prompt arrives as structured arguments,
// not as free text to be scraped.
var imageBriefTool = openaidomain.Tool{
	Type: "function",
	Function: openaidomain.FunctionDef{
		Name:        "generate_ad_image",
		Description: "Generate an advertising image from a refined prompt",
		Parameters: json.RawMessage(`{
			"type": "object",
			"properties": {
				"prompt": {"type": "string", "description": "Refined image generation prompt"},
				"size": {"type": "string", "description": "Image size, e.g. 1024x1024"},
				"style": {"type": "string", "description": "Visual style hint"}
			},
			"required": ["prompt"]
		}`),
	},
}

// GenerateImage runs the two-phase image protocol: first the model refines
// the campaign inputs into a generate_ad_image tool call, then the tool call
// is executed against the image endpoint and the asset URL is taken from the
// structured response.
func (s *Integrator) GenerateImage(tmpl *domain.PromptTemplate, platform domain.Platform, payload domain.GenerationPayload) (string, error) {
	system, user := tmpl.Render(promptVars(platform, payload))

	resp, err := s.Client.CreateChatCompletion(&openaidomain.ChatCompletionRequest{
		Model: s.cfg.OpenAI.Model,
		Messages: []openaidomain.Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.7,
		Tools:       []openaidomain.Tool{imageBriefTool},
		ToolChoice:  "required",
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform": platform,
			"error":    err.Error(),
		}).Error("generation: image brief request failed")
		return "", err
	}

	message := resp.Choices[0].Message
	if len(message.ToolCalls) == 0 {
		return "", errors.Wrap(domain.ErrInvalidProviderResponse, "model did not produce an image tool call")
	}

	var brief openaidomain.ImageBriefArgs
	if err := json.Unmarshal([]byte(message.ToolCalls[0].Function.Arguments), &brief); err != nil {
		return "", errors.Wrap(domain.ErrInvalidProviderResponse, err.Error())
	}
	if strings.TrimSpace(brief.Prompt) == "" {
		return "", errors.Wrap(domain.ErrInvalidProviderResponse, "image tool call has an empty prompt")
	}

	size := brief.Size
	if size == "" {
		size = imageSize(payload.ImageFormat)
	}

	imageResp, err := s.Client.CreateImage(&openaidomain.ImageGenerationRequest{
		Model:  s.cfg.OpenAI.ImageModel,
		Prompt: brief.Prompt,
		N:      1,
		Size:   size,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform": platform,
			"error":    err.Error(),
		}).Error("generation: image generation request failed")
		return "", err
	}

	url := imageResp.Data[0].URL
	if url == "" {
		return "", errors.Wrap(domain.ErrInvalidProviderResponse, "image generation returned an empty URL")
	}

	logrus.WithFields(logrus.Fields{
		"platform": platform,
		"size":     size,
	}).Debug("generation: image generated")

	return url, nil
}

func promptVars(platform domain.Platform, payload domain.GenerationPayload) map[string]string {
	language := payload.Language
	if language == "" {
		language = "english"
	}

	return map[string]string{
		"platform":        string(platform),
		"url":             payload.URL,
		"company_name":    payload.CompanyName,
		"description":     payload.Description,
		"target_audience": payload.TargetAudience,
		"keywords":        strings.Join(payload.Keywords, ", "),
		"tone":            payload.Tone,
		"mind_trigger":    payload.MindTrigger,
		"language":        language,
	}
}

// extractJSON strips markdown code fences some models wrap around JSON
// replies even in json_object mode.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx >= 0 {
			content = content[:idx]
		}
		content = strings.TrimSpace(content)
	}

	return content
}

func imageSize(format string) string {
	switch format {
	case "story", "portrait":
		return "1024x1792"
	case "landscape", "banner":
		return "1792x1024"
	default:
		return "1024x1024"
	}
}
