package generating

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/adpilot/adpilot-api/internal/domain"
)

// Platform copy limits enforced on fallback content. Live content is
// validated by the provider-side prompt instead.
const (
	googleHeadlineMax    = 30
	googleDescriptionMax = 90
	metaHeadlineMax      = 40
	linkedinHeadlineMax  = 70
)

// buildFallbackAdSet synthesizes a structurally complete ad set from the
// campaign inputs alone. It is pure, never fails and never calls the
// network: missing fields are replaced with generic placeholder copy. This
// is the last-resort degrade path, not a quality path.
func buildFallbackAdSet(platform domain.Platform, payload domain.GenerationPayload) *domain.GeneratedAdSet {
	company := fallbackValue(payload.CompanyName, "Your Business")
	description := fallbackValue(payload.Description, "Quality products and services for you")
	audience := fallbackValue(payload.TargetAudience, "customers like you")
	keyword := firstKeyword(payload.Keywords, "what you need")

	adSet := &domain.GeneratedAdSet{Platform: platform}

	switch platform {
	case domain.PlatformGoogle:
		adSet.Google = []domain.GoogleAd{
			{
				Headline1:    truncate(company, googleHeadlineMax),
				Headline2:    truncate(fmt.Sprintf("Discover %s", keyword), googleHeadlineMax),
				Headline3:    truncate("Get Started Today", googleHeadlineMax),
				Description1: truncate(description, googleDescriptionMax),
				Description2: truncate(fmt.Sprintf("Made for %s. Visit us now.", audience), googleDescriptionMax),
			},
			{
				Headline1:    truncate(fmt.Sprintf("%s Online", company), googleHeadlineMax),
				Headline2:    truncate("Trusted Quality", googleHeadlineMax),
				Headline3:    truncate("Learn More Now", googleHeadlineMax),
				Description1: truncate(fmt.Sprintf("Looking for %s? %s", keyword, description), googleDescriptionMax),
				Description2: truncate("Find out what we can do for you today.", googleDescriptionMax),
			},
		}
	case domain.PlatformMeta:
		adSet.Meta = []domain.MetaAd{
			{
				Headline:    truncate(fmt.Sprintf("Meet %s", company), metaHeadlineMax),
				PrimaryText: fmt.Sprintf("%s. Made for %s.", description, audience),
				Description: truncate(fmt.Sprintf("Discover %s today", keyword), metaHeadlineMax),
				ImagePrompt: fmt.Sprintf("Clean product photo for %s, %s", company, keyword),
			},
			{
				Headline:    truncate(company, metaHeadlineMax),
				PrimaryText: fmt.Sprintf("Looking for %s? %s", keyword, description),
				Description: truncate("Get started today", metaHeadlineMax),
				ImagePrompt: fmt.Sprintf("Lifestyle photo of %s enjoying %s", audience, keyword),
			},
		}
	case domain.PlatformLinkedIn:
		adSet.LinkedIn = []domain.LinkedInAd{
			{
				Headline:    truncate(fmt.Sprintf("%s for professionals", company), linkedinHeadlineMax),
				IntroText:   fmt.Sprintf("%s. Built with %s in mind.", description, audience),
				Description: fmt.Sprintf("Learn how %s helps with %s.", company, keyword),
			},
		}
	case domain.PlatformMicrosoft:
		adSet.Microsoft = []domain.MicrosoftAd{
			{
				Headline1:    truncate(company, googleHeadlineMax),
				Headline2:    truncate(fmt.Sprintf("Find %s", keyword), googleHeadlineMax),
				Headline3:    truncate("Visit Us Today", googleHeadlineMax),
				Description1: truncate(description, googleDescriptionMax),
				Description2: truncate(fmt.Sprintf("Serving %s. Get in touch.", audience), googleDescriptionMax),
			},
		}
	}

	// Fallback content always validates: the templates above fill every
	// required field.
	_ = adSet.Validate()

	return adSet
}

// buildFallbackAnalysis derives a minimal analysis from the inputs the user
// already supplied.
func buildFallbackAnalysis(payload domain.GenerationPayload) *domain.WebsiteAnalysis {
	keywords := payload.Keywords
	if len(keywords) == 0 {
		keywords = []string{"products", "services"}
	}

	return &domain.WebsiteAnalysis{
		CompanyName:    fallbackValue(payload.CompanyName, companyFromURL(payload.URL)),
		Industry:       "general",
		Description:    fallbackValue(payload.Description, "Business offering products and services online"),
		TargetAudience: fallbackValue(payload.TargetAudience, "online shoppers"),
		Keywords:       keywords,
		Tone:           fallbackValue(payload.Tone, "professional"),
	}
}

// fallbackImageURL points at a deterministic placeholder asset so the
// result still carries a renderable image.
func fallbackImageURL(payload domain.GenerationPayload) string {
	company := fallbackValue(payload.CompanyName, "Your Business")
	return fmt.Sprintf("https://placehold.co/%s/png?text=%s", placeholderSize(payload.ImageFormat), url.QueryEscape(company))
}

func placeholderSize(format string) string {
	switch format {
	case "story", "portrait":
		return "1024x1792"
	case "landscape", "banner":
		return "1792x1024"
	default:
		return "1024x1024"
	}
}

func fallbackValue(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return strings.TrimSpace(value)
}

func firstKeyword(keywords []string, placeholder string) string {
	for _, k := range keywords {
		if strings.TrimSpace(k) != "" {
			return strings.TrimSpace(k)
		}
	}
	return placeholder
}

func companyFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return "Your Business"
	}
	host := strings.TrimPrefix(parsed.Host, "www.")
	if idx := strings.Index(host, "."); idx > 0 {
		host = host[:idx]
	}
	if host == "" {
		return "Your Business"
	}
	return strings.ToUpper(host[:1]) + host[1:]
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
