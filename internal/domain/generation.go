package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Platform identifies the ad platform a generation targets.
type Platform string

const (
	PlatformGoogle    Platform = "google"
	PlatformMeta      Platform = "meta"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformMicrosoft Platform = "microsoft"
)

// Valid reports whether the platform is one of the supported ad platforms.
func (p Platform) Valid() bool {
	switch p {
	case PlatformGoogle, PlatformMeta, PlatformLinkedIn, PlatformMicrosoft:
		return true
	}
	return false
}

// GenerationKind identifies the kind of AI generation being requested.
type GenerationKind string

const (
	KindWebsiteAnalysis  GenerationKind = "website_analysis"
	KindAudienceAnalysis GenerationKind = "audience_analysis"
	KindAdCopy           GenerationKind = "ad_copy"
	KindAdImage          GenerationKind = "ad_image"
)

// Valid reports whether the kind is a known generation kind.
func (k GenerationKind) Valid() bool {
	switch k {
	case KindWebsiteAnalysis, KindAudienceAnalysis, KindAdCopy, KindAdImage:
		return true
	}
	return false
}

// SharedAcrossUsers reports whether cache entries for this kind are keyed
// globally. Analysis kinds are a function of the URL, not the requester;
// ad copy and images carry user-supplied brand data and stay per-user.
func (k GenerationKind) SharedAcrossUsers() bool {
	return k == KindWebsiteAnalysis || k == KindAudienceAnalysis
}

// Errors raised by the generation provider adapter. The orchestrator
// converts both into a degraded result, never a hard failure.
var (
	ErrProviderUnavailable     = errors.New("generation provider request failed")
	ErrInvalidProviderResponse = errors.New("generation provider returned an unexpected payload")
)

// GenerationPayload carries the campaign inputs used to build prompts.
type GenerationPayload struct {
	URL            string   `json:"url,omitempty"`
	CompanyName    string   `json:"company_name,omitempty"`
	Description    string   `json:"description,omitempty"`
	TargetAudience string   `json:"target_audience,omitempty"`
	Keywords       []string `json:"keywords,omitempty"`
	Tone           string   `json:"tone,omitempty"`
	MindTrigger    string   `json:"mind_trigger,omitempty"`
	Language       string   `json:"language,omitempty"`
	ImageFormat    string   `json:"image_format,omitempty"`
}

// GenerationRequest is the input of a single orchestrator run.
type GenerationRequest struct {
	Kind      GenerationKind    `json:"kind"`
	Platforms []Platform        `json:"platforms"`
	Payload   GenerationPayload `json:"payload"`
}

// Fingerprint derives the cache key material for a generation. It is a pure
// function of kind, platform and the normalized payload: identical inputs
// always produce identical fingerprints.
func Fingerprint(kind GenerationKind, platform Platform, payload GenerationPayload) string {
	parts := []string{
		string(kind),
		string(platform),
		normalize(payload.URL),
		normalize(payload.CompanyName),
		normalize(payload.Description),
		normalize(payload.TargetAudience),
		normalize(strings.Join(payload.Keywords, ",")),
		normalize(payload.Tone),
		normalize(payload.MindTrigger),
		normalize(payload.Language),
		normalize(payload.ImageFormat),
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

// CacheKey resolves the response cache key for a generation. Shared kinds use
// the bare fingerprint so every user benefits from the same entry; the
// remaining kinds are scoped to the requesting user.
func CacheKey(userID int, kind GenerationKind, platform Platform, payload GenerationPayload) string {
	fingerprint := Fingerprint(kind, platform, payload)
	if kind.SharedAcrossUsers() {
		return fingerprint
	}
	return fmt.Sprintf("u%d:%s", userID, fingerprint)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// GenerationStatus is the terminal state of an orchestrator run.
type GenerationStatus string

const (
	StatusSucceeded GenerationStatus = "succeeded"
	StatusDegraded  GenerationStatus = "degraded"
	StatusRejected  GenerationStatus = "rejected"
)

// DegradeReason explains why a platform fell back to template content.
type DegradeReason string

const (
	ReasonProviderError      DegradeReason = "provider_error"
	ReasonParseError         DegradeReason = "parse_error"
	ReasonInsufficientCredit DegradeReason = "insufficient_credit"
)

// WebsiteAnalysis is the structured result of a website or audience analysis.
type WebsiteAnalysis struct {
	CompanyName    string   `json:"company_name"`
	Industry       string   `json:"industry"`
	Description    string   `json:"description"`
	TargetAudience string   `json:"target_audience"`
	Keywords       []string `json:"keywords"`
	Tone           string   `json:"tone"`
}

// PlatformResult is the outcome of generating for one platform.
type PlatformResult struct {
	Platform  Platform         `json:"platform"`
	Status    GenerationStatus `json:"status"`
	Reason    DegradeReason    `json:"reason,omitempty"`
	FromCache bool             `json:"from_cache"`
	Ads       *GeneratedAdSet  `json:"ads,omitempty"`
}

// GenerationResult is the structured outcome reported to the caller.
type GenerationResult struct {
	Kind        GenerationKind   `json:"kind"`
	Status      GenerationStatus `json:"status"`
	Reason      DegradeReason    `json:"reason,omitempty"`
	FromCache   bool             `json:"from_cache"`
	Analysis    *WebsiteAnalysis `json:"analysis,omitempty"`
	Platforms   []PlatformResult `json:"platforms,omitempty"`
	CreditsUsed int              `json:"credits_used"`
}

// HasAnySuccessfulPlatform reports whether at least one platform produced a
// live (non-fallback) result. A multi-platform request is considered
// successful as a whole when this is true.
func (r *GenerationResult) HasAnySuccessfulPlatform() bool {
	for _, p := range r.Platforms {
		if p.Status == StatusSucceeded {
			return true
		}
	}
	return false
}
