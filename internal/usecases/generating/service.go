package generating

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/adpilot/adpilot-api/infrastructure/repository"
	"github.com/adpilot/adpilot-api/internal/config"
	"github.com/adpilot/adpilot-api/internal/domain"
	"github.com/adpilot/adpilot-api/internal/usecases/caching"
	"github.com/adpilot/adpilot-api/internal/usecases/crediting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Orchestrator runs the credit-gated, cached generation workflow. Each run
// walks the same sequence: cache check, credit check, consume, generate,
// then cache write on success or fallback content on failure.
type Orchestrator interface {
	Run(userID int, req *domain.GenerationRequest) (*domain.GenerationResult, error)
}

type Service struct {
	generator  AdGenerator
	cache      caching.ResponseCache
	credits    crediting.CreditManager
	promptRepo repository.PromptRepository
	cfg        *config.Config
}

func NewService(
	generator AdGenerator,
	cache caching.ResponseCache,
	credits crediting.CreditManager,
	promptRepo repository.PromptRepository,
	cfg *config.Config,
) Orchestrator {
	return &Service{
		generator:  generator,
		cache:      cache,
		credits:    credits,
		promptRepo: promptRepo,
		cfg:        cfg,
	}
}

func (s *Service) Run(userID int, req *domain.GenerationRequest) (*domain.GenerationResult, error) {
	if userID <= 0 {
		return nil, ErrUnauthorized
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	switch req.Kind {
	case domain.KindWebsiteAnalysis, domain.KindAudienceAnalysis:
		return s.runAnalysis(userID, req)
	default:
		return s.runPlatforms(userID, req)
	}
}

func validateRequest(req *domain.GenerationRequest) error {
	if req == nil {
		return errors.Wrap(ErrInvalidRequest, "empty request")
	}

	if !req.Kind.Valid() {
		return errors.Wrapf(ErrInvalidRequest, "unknown kind %q", req.Kind)
	}

	switch req.Kind {
	case domain.KindWebsiteAnalysis, domain.KindAudienceAnalysis:
		if req.Payload.URL == "" {
			return errors.Wrap(ErrInvalidRequest, "analysis requires a url")
		}
	default:
		if len(req.Platforms) == 0 {
			return errors.Wrap(ErrInvalidRequest, "at least one platform is required")
		}
		for _, platform := range req.Platforms {
			if !platform.Valid() {
				return errors.Wrapf(ErrInvalidRequest, "unknown platform %q", platform)
			}
		}
	}

	return nil
}

// runAnalysis handles the single-unit kinds. Analysis entries are cached
// globally: the content is a function of the URL, not the requester.
func (s *Service) runAnalysis(userID int, req *domain.GenerationRequest) (*domain.GenerationResult, error) {
	key := domain.CacheKey(userID, req.Kind, "", req.Payload)

	if raw := s.lookup(key); raw != nil {
		var analysis domain.WebsiteAnalysis
		if err := json.Unmarshal(raw, &analysis); err == nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"kind":    req.Kind,
			}).Info("generation: analysis served from cache")

			return &domain.GenerationResult{
				Kind:      req.Kind,
				Status:    domain.StatusSucceeded,
				FromCache: true,
				Analysis:  &analysis,
			}, nil
		}
		// Unreadable entries are regenerated and overwritten.
		logrus.WithField("fingerprint", key).Warn("generation: discarding unreadable cache entry")
	}

	cost, action := s.cfg.Credits.CostFor(req.Kind, "")

	if err := s.consume(userID, cost, action, fmt.Sprintf("%s for %s", req.Kind, req.Payload.URL)); err != nil {
		return nil, err
	}

	tmpl, err := s.template(promptKeyForKind(req.Kind))
	if err != nil {
		return nil, err
	}

	analysis, err := s.generator.AnalyzeWebsite(tmpl, req.Payload)
	if err != nil {
		return s.degradeAnalysis(userID, req, cost, err), nil
	}

	if raw, err := json.Marshal(analysis); err == nil {
		s.store(key, req.Kind, raw, s.cfg.Cache.AnalysisTTL())
	}

	return &domain.GenerationResult{
		Kind:        req.Kind,
		Status:      domain.StatusSucceeded,
		Analysis:    analysis,
		CreditsUsed: cost,
	}, nil
}

// runPlatforms handles ad copy and image kinds. Platforms are generated
// independently and sequentially; one platform failing degrades its own
// slot without aborting the rest.
func (s *Service) runPlatforms(userID int, req *domain.GenerationRequest) (*domain.GenerationResult, error) {
	platforms := dedupePlatforms(req.Platforms)

	result := &domain.GenerationResult{Kind: req.Kind}

	cached := make(map[domain.Platform]*domain.GeneratedAdSet)
	var missing []domain.Platform

	for _, platform := range platforms {
		key := domain.CacheKey(userID, req.Kind, platform, req.Payload)

		raw := s.lookup(key)
		if raw == nil {
			missing = append(missing, platform)
			continue
		}

		var adSet domain.GeneratedAdSet
		if err := json.Unmarshal(raw, &adSet); err != nil {
			logrus.WithField("fingerprint", key).Warn("generation: discarding unreadable cache entry")
			missing = append(missing, platform)
			continue
		}

		cached[platform] = &adSet
	}

	// The advisory balance check covers every platform that needs live
	// generation, so a request the user cannot afford is rejected before
	// anything is consumed.
	if len(missing) > 0 {
		required := 0
		for _, platform := range missing {
			cost, _ := s.cfg.Credits.CostFor(req.Kind, platform)
			required += cost
		}

		covered, available, err := s.credits.CheckBalance(userID, required)
		if err != nil {
			return nil, err
		}
		if !covered {
			logrus.WithFields(logrus.Fields{
				"user_id":   userID,
				"required":  required,
				"available": available,
			}).Info("generation: request rejected, balance too low")
			return nil, &InsufficientCreditError{Required: required, Available: available}
		}
	}

	for _, platform := range platforms {
		if adSet, ok := cached[platform]; ok {
			result.Platforms = append(result.Platforms, domain.PlatformResult{
				Platform:  platform,
				Status:    domain.StatusSucceeded,
				FromCache: true,
				Ads:       adSet,
			})
			continue
		}

		platformResult, creditsUsed, err := s.generatePlatform(userID, req, platform)
		if err != nil {
			return nil, err
		}

		result.Platforms = append(result.Platforms, *platformResult)
		result.CreditsUsed += creditsUsed
	}

	finishResult(result)

	logrus.WithFields(logrus.Fields{
		"user_id":      userID,
		"kind":         req.Kind,
		"status":       result.Status,
		"platforms":    len(result.Platforms),
		"credits_used": result.CreditsUsed,
	}).Info("generation: run finished")

	return result, nil
}

// generatePlatform consumes credits for one platform and produces either
// live or fallback content. Only repository-level failures surface as
// errors; provider trouble degrades the slot instead.
func (s *Service) generatePlatform(userID int, req *domain.GenerationRequest, platform domain.Platform) (*domain.PlatformResult, int, error) {
	cost, action := s.cfg.Credits.CostFor(req.Kind, platform)

	ok, _, err := s.credits.TryConsume(userID, cost, action, fmt.Sprintf("%s for %s", req.Kind, platform))
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		// A concurrent request drained the balance between the advisory
		// check and the consume. The slot is rejected, not degraded.
		return &domain.PlatformResult{
			Platform: platform,
			Status:   domain.StatusRejected,
			Reason:   domain.ReasonInsufficientCredit,
		}, 0, nil
	}

	adSet, genErr := s.generateContent(req, platform)
	if genErr != nil {
		reason := degradeReason(genErr)

		logrus.WithFields(logrus.Fields{
			"user_id":  userID,
			"platform": platform,
			"reason":   reason,
			"error":    genErr.Error(),
		}).Warn("generation: falling back to template content")

		creditsUsed := cost
		if !s.cfg.Credits.ChargeOnDegradedResult {
			if _, err := s.credits.Refund(userID, cost, domain.ActionCreditRefund, fmt.Sprintf("refund for degraded %s on %s", req.Kind, platform)); err != nil {
				logrus.WithField("user_id", userID).WithError(err).Error("generation: refund failed")
			} else {
				creditsUsed = 0
			}
		}

		fallback := buildFallbackAdSet(platform, req.Payload)
		if req.Kind == domain.KindAdImage {
			fallback = &domain.GeneratedAdSet{Platform: platform, ImageURL: fallbackImageURL(req.Payload)}
		}

		// Failures are never cached.
		return &domain.PlatformResult{
			Platform: platform,
			Status:   domain.StatusDegraded,
			Reason:   reason,
			Ads:      fallback,
		}, creditsUsed, nil
	}

	key := domain.CacheKey(userID, req.Kind, platform, req.Payload)
	if raw, err := json.Marshal(adSet); err == nil {
		s.store(key, req.Kind, raw, s.cfg.Cache.AdTTL())
	}

	return &domain.PlatformResult{
		Platform: platform,
		Status:   domain.StatusSucceeded,
		Ads:      adSet,
	}, cost, nil
}

func (s *Service) generateContent(req *domain.GenerationRequest, platform domain.Platform) (*domain.GeneratedAdSet, error) {
	if req.Kind == domain.KindAdImage {
		tmpl, err := s.template(domain.PromptKeyImageBrief)
		if err != nil {
			return nil, err
		}

		url, err := s.generator.GenerateImage(tmpl, platform, req.Payload)
		if err != nil {
			return nil, err
		}

		return &domain.GeneratedAdSet{Platform: platform, ImageURL: url, IsComplete: true}, nil
	}

	tmpl, err := s.template(promptKeyForPlatform(platform))
	if err != nil {
		return nil, err
	}

	return s.generator.GenerateAdSet(platform, tmpl, req.Payload)
}

// consume runs the advisory check and the atomic consume back to back for
// single-unit kinds.
func (s *Service) consume(userID int, cost int, action domain.CreditAction, description string) error {
	covered, available, err := s.credits.CheckBalance(userID, cost)
	if err != nil {
		return err
	}
	if !covered {
		return &InsufficientCreditError{Required: cost, Available: available}
	}

	ok, balance, err := s.credits.TryConsume(userID, cost, action, description)
	if err != nil {
		return err
	}
	if !ok {
		return &InsufficientCreditError{Required: cost, Available: balance}
	}

	return nil
}

func (s *Service) degradeAnalysis(userID int, req *domain.GenerationRequest, cost int, genErr error) *domain.GenerationResult {
	reason := degradeReason(genErr)

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"kind":    req.Kind,
		"reason":  reason,
		"error":   genErr.Error(),
	}).Warn("generation: analysis degraded to fallback")

	creditsUsed := cost
	if !s.cfg.Credits.ChargeOnDegradedResult {
		if _, err := s.credits.Refund(userID, cost, domain.ActionCreditRefund, fmt.Sprintf("refund for degraded %s", req.Kind)); err != nil {
			logrus.WithField("user_id", userID).WithError(err).Error("generation: refund failed")
		} else {
			creditsUsed = 0
		}
	}

	return &domain.GenerationResult{
		Kind:        req.Kind,
		Status:      domain.StatusDegraded,
		Reason:      reason,
		Analysis:    buildFallbackAnalysis(req.Payload),
		CreditsUsed: creditsUsed,
	}
}

// lookup treats cache failures as misses. The cache exists to save money,
// not to gate the workflow.
func (s *Service) lookup(key string) []byte {
	raw, err := s.cache.Lookup(key)
	if err != nil {
		logrus.WithField("fingerprint", key).WithError(err).Warn("generation: cache lookup failed, treating as miss")
		return nil
	}
	return raw
}

// store failures are logged and swallowed for the same reason.
func (s *Service) store(key string, kind domain.GenerationKind, raw []byte, ttl time.Duration) {
	if err := s.cache.Store(key, kind, raw, ttl); err != nil {
		logrus.WithField("fingerprint", key).WithError(err).Warn("generation: cache write failed")
	}
}

func (s *Service) template(key string) (*domain.PromptTemplate, error) {
	tmpl, err := s.promptRepo.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return nil, errors.Wrapf(ErrPromptNotConfigured, "key %s", key)
	}
	return tmpl, nil
}

func finishResult(result *domain.GenerationResult) {
	allCached := len(result.Platforms) > 0
	allSucceeded := true

	for _, p := range result.Platforms {
		if !p.FromCache {
			allCached = false
		}
		if p.Status != domain.StatusSucceeded {
			allSucceeded = false
		}
	}

	result.FromCache = allCached
	if allSucceeded {
		result.Status = domain.StatusSucceeded
	} else {
		result.Status = domain.StatusDegraded
	}
}

func degradeReason(err error) domain.DegradeReason {
	if errors.Is(err, domain.ErrInvalidProviderResponse) {
		return domain.ReasonParseError
	}
	return domain.ReasonProviderError
}

func promptKeyForKind(kind domain.GenerationKind) string {
	if kind == domain.KindAudienceAnalysis {
		return domain.PromptKeyAudienceAnalysis
	}
	return domain.PromptKeyWebsiteAnalysis
}

func promptKeyForPlatform(platform domain.Platform) string {
	switch platform {
	case domain.PlatformMeta:
		return domain.PromptKeyMetaAds
	case domain.PlatformLinkedIn:
		return domain.PromptKeyLinkedInAds
	case domain.PlatformMicrosoft:
		return domain.PromptKeyMicrosoftAds
	default:
		return domain.PromptKeyGoogleAds
	}
}

func dedupePlatforms(platforms []domain.Platform) []domain.Platform {
	seen := make(map[domain.Platform]bool, len(platforms))
	out := make([]domain.Platform, 0, len(platforms))
	for _, p := range platforms {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
