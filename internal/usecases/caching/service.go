package caching

import (
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adpilot/adpilot-api/infrastructure/repository"
	"github.com/adpilot/adpilot-api/internal/domain"
)

// ResponseCache is the lookup/store pair used by the generation workflow.
// A lookup miss and an expired entry are indistinguishable to callers: both
// return nil without error.
type ResponseCache interface {
	Lookup(key string) (json.RawMessage, error)
	Store(key string, kind domain.GenerationKind, result json.RawMessage, ttl time.Duration) error
}

type Service struct {
	cacheRepo repository.ResponseCacheRepository
}

func NewService(cacheRepo repository.ResponseCacheRepository) ResponseCache {
	return &Service{
		cacheRepo: cacheRepo,
	}
}

func (s *Service) Lookup(key string) (json.RawMessage, error) {
	entry, err := s.cacheRepo.GetByFingerprint(key)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	// Expired rows are treated as misses. The cleanup job removes them
	// later; serving them would hand out stale analyses.
	if entry.Expired(time.Now()) {
		logrus.WithField("fingerprint", key).Debug("cache: entry expired, treating as miss")
		return nil, nil
	}

	return entry.Result, nil
}

func (s *Service) Store(key string, kind domain.GenerationKind, result json.RawMessage, ttl time.Duration) error {
	now := time.Now()

	err := s.cacheRepo.Upsert(&domain.CacheEntry{
		Fingerprint: key,
		Kind:        kind,
		Result:      result,
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"fingerprint": key,
		"kind":        kind,
		"ttl":         ttl.String(),
	}).Debug("cache: entry stored")

	return nil
}
