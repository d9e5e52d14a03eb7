package domain

import (
	"encoding/json"
	"time"
)

// CacheEntry is a stored generation result keyed by fingerprint. Entries
// past ExpiresAt are treated as absent; they may be pruned lazily.
type CacheEntry struct {
	Fingerprint string          `json:"fingerprint"`
	Kind        GenerationKind  `json:"kind"`
	Result      json.RawMessage `json:"result"`
	CreatedAt   time.Time       `json:"created_at"`
	ExpiresAt   time.Time       `json:"expires_at"`
}

// Expired reports whether the entry is stale at the given instant.
func (e *CacheEntry) Expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}
