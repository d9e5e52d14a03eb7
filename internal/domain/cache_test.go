package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheEntryExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	entry := &CacheEntry{ExpiresAt: now}

	assert.False(t, entry.Expired(now.Add(-time.Second)))
	assert.True(t, entry.Expired(now), "entry expires exactly at ExpiresAt")
	assert.True(t, entry.Expired(now.Add(time.Hour)))
}
