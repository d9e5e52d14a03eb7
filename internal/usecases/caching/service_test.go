package caching

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adpilot/adpilot-api/infrastructure/repository/mocks"
	"github.com/adpilot/adpilot-api/internal/domain"
)

func TestLookup(t *testing.T) {
	payload := json.RawMessage(`{"company_name":"Acme"}`)

	tests := []struct {
		name     string
		setup    func(repo *mocks.MockResponseCacheRepository)
		validate func(t *testing.T, result json.RawMessage, err error)
	}{
		{
			name: "fresh entry is returned",
			setup: func(repo *mocks.MockResponseCacheRepository) {
				repo.EXPECT().
					GetByFingerprint("abc123").
					Return(&domain.CacheEntry{
						Fingerprint: "abc123",
						Kind:        domain.KindWebsiteAnalysis,
						Result:      payload,
						CreatedAt:   time.Now().Add(-time.Hour),
						ExpiresAt:   time.Now().Add(time.Hour),
					}, nil)
			},
			validate: func(t *testing.T, result json.RawMessage, err error) {
				assert.NoError(t, err)
				assert.JSONEq(t, string(payload), string(result))
			},
		},
		{
			name: "missing entry is a miss",
			setup: func(repo *mocks.MockResponseCacheRepository) {
				repo.EXPECT().
					GetByFingerprint("abc123").
					Return(nil, nil)
			},
			validate: func(t *testing.T, result json.RawMessage, err error) {
				assert.NoError(t, err)
				assert.Nil(t, result)
			},
		},
		{
			name: "expired entry is a miss",
			setup: func(repo *mocks.MockResponseCacheRepository) {
				repo.EXPECT().
					GetByFingerprint("abc123").
					Return(&domain.CacheEntry{
						Fingerprint: "abc123",
						Kind:        domain.KindWebsiteAnalysis,
						Result:      payload,
						CreatedAt:   time.Now().Add(-31 * 24 * time.Hour),
						ExpiresAt:   time.Now().Add(-24 * time.Hour),
					}, nil)
			},
			validate: func(t *testing.T, result json.RawMessage, err error) {
				assert.NoError(t, err)
				assert.Nil(t, result)
			},
		},
		{
			name: "repository errors are passed through",
			setup: func(repo *mocks.MockResponseCacheRepository) {
				repo.EXPECT().
					GetByFingerprint("abc123").
					Return(nil, errors.New("connection reset"))
			},
			validate: func(t *testing.T, result json.RawMessage, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockResponseCacheRepository(ctrl)
			tt.setup(repo)

			service := NewService(repo)

			result, err := service.Lookup("abc123")
			tt.validate(t, result, err)
		})
	}
}

func TestStore(t *testing.T) {
	t.Run("stores with the expiry derived from the ttl", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockResponseCacheRepository(ctrl)
		repo.EXPECT().
			Upsert(gomock.Any()).
			DoAndReturn(func(entry *domain.CacheEntry) error {
				assert.Equal(t, "abc123", entry.Fingerprint)
				assert.Equal(t, domain.KindAdCopy, entry.Kind)
				assert.WithinDuration(t, entry.CreatedAt.Add(24*time.Hour), entry.ExpiresAt, time.Second)
				return nil
			})

		service := NewService(repo)

		err := service.Store("abc123", domain.KindAdCopy, json.RawMessage(`{"ads":[]}`), 24*time.Hour)
		assert.NoError(t, err)
	})
}
