package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adpilot/adpilot-api/infrastructure/repository/mocks"
	"github.com/adpilot/adpilot-api/internal/config"
)

func newTestCleanup(t *testing.T, enabled bool) (*CacheCleanupService, *mocks.MockResponseCacheRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cacheRepo := mocks.NewMockResponseCacheRepository(ctrl)

	cfg := &config.Config{
		CacheCleanup: config.CacheCleanup{
			CronSchedule: "0 4 * * *",
			Enabled:      enabled,
		},
	}

	return NewCacheCleanupService(cacheRepo, cfg), cacheRepo
}

func TestRunCleanup(t *testing.T) {
	t.Run("records the outcome of a successful run", func(t *testing.T) {
		service, cacheRepo := newTestCleanup(t, true)

		cacheRepo.EXPECT().DeleteExpired().Return(int64(17), nil)

		service.runCleanup()

		status := service.GetStatus()
		assert.Equal(t, int64(17), status["last_run_deleted"])
		assert.False(t, status["last_run_completed_at"].(time.Time).IsZero())
		assert.False(t, status["running"].(bool))
	})

	t.Run("a failed run keeps the previous completion time", func(t *testing.T) {
		service, cacheRepo := newTestCleanup(t, true)

		cacheRepo.EXPECT().DeleteExpired().Return(int64(0), errors.New("connection reset"))

		service.runCleanup()

		status := service.GetStatus()
		assert.True(t, status["last_run_completed_at"].(time.Time).IsZero())
	})
}

func TestStatusReflectsConfig(t *testing.T) {
	service, _ := newTestCleanup(t, false)

	status := service.GetStatus()
	assert.False(t, status["enabled"].(bool))
	assert.Equal(t, "0 4 * * *", status["cron"])
}
