package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/adpilot/adpilot-api/infrastructure/repository"
	"github.com/adpilot/adpilot-api/internal/config"
)

// CacheCleanupService prunes expired response cache rows on a cron
// schedule. Expired entries are already invisible to lookups; the job just
// keeps the table from growing without bound.
type CacheCleanupService struct {
	scheduler          *gocron.Scheduler
	config             config.CacheCleanup
	cacheRepo          repository.ResponseCacheRepository
	cleanupRunning     bool
	cleanupMutex       sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRunDeleted     int64
}

func NewCacheCleanupService(cacheRepo repository.ResponseCacheRepository, appConfig *config.Config) *CacheCleanupService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.CacheCleanup.CronSchedule,
		"enabled":       appConfig.CacheCleanup.Enabled,
	}).Info("cache cleanup: scheduler configured")

	return &CacheCleanupService{
		scheduler: scheduler,
		config:    appConfig.CacheCleanup,
		cacheRepo: cacheRepo,
	}
}

// Start schedules the cleanup job and stops it when the context ends.
func (s *CacheCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("cache cleanup: disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("cache cleanup: starting scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runCleanup()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule cache cleanup: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("cache cleanup: stopping scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CacheCleanupService) runCleanup() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("cache cleanup: run already in progress, skipping")
		return
	}
	s.cleanupRunning = true
	s.cleanupMutex.Unlock()

	s.lastRunStartedAt = time.Now()

	defer func() {
		s.cleanupMutex.Lock()
		s.cleanupRunning = false
		s.cleanupMutex.Unlock()
	}()

	deleted, err := s.cacheRepo.DeleteExpired()
	if err != nil {
		logrus.WithError(err).Error("cache cleanup: failed to delete expired entries")
		return
	}

	s.lastRunCompletedAt = time.Now()
	s.lastRunDeleted = deleted

	logrus.WithFields(logrus.Fields{
		"deleted":  deleted,
		"duration": s.lastRunCompletedAt.Sub(s.lastRunStartedAt).String(),
	}).Info("cache cleanup: run finished")
}

// TriggerManualRun starts a cleanup outside the schedule.
func (s *CacheCleanupService) TriggerManualRun() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("cache cleanup: run already in progress, ignoring manual trigger")
		return
	}
	s.cleanupMutex.Unlock()

	logrus.Info("cache cleanup: manual run triggered")
	go s.runCleanup()
}

// GetStatus reports the scheduler state for the operations endpoint.
func (s *CacheCleanupService) GetStatus() map[string]any {
	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"running":               s.cleanupRunning,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_run_deleted":      s.lastRunDeleted,
	}
}
