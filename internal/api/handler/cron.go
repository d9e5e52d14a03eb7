package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/adpilot/adpilot-api/internal/domain"
	"github.com/adpilot/adpilot-api/internal/scheduler"
	"github.com/adpilot/adpilot-api/pkg/apiErrors"
	"github.com/adpilot/adpilot-api/pkg/middleware"
)

// Cron job types accepted by the manual-run endpoint
const (
	CronJobTypeCacheCleanup = "cache-cleanup"
	CronJobTypeAll          = "all"
)

// CronJobServices holds the scheduled services exposed for manual control
type CronJobServices struct {
	CacheCleanupService *scheduler.CacheCleanupService
}

// RunCronJob triggers a scheduled job manually
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Only administrators may trigger cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Only administrators can run cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type not provided", nil)
			return
		}

		switch cronType {
		case CronJobTypeCacheCleanup:
			if services.CacheCleanupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Cache cleanup service not available", nil)
				return
			}
			services.CacheCleanupService.TriggerManualRun()

		case CronJobTypeAll:
			if services.CacheCleanupService != nil {
				services.CacheCleanupService.TriggerManualRun()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: cache-cleanup, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus returns the status of the scheduled jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Only administrators may inspect cron status
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Only administrators can check cron job status", nil)
			return
		}

		status := map[string]any{}

		if services.CacheCleanupService != nil {
			status["cache_cleanup"] = services.CacheCleanupService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(status)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to write response", nil)
			return
		}
	}
}
