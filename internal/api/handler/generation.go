package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/adpilot/adpilot-api/internal/domain"
	"github.com/adpilot/adpilot-api/internal/usecases/generating"
	"github.com/adpilot/adpilot-api/pkg/apiErrors"
	"github.com/adpilot/adpilot-api/pkg/middleware"
)

// Generate runs one generation request for the authenticated user. The
// orchestrator decides cache reuse, credit consumption and fallbacks; a
// degraded run is still a 200 with status "degraded" in the body.
func Generate(service generating.Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User not authenticated", nil)
			return
		}

		var req domain.GenerationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Failed to decode request", nil)
			return
		}

		result, err := service.Run(userClaims.UserID, &req)
		if err != nil {
			handleGenerationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(result)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to write response", nil)
			return
		}
	}
}

func handleGenerationError(w http.ResponseWriter, err error) {
	var creditErr *generating.InsufficientCreditError
	if errors.As(err, &creditErr) {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientCredit, "Not enough credits for this generation", map[string]any{
			"required":  creditErr.Required,
			"available": creditErr.Available,
		})
		return
	}

	switch {
	case errors.Is(err, generating.ErrUnauthorized):
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User not authenticated", nil)

	case errors.Is(err, generating.ErrInvalidRequest):
		apiErrors.WriteError(w, apiErrors.ErrGenerationRequest, err.Error(), nil)

	case errors.Is(err, generating.ErrInsufficientCredit):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientCredit, "Not enough credits for this generation", nil)

	case errors.Is(err, generating.ErrPromptNotConfigured):
		apiErrors.WriteError(w, apiErrors.ErrPromptNotFound, "Prompt template not configured", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to run generation", nil)
	}
}
