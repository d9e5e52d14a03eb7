package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/adpilot/adpilot-api/infrastructure/repository"
	"github.com/adpilot/adpilot-api/pkg/apiErrors"
)

type UpdatePromptRequest struct {
	SystemPrompt string `json:"system_prompt"`
	UserPrompt   string `json:"user_prompt"`
}

// ListPrompts returns every prompt template
func ListPrompts(repo repository.PromptRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates, err := repo.List()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch prompt templates", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(templates)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to write response", nil)
			return
		}
	}
}

// GetPrompt returns a single prompt template by key
func GetPrompt(repo repository.PromptRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := httprouter.ParamsFromContext(r.Context()).ByName("key")
		if key == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Prompt key not provided", nil)
			return
		}

		tmpl, err := repo.GetByKey(key)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch prompt template", nil)
			return
		}

		if tmpl == nil {
			apiErrors.WriteError(w, apiErrors.ErrPromptNotFound, "Prompt template not found", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(tmpl)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to write response", nil)
			return
		}
	}
}

// UpdatePrompt replaces the bodies of a prompt template and bumps its
// version. System-owned templates are read-only.
func UpdatePrompt(repo repository.PromptRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdatePrompt")

		key := httprouter.ParamsFromContext(r.Context()).ByName("key")
		if key == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Prompt key not provided", nil)
			return
		}

		var req UpdatePromptRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Failed to decode request", nil)
			return
		}

		if req.SystemPrompt == "" && req.UserPrompt == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "system_prompt or user_prompt is required", nil)
			return
		}

		tmpl, err := repo.GetByKey(key)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch prompt template", nil)
			return
		}

		if tmpl == nil {
			apiErrors.WriteError(w, apiErrors.ErrPromptNotFound, "Prompt template not found", nil)
			return
		}

		if tmpl.SystemOwned {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "System-owned prompt templates are read-only", nil)
			return
		}

		systemPrompt := req.SystemPrompt
		if systemPrompt == "" {
			systemPrompt = tmpl.SystemPrompt
		}
		userPrompt := req.UserPrompt
		if userPrompt == "" {
			userPrompt = tmpl.UserPrompt
		}

		if err := repo.Update(key, systemPrompt, userPrompt); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to update prompt template", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}
