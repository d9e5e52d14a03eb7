package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/adpilot/adpilot-api/infrastructure/repository/mocks"
	"github.com/adpilot/adpilot-api/internal/domain"
	"github.com/adpilot/adpilot-api/pkg/apiErrors"
)

func promptRequest(method, key, body string) *http.Request {
	req := httptest.NewRequest(method, "/v1/prompts/"+key, strings.NewReader(body))
	params := httprouter.Params{{Key: "key", Value: key}}
	return req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	return apiErr
}

func TestUpdatePrompt(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		body     string
		setup    func(repo *mocks.MockPromptRepository)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "updates a user-owned template and merges the missing body",
			key:  "google_ads",
			body: `{"system_prompt":"Write sharper headlines."}`,
			setup: func(repo *mocks.MockPromptRepository) {
				repo.EXPECT().
					GetByKey("google_ads").
					Return(&domain.PromptTemplate{
						Key:          "google_ads",
						SystemPrompt: "old system",
						UserPrompt:   "old user",
						SystemOwned:  false,
					}, nil)
				repo.EXPECT().
					Update("google_ads", "Write sharper headlines.", "old user").
					Return(nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name: "system-owned templates are read-only",
			key:  "meta_ads",
			body: `{"system_prompt":"overwrite me"}`,
			setup: func(repo *mocks.MockPromptRepository) {
				repo.EXPECT().
					GetByKey("meta_ads").
					Return(&domain.PromptTemplate{
						Key:         "meta_ads",
						SystemOwned: true,
					}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusForbidden, rec.Code)
				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrInsufficientPrivilege, apiErr.Code)
			},
		},
		{
			name: "unknown key is not found",
			key:  "tiktok_ads",
			body: `{"system_prompt":"anything"}`,
			setup: func(repo *mocks.MockPromptRepository) {
				repo.EXPECT().
					GetByKey("tiktok_ads").
					Return(nil, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, rec.Code)
				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrPromptNotFound, apiErr.Code)
			},
		},
		{
			name:  "empty request body is rejected",
			key:   "google_ads",
			body:  `{}`,
			setup: func(repo *mocks.MockPromptRepository) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockPromptRepository(ctrl)
			tt.setup(repo)

			rec := httptest.NewRecorder()
			UpdatePrompt(repo).ServeHTTP(rec, promptRequest(http.MethodPut, tt.key, tt.body))

			tt.validate(t, rec)
		})
	}
}

func TestGetPrompt(t *testing.T) {
	t.Run("returns the template by key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockPromptRepository(ctrl)
		repo.EXPECT().
			GetByKey("linkedin_ads").
			Return(&domain.PromptTemplate{
				Key:          "linkedin_ads",
				SystemPrompt: "sys",
				UserPrompt:   "usr",
				SystemOwned:  true,
			}, nil)

		rec := httptest.NewRecorder()
		GetPrompt(repo).ServeHTTP(rec, promptRequest(http.MethodGet, "linkedin_ads", ""))

		assert.Equal(t, http.StatusOK, rec.Code)

		var tmpl domain.PromptTemplate
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&tmpl))
		assert.Equal(t, "linkedin_ads", tmpl.Key)
		assert.True(t, tmpl.SystemOwned)
	})

	t.Run("unknown key is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockPromptRepository(ctrl)
		repo.EXPECT().
			GetByKey("tiktok_ads").
			Return(nil, nil)

		rec := httptest.NewRecorder()
		GetPrompt(repo).ServeHTTP(rec, promptRequest(http.MethodGet, "tiktok_ads", ""))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		apiErr := decodeAPIError(t, rec)
		assert.Equal(t, apiErrors.ErrPromptNotFound, apiErr.Code)
	})
}
