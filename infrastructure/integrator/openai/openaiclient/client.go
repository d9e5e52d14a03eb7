package openaiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	openaidomain "github.com/adpilot/adpilot-api/infrastructure/integrator/openai/domain"
	"github.com/adpilot/adpilot-api/internal/config"
	"github.com/adpilot/adpilot-api/internal/domain"
)

type Client interface {
	CreateChatCompletion(req *openaidomain.ChatCompletionRequest) (*openaidomain.ChatCompletionResponse, error)
	CreateImage(req *openaidomain.ImageGenerationRequest) (*openaidomain.ImageGenerationResponse, error)
}

type OpenAIClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &OpenAIClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: cfg.OpenAI.Timeout,
		},
	}
}

func (c *OpenAIClient) CreateChatCompletion(req *openaidomain.ChatCompletionRequest) (*openaidomain.ChatCompletionResponse, error) {
	body, err := c.post("/chat/completions", req)
	if err != nil {
		return nil, err
	}

	var response openaidomain.ChatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("openai: failed to decode chat completion response")
		return nil, errors.Wrap(domain.ErrInvalidProviderResponse, err.Error())
	}

	if len(response.Choices) == 0 {
		return nil, errors.Wrap(domain.ErrInvalidProviderResponse, "chat completion returned no choices")
	}

	return &response, nil
}

func (c *OpenAIClient) CreateImage(req *openaidomain.ImageGenerationRequest) (*openaidomain.ImageGenerationResponse, error) {
	body, err := c.post("/images/generations", req)
	if err != nil {
		return nil, err
	}

	var response openaidomain.ImageGenerationResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("openai: failed to decode image generation response")
		return nil, errors.Wrap(domain.ErrInvalidProviderResponse, err.Error())
	}

	if len(response.Data) == 0 {
		return nil, errors.Wrap(domain.ErrInvalidProviderResponse, "image generation returned no data")
	}

	return &response, nil
}

func (c *OpenAIClient) post(path string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := c.Cfg.OpenAI.BaseURL + path

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		logrus.WithError(err).Error("openai: failed to build request")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Cfg.OpenAI.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Error("openai: request failed")
		return nil, errors.Wrap(domain.ErrProviderUnavailable, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(domain.ErrProviderUnavailable, err.Error())
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail := fmt.Sprintf("status %d", resp.StatusCode)

		var apiErr openaidomain.APIError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			detail = fmt.Sprintf("%s: %s", detail, apiErr.String())
		}

		logrus.WithFields(logrus.Fields{
			"path":   path,
			"status": resp.StatusCode,
		}).Error("openai: provider returned an error response")

		return nil, errors.Wrap(domain.ErrProviderUnavailable, detail)
	}

	return body, nil
}
