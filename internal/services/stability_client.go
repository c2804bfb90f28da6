package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/storysprout/storysprout-backend/internal/logger"
	"github.com/storysprout/storysprout-backend/internal/utils"
)

// ImageClient generates one illustration from a text prompt and returns an
// opaque asset reference (a data URL here); callers must not interpret it.
type ImageClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type stabilityClient struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	engine     string
	httpClient *http.Client
}

func NewStabilityClient(log *logger.Logger) (ImageClient, error) {
	serviceLog := log.With("service", "StabilityClient")
	apiKey := utils.GetEnv("STABILITY_API_KEY", "", log)
	if apiKey == "" {
		return nil, fmt.Errorf("STABILITY_API_KEY: %w", ErrNotConfigured)
	}
	baseURL := utils.GetEnv("STABILITY_BASE_URL", "https://api.stability.ai", log)
	engine := utils.GetEnv("STABILITY_ENGINE", "stable-diffusion-xl-1024-v1-0", log)
	timeoutSec := utils.GetEnvAsInt("IMAGE_TIMEOUT_SECONDS", 120, log)

	return &stabilityClient{
		log:        serviceLog,
		baseURL:    baseURL,
		apiKey:     apiKey,
		engine:     engine,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}, nil
}

type stabilityTextPrompt struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}

type stabilityRequest struct {
	TextPrompts []stabilityTextPrompt `json:"text_prompts"`
	CfgScale    int                   `json:"cfg_scale"`
	Height      int                   `json:"height"`
	Width       int                   `json:"width"`
	Steps       int                   `json:"steps"`
	Samples     int                   `json:"samples"`
}

type stabilityResponse struct {
	Artifacts []struct {
		Base64 string `json:"base64"`
	} `json:"artifacts"`
}

func (c *stabilityClient) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := stabilityRequest{
		TextPrompts: []stabilityTextPrompt{{Text: prompt, Weight: 1}},
		CfgScale:    7,
		Height:      512,
		Width:       512,
		Steps:       20,
		Samples:     1,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1/generation/%s/text-to-image", c.baseURL, c.engine)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("stability transport: %w", err)
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return "", fmt.Errorf("stability transport: %w", readErr)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ProviderHTTPError{Provider: "stability", StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var parsed stabilityResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &MalformedPayloadError{Provider: "stability", Reason: "decode response", Err: err}
	}
	if len(parsed.Artifacts) == 0 || parsed.Artifacts[0].Base64 == "" {
		return "", &MalformedPayloadError{Provider: "stability", Reason: "no image artifact"}
	}
	return "data:image/png;base64," + parsed.Artifacts[0].Base64, nil
}
