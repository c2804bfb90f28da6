package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/storysprout/storysprout-backend/internal/logger"
	"github.com/storysprout/storysprout-backend/internal/utils"
)

type Voice struct {
	VoiceID string `json:"voice_id"`
	Name    string `json:"name"`
}

// VoiceClient registers cloned voices and synthesizes speech against them.
type VoiceClient interface {
	AddVoice(ctx context.Context, name string, description string, sample []byte, filename string) (string, error)
	Synthesize(ctx context.Context, voiceID string, text string) ([]byte, error)
	ListVoices(ctx context.Context) ([]Voice, error)
}

type elevenLabsClient struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewElevenLabsClient(log *logger.Logger) (VoiceClient, error) {
	serviceLog := log.With("service", "ElevenLabsClient")
	apiKey := utils.GetEnv("ELEVENLABS_API_KEY", "", log)
	if apiKey == "" {
		return nil, fmt.Errorf("ELEVENLABS_API_KEY: %w", ErrNotConfigured)
	}
	baseURL := utils.GetEnv("ELEVENLABS_BASE_URL", "https://api.elevenlabs.io", log)
	model := utils.GetEnv("ELEVENLABS_MODEL", "eleven_monolingual_v1", log)
	timeoutSec := utils.GetEnvAsInt("VOICE_TIMEOUT_SECONDS", 60, log)

	return &elevenLabsClient{
		log:        serviceLog,
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}, nil
}

type addVoiceResponse struct {
	VoiceID string `json:"voice_id"`
}

func (c *elevenLabsClient) AddVoice(ctx context.Context, name string, description string, sample []byte, filename string) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("name", name); err != nil {
		return "", err
	}
	if err := writer.WriteField("description", description); err != nil {
		return "", err
	}
	part, err := writer.CreateFormFile("files", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(sample); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/voices/add", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("elevenlabs transport: %w", err)
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return "", fmt.Errorf("elevenlabs transport: %w", readErr)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ProviderHTTPError{Provider: "elevenlabs", StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var parsed addVoiceResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &MalformedPayloadError{Provider: "elevenlabs", Reason: "decode response", Err: err}
	}
	if parsed.VoiceID == "" {
		return "", &MalformedPayloadError{Provider: "elevenlabs", Reason: "empty voice_id"}
	}
	return parsed.VoiceID, nil
}

type synthesizeRequest struct {
	Text          string `json:"text"`
	ModelID       string `json:"model_id"`
	VoiceSettings struct {
		Stability       float64 `json:"stability"`
		SimilarityBoost float64 `json:"similarity_boost"`
	} `json:"voice_settings"`
}

func (c *elevenLabsClient) Synthesize(ctx context.Context, voiceID string, text string) ([]byte, error) {
	reqBody := synthesizeRequest{Text: text, ModelID: c.model}
	reqBody.VoiceSettings.Stability = 0.5
	reqBody.VoiceSettings.SimilarityBoost = 0.5

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/text-to-speech/"+voiceID, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs transport: %w", err)
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, fmt.Errorf("elevenlabs transport: %w", readErr)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ProviderHTTPError{Provider: "elevenlabs", StatusCode: resp.StatusCode, Body: string(raw)}
	}
	if len(raw) == 0 {
		return nil, &MalformedPayloadError{Provider: "elevenlabs", Reason: "empty audio body"}
	}
	return raw, nil
}

type listVoicesResponse struct {
	Voices []Voice `json:"voices"`
}

func (c *elevenLabsClient) ListVoices(ctx context.Context) ([]Voice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/voices", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs transport: %w", err)
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, fmt.Errorf("elevenlabs transport: %w", readErr)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ProviderHTTPError{Provider: "elevenlabs", StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var parsed listVoicesResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &MalformedPayloadError{Provider: "elevenlabs", Reason: "decode response", Err: err}
	}
	return parsed.Voices, nil
}
