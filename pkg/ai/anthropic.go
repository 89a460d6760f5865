package ai

import (
	"bytes"
	"context"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/johnquangdev/meeting-analyzer/errors"
	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

const (
	DefaultAnthropicModel   = "claude-sonnet-4-20250514"
	DefaultAnthropicBaseURL = "https://api.anthropic.com"
	anthropicVersion        = "2023-06-01"
	defaultMaxTokens        = 4096
)

// AnthropicAdapter is a minimal client for the Messages API
type AnthropicAdapter struct {
	apiKey    string
	baseURL   string
	model     string
	maxTokens int
	client    *http.Client
}

// NewAnthropicAdapter creates an Anthropic adapter from explicit configuration
func NewAnthropicAdapter(cfg config.AnthropicConfig, httpClient *http.Client) *AnthropicAdapter {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultAnthropicBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultAnthropicModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}

	return &AnthropicAdapter{
		apiKey:    cfg.APIKey,
		baseURL:   base,
		model:     model,
		maxTokens: maxTokens,
		client:    httpClient,
	}
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
	Temperature float64            `json:"temperature"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *anthropicError `json:"error,omitempty"`
}

type anthropicError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (a *AnthropicAdapter) Provider() Provider { return ProviderAnthropic }

func (a *AnthropicAdapter) Model() string { return a.model }

// AnalyzeTranscript sends the transcript and extracts the JSON object from the text reply
func (a *AnthropicAdapter) AnalyzeTranscript(ctx context.Context, transcript string) (*entities.MeetingAnalysis, error) {
	text, err := a.complete(ctx, transcript)
	if err != nil {
		return nil, a.fail(err)
	}

	result, err := parseAnalysis(extractJSON(text))
	if err != nil {
		return nil, a.fail(err)
	}
	return result, nil
}

func (a *AnthropicAdapter) complete(ctx context.Context, transcript string) (string, error) {
	reqBody := anthropicRequest{
		Model:       a.model,
		MaxTokens:   a.maxTokens,
		System:      systemPrompt,
		Messages:    []anthropicMessage{{Role: "user", Content: userPrompt(transcript)}},
		Temperature: temperature,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := a.baseURL + "/v1/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", stdErrors.New(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var ar anthropicResponse
	decodeErr := json.Unmarshal(body, &ar)

	if resp.StatusCode >= 400 {
		if decodeErr == nil && ar.Error != nil && ar.Error.Message != "" {
			return "", fmt.Errorf("status %d: %s", resp.StatusCode, ar.Error.Message)
		}
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	if decodeErr != nil {
		return "", fmt.Errorf("decode response: %w", decodeErr)
	}

	if len(ar.Content) == 0 || ar.Content[0].Type != "text" {
		return "", stdErrors.New("unexpected response type from Anthropic")
	}
	return ar.Content[0].Text, nil
}

func (a *AnthropicAdapter) fail(cause error) error {
	return apperrors.Adapter(ProviderAnthropic.DisplayName(), cause)
}
