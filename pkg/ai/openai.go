package ai

import (
	"context"
	stdErrors "errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	apperrors "github.com/johnquangdev/meeting-analyzer/errors"
	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

// DefaultOpenAIModel is used when OPENAI_MODEL is not set
const DefaultOpenAIModel = "gpt-3.5-turbo"

// OpenAIAdapter analyzes transcripts with the chat completions API in JSON mode
type OpenAIAdapter struct {
	client *openai.Client
	model  string
}

// NewOpenAIAdapter creates an adapter for OpenAI or any OpenAI-compatible endpoint
func NewOpenAIAdapter(cfg config.OpenAIConfig, httpClient *http.Client) *OpenAIAdapter {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	if httpClient != nil {
		clientConfig.HTTPClient = httpClient
	}

	model := cfg.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	return &OpenAIAdapter{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

func (a *OpenAIAdapter) Provider() Provider { return ProviderOpenAI }

func (a *OpenAIAdapter) Model() string { return a.model }

// AnalyzeTranscript sends the transcript and parses the JSON object reply
func (a *OpenAIAdapter) AnalyzeTranscript(ctx context.Context, transcript string) (*entities.MeetingAnalysis, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(transcript)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: temperature,
	})
	if err != nil {
		return nil, a.fail(describeOpenAIError(err))
	}

	if len(resp.Choices) == 0 {
		return nil, a.fail(stdErrors.New("no response content from OpenAI"))
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return nil, a.fail(stdErrors.New("no response content from OpenAI"))
	}

	result, err := parseAnalysis(content)
	if err != nil {
		return nil, a.fail(err)
	}
	return result, nil
}

func (a *OpenAIAdapter) fail(cause error) error {
	return apperrors.Adapter(ProviderOpenAI.DisplayName(), cause)
}

// describeOpenAIError flattens SDK error types into plain text carrying the status code
func describeOpenAIError(err error) error {
	var apiErr *openai.APIError
	if stdErrors.As(err, &apiErr) {
		return fmt.Errorf("status %d: %s", apiErr.HTTPStatusCode, apiErr.Message)
	}
	var reqErr *openai.RequestError
	if stdErrors.As(err, &reqErr) {
		return fmt.Errorf("status %d: %s", reqErr.HTTPStatusCode, http.StatusText(reqErr.HTTPStatusCode))
	}
	return stdErrors.New(err.Error())
}
