package ai

import (
	"context"

	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
)

// Provider identifies an LLM vendor
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// DisplayName is the vendor name used in error messages
func (p Provider) DisplayName() string {
	switch p {
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderAnthropic:
		return "Anthropic"
	default:
		return string(p)
	}
}

// Adapter turns a transcript into a structured meeting analysis.
// Every failure is returned as a single errors.KindAdapter error.
type Adapter interface {
	Provider() Provider
	Model() string
	AnalyzeTranscript(ctx context.Context, transcript string) (*entities.MeetingAnalysis, error)
}
