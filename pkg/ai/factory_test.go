package ai

import (
	"testing"
	"time"

	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

func TestSelectAdapters(t *testing.T) {
	both := config.LLMConfig{
		OpenAI:    config.OpenAIConfig{APIKey: "sk-1"},
		Anthropic: config.AnthropicConfig{APIKey: "ak-1"},
		Timeout:   time.Second,
	}

	primary, fallback := SelectAdapters(both)
	if primary == nil || primary.Provider() != ProviderOpenAI {
		t.Fatalf("expected OpenAI primary, got %v", primary)
	}
	if fallback == nil || fallback.Provider() != ProviderAnthropic {
		t.Fatalf("expected Anthropic fallback, got %v", fallback)
	}
	if primary.Model() != DefaultOpenAIModel || fallback.Model() != DefaultAnthropicModel {
		t.Fatalf("unexpected default models %q %q", primary.Model(), fallback.Model())
	}

	primary, fallback = SelectAdapters(config.LLMConfig{Anthropic: config.AnthropicConfig{APIKey: "ak-1", Model: "claude-x"}})
	if primary == nil || primary.Provider() != ProviderAnthropic || primary.Model() != "claude-x" {
		t.Fatalf("expected Anthropic primary, got %v", primary)
	}
	if fallback != nil {
		t.Fatalf("expected no fallback, got %v", fallback)
	}

	primary, fallback = SelectAdapters(config.LLMConfig{OpenAI: config.OpenAIConfig{APIKey: "   "}})
	if primary != nil || fallback != nil {
		t.Fatalf("expected no adapters for blank keys")
	}
}
