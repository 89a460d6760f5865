package ai

import (
	"net/http"
	"strings"

	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

// SelectAdapters builds the primary and fallback adapters from configured credentials.
// OpenAI is preferred over Anthropic; the fallback is always the other vendor.
// Either return value may be nil.
func SelectAdapters(cfg config.LLMConfig) (primary, fallback Adapter) {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	var configured []Adapter
	if strings.TrimSpace(cfg.OpenAI.APIKey) != "" {
		configured = append(configured, NewOpenAIAdapter(cfg.OpenAI, httpClient))
	}
	if strings.TrimSpace(cfg.Anthropic.APIKey) != "" {
		configured = append(configured, NewAnthropicAdapter(cfg.Anthropic, httpClient))
	}

	if len(configured) > 0 {
		primary = configured[0]
	}
	if len(configured) > 1 {
		fallback = configured[1]
	}
	return primary, fallback
}
