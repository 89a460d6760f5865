package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/johnquangdev/meeting-analyzer/errors"
	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

func newAnthropicTestServer(t *testing.T, status int, body interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/messages" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "test-key" {
			t.Fatalf("missing api key header")
		}
		if r.Header.Get("anthropic-version") != anthropicVersion {
			t.Fatalf("missing version header")
		}

		var req anthropicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if req.MaxTokens != defaultMaxTokens || req.System == "" || req.Temperature != temperature {
			t.Fatalf("unexpected request %+v", req)
		}
		if len(req.Messages) != 1 || !strings.HasPrefix(req.Messages[0].Content, "Analyze this meeting transcript:\n\n") {
			t.Fatalf("unexpected messages %+v", req.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
}

func textReply(text string) map[string]interface{} {
	return map[string]interface{}{
		"content": []map[string]string{{"type": "text", "text": text}},
	}
}

func TestAnthropicAdapter_FencedReply(t *testing.T) {
	ts := newAnthropicTestServer(t, http.StatusOK, textReply("Here is the analysis:\n```json\n"+validAnalysisJSON+"\n```"))
	defer ts.Close()

	adapter := NewAnthropicAdapter(config.AnthropicConfig{APIKey: "test-key", BaseURL: ts.URL}, ts.Client())
	result, err := adapter.AnalyzeTranscript(context.Background(), "Ann: we need to cut travel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Sentiment != entities.SentimentNeutral {
		t.Fatalf("unexpected sentiment %q", result.Sentiment)
	}
	if len(result.KeyDecisions) != 1 || result.KeyDecisions[0].Decision != "Cut travel" {
		t.Fatalf("unexpected decisions %+v", result.KeyDecisions)
	}
}

func TestAnthropicAdapter_VendorError(t *testing.T) {
	ts := newAnthropicTestServer(t, http.StatusUnauthorized, map[string]interface{}{
		"type":  "error",
		"error": map[string]string{"type": "authentication_error", "message": "invalid x-api-key"},
	})
	defer ts.Close()

	adapter := NewAnthropicAdapter(config.AnthropicConfig{APIKey: "test-key", BaseURL: ts.URL}, ts.Client())
	_, err := adapter.AnalyzeTranscript(context.Background(), "hello there team")
	if apperrors.KindOf(err) != apperrors.KindAdapter {
		t.Fatalf("expected adapter error, got %v", err)
	}
	want := "Anthropic analysis failed: status 401: invalid x-api-key"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestAnthropicAdapter_NonTextContent(t *testing.T) {
	ts := newAnthropicTestServer(t, http.StatusOK, map[string]interface{}{
		"content": []map[string]string{{"type": "tool_use"}},
	})
	defer ts.Close()

	adapter := NewAnthropicAdapter(config.AnthropicConfig{APIKey: "test-key", BaseURL: ts.URL}, ts.Client())
	_, err := adapter.AnalyzeTranscript(context.Background(), "hello there team")
	if err == nil || !strings.Contains(err.Error(), "unexpected response type") {
		t.Fatalf("unexpected error %v", err)
	}
}
