package ai

import (
	stdErrors "errors"
	"testing"

	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
)

func TestExtractJSON(t *testing.T) {
	cases := map[string]struct {
		in   string
		want string
	}{
		"plain":         {in: `{"a":1}`, want: `{"a":1}`},
		"json fence":    {in: "Here you go:\n```json\n{\"a\":1}\n```\nThanks", want: `{"a":1}`},
		"bare fence":    {in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		"prose wrapped": {in: "Sure! {\"a\":{\"b\":2}} hope that helps", want: `{"a":{"b":2}}`},
		"no object":     {in: "  nothing here  ", want: "nothing here"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := extractJSON(tc.in); got != tc.want {
				t.Fatalf("extractJSON(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseAnalysis_Normalizes(t *testing.T) {
	content := `{
		"actionItems": [
			{"id": "1", "description": "Send deck", "owner": "Bob", "deadline": "null"},
			{"id": "2", "description": "   ", "owner": "nobody"},
			{"id": "3", "description": "Book venue", "owner": "", "deadline": "June 1"}
		],
		"keyDecisions": [{"id": "1", "decision": "Go with vendor A", "context": "cheaper"}, {"decision": ""}],
		"sentiment": "  Positive ",
		"summary": ""
	}`

	result, err := parseAnalysis(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Title != entities.DefaultAnalysisTitle {
		t.Fatalf("expected default title, got %q", result.Title)
	}
	if result.Sentiment != entities.SentimentPositive {
		t.Fatalf("expected positive, got %q", result.Sentiment)
	}
	if result.Summary != nil {
		t.Fatalf("expected empty summary to be absent")
	}
	if len(result.ActionItems) != 2 {
		t.Fatalf("expected 2 action items, got %d", len(result.ActionItems))
	}
	first := result.ActionItems[0]
	if first.Owner == nil || *first.Owner != "Bob" || first.Deadline != nil {
		t.Fatalf("unexpected first item %+v", first)
	}
	second := result.ActionItems[1]
	if second.Owner != nil || second.Deadline == nil || *second.Deadline != "June 1" {
		t.Fatalf("unexpected second item %+v", second)
	}
	if len(result.KeyDecisions) != 1 || *result.KeyDecisions[0].Context != "cheaper" {
		t.Fatalf("unexpected decisions %+v", result.KeyDecisions)
	}
	if string(result.Raw) != content {
		t.Fatalf("raw response not preserved")
	}
}

func TestParseAnalysis_EmptyArraysAllowed(t *testing.T) {
	result, err := parseAnalysis(`{"title":"Standup","actionItems":[],"keyDecisions":[],"sentiment":"neutral"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ActionItems == nil || result.KeyDecisions == nil {
		t.Fatalf("collections must be non-nil")
	}
	if result.Title != "Standup" {
		t.Fatalf("unexpected title %q", result.Title)
	}
}

func TestParseAnalysis_Rejects(t *testing.T) {
	cases := map[string]struct {
		in   string
		want error
	}{
		"missing action items": {in: `{"keyDecisions":[],"sentiment":"neutral"}`, want: entities.ErrMissingActionItems},
		"null key decisions":   {in: `{"actionItems":[],"keyDecisions":null,"sentiment":"neutral"}`, want: entities.ErrMissingKeyDecisions},
		"missing sentiment":    {in: `{"actionItems":[],"keyDecisions":[]}`, want: entities.ErrMissingSentiment},
		"unknown sentiment":    {in: `{"actionItems":[],"keyDecisions":[],"sentiment":"ecstatic"}`, want: entities.ErrInvalidSentiment},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseAnalysis(tc.in)
			if !stdErrors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	if _, err := parseAnalysis("not json"); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
}
