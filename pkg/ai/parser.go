package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
)

// analysisPayload is the JSON document both providers are asked to return
type analysisPayload struct {
	Title        string `json:"title"`
	ActionItems  []struct {
		Description string  `json:"description"`
		Owner       *string `json:"owner"`
		Deadline    *string `json:"deadline"`
	} `json:"actionItems"`
	KeyDecisions []struct {
		Decision string  `json:"decision"`
		Context  *string `json:"context"`
	} `json:"keyDecisions"`
	Sentiment string  `json:"sentiment"`
	Summary   *string `json:"summary"`
}

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*\\})\\s*```")

// extractJSON pulls the JSON object out of free-form model text.
// A fenced block wins, otherwise the outermost {...} span is used.
func extractJSON(content string) string {
	if m := fencedJSON.FindStringSubmatch(content); m != nil {
		return m[1]
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start != -1 && end > start {
		return content[start : end+1]
	}
	return strings.TrimSpace(content)
}

// parseAnalysis validates the provider JSON and normalizes it into a MeetingAnalysis
func parseAnalysis(content string) (*entities.MeetingAnalysis, error) {
	var payload analysisPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	// an empty array is fine, null or absent is not
	if payload.ActionItems == nil {
		return nil, entities.ErrMissingActionItems
	}
	if payload.KeyDecisions == nil {
		return nil, entities.ErrMissingKeyDecisions
	}
	if strings.TrimSpace(payload.Sentiment) == "" {
		return nil, entities.ErrMissingSentiment
	}

	sentiment, ok := entities.ParseSentiment(payload.Sentiment)
	if !ok {
		return nil, fmt.Errorf("%w: %q", entities.ErrInvalidSentiment, payload.Sentiment)
	}

	result := &entities.MeetingAnalysis{
		Title:        strings.TrimSpace(payload.Title),
		Sentiment:    sentiment,
		Summary:      optional(payload.Summary),
		ActionItems:  make([]entities.ExtractedActionItem, 0, len(payload.ActionItems)),
		KeyDecisions: make([]entities.ExtractedDecision, 0, len(payload.KeyDecisions)),
		Raw:          []byte(content),
	}
	if result.Title == "" {
		result.Title = entities.DefaultAnalysisTitle
	}

	for _, item := range payload.ActionItems {
		description := strings.TrimSpace(item.Description)
		if description == "" {
			continue
		}
		result.ActionItems = append(result.ActionItems, entities.ExtractedActionItem{
			Description: description,
			Owner:       optional(item.Owner),
			Deadline:    optional(item.Deadline),
		})
	}

	for _, d := range payload.KeyDecisions {
		decision := strings.TrimSpace(d.Decision)
		if decision == "" {
			continue
		}
		result.KeyDecisions = append(result.KeyDecisions, entities.ExtractedDecision{
			Decision: decision,
			Context:  optional(d.Context),
		})
	}

	return result, nil
}

// optional maps empty strings and the literal "null" to absent
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" || strings.EqualFold(v, "null") {
		return nil
	}
	return &v
}
