package analysis

import (
	"strings"
	"unicode/utf8"
)

const (
	minTranscriptChars = 10
	maxCodeLikeChars   = 200
)

// ValidationResult tells whether text looks like a meeting transcript
type ValidationResult struct {
	Valid  bool
	Reason string
}

var webPrefixes = []string{"www.", "http", "https", "localhost", ".com", ".org"}

// ValidateTranscript rejects input that is clearly not a meeting transcript.
// Checks run in order and the first failing one wins.
func ValidateTranscript(text string) ValidationResult {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	if utf8.RuneCountInString(trimmed) < minTranscriptChars {
		return ValidationResult{Reason: "Transcript is too short to analyze"}
	}

	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return ValidationResult{Reason: "The input appears to be a URL, not a meeting transcript"}
	}

	if !strings.Contains(trimmed, "\n") {
		for _, prefix := range webPrefixes {
			if strings.HasPrefix(lower, prefix) {
				return ValidationResult{Reason: "The input appears to be a URL or web address, not a meeting transcript"}
			}
		}
	}

	if utf8.RuneCountInString(trimmed) < maxCodeLikeChars &&
		(strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")) {
		return ValidationResult{Reason: "The input appears to be JSON or code, not a meeting transcript"}
	}

	return ValidationResult{Valid: true}
}
