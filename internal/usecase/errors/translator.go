package errors

import (
	stdErrors "errors"
	"strings"

	apperrors "github.com/johnquangdev/meeting-analyzer/errors"
)

type keywordRule struct {
	match func(lower string) bool
	build func(message string) apperrors.AppError
}

func anyOf(keywords ...string) func(string) bool {
	return func(lower string) bool {
		for _, k := range keywords {
			if strings.Contains(lower, k) {
				return true
			}
		}
		return false
	}
}

func fixed(build func() apperrors.AppError) func(string) apperrors.AppError {
	return func(string) apperrors.AppError { return build() }
}

// Rules are checked in order, the first match wins.
var keywordRules = []keywordRule{
	{anyOf("fetch", "econnrefused", "network", "connection"), fixed(apperrors.ErrNetwork)},
	{anyOf("rate limit", "too many requests", "429"), fixed(apperrors.ErrServiceBusy)},
	{anyOf("api key", "unauthorized", "401", "authentication", "invalid key"), fixed(apperrors.ErrConfiguration)},
	{anyOf("timeout", "timed out", "504", "deadline exceeded"), fixed(apperrors.ErrTimeout)},
	{anyOf("service unavailable", "503", "both primary and fallback", "no llm api key"), fixed(apperrors.ErrServiceUnavailable)},
	{anyOf("model", "404", "not found"), fixed(apperrors.ErrConfiguration)},
	{anyOf("database", "sql", "connection pool"), fixed(apperrors.ErrDatabase)},
	{isTranscriptValidation, apperrors.ErrValidation},
	{anyOf("llm", "openai", "anthropic", "analysis failed"), fixed(apperrors.ErrAnalysis)},
}

func isTranscriptValidation(lower string) bool {
	return strings.Contains(lower, "transcript") && anyOf("too long", "empty", "invalid")(lower)
}

// Translate maps any error to the user-facing envelope. The technical cause is
// kept in AppError.Raw for logging and never shown to users.
func Translate(err error) apperrors.AppError {
	if err == nil {
		return apperrors.ErrUnknown()
	}

	var app apperrors.AppError
	if stdErrors.As(err, &app) {
		return app
	}

	var tagged *apperrors.Error
	if stdErrors.As(err, &tagged) {
		switch tagged.Kind {
		case apperrors.KindValidation:
			return apperrors.ErrValidation(tagged.Error()).WithRaw(err)
		case apperrors.KindNotFound:
			notFound := apperrors.ErrNotFound("Resource")
			notFound.Message = tagged.Error()
			return notFound.WithRaw(err)
		case apperrors.KindConfiguration:
			return apperrors.ErrConfiguration().WithRaw(err)
		case apperrors.KindUnavailable:
			return apperrors.ErrServiceUnavailable().WithRaw(err)
		case apperrors.KindStorage:
			return apperrors.ErrDatabase().WithRaw(err)
		}
	}

	return classify(err.Error()).WithRaw(err)
}

func classify(message string) apperrors.AppError {
	lower := strings.ToLower(message)
	for _, rule := range keywordRules {
		if rule.match(lower) {
			return rule.build(message)
		}
	}
	return apperrors.ErrUnknown()
}
