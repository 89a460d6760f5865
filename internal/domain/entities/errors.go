package entities

import "errors"

// Domain errors
var (
	ErrInvalidSentiment    = errors.New("invalid sentiment")
	ErrMissingActionItems  = errors.New("missing actionItems")
	ErrMissingKeyDecisions = errors.New("missing keyDecisions")
	ErrMissingSentiment    = errors.New("missing sentiment")
)
