package errors

import (
	stdErrors "errors"
	"fmt"
)

// Kind discriminates failures produced at the adapter, storage and usecase
// boundaries so callers can dispatch without inspecting concrete types.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindConfiguration
	KindAdapter
	KindUnavailable
	KindStorage
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConfiguration:
		return "configuration"
	case KindAdapter:
		return "adapter"
	case KindUnavailable:
		return "unavailable"
	case KindStorage:
		return "storage"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error is a tagged error value.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message != "" {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the outermost tagged error in err's chain.
func KindOf(err error) Kind {
	var tagged *Error
	if stdErrors.As(err, &tagged) {
		return tagged.Kind
	}
	return KindUnknown
}

// Validation reports malformed user input. The message is shown to users verbatim.
func Validation(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

// Configuration reports missing or invalid operator configuration.
func Configuration(message string) error {
	return &Error{Kind: KindConfiguration, Message: message}
}

// Adapter wraps a provider failure as "<provider> analysis failed: <cause>".
func Adapter(provider string, cause error) error {
	return &Error{Kind: KindAdapter, Message: provider + " analysis failed", Err: cause}
}

// Unavailable reports that no provider could serve the request.
func Unavailable(message string, cause error) error {
	return &Error{Kind: KindUnavailable, Message: message, Err: cause}
}

// Storage wraps a persistence failure for the named operation.
func Storage(op string, cause error) error {
	return &Error{Kind: KindStorage, Message: "database " + op + " failed", Err: cause}
}

// NotFound reports a missing resource.
func NotFound(resource string) error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}
