package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies every error the API can answer with. The set is closed:
// the responder switches over it exhaustively.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindReferential
	KindUnsupportedValue
	KindNotFound
	KindConflict
	KindImmutable
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation_error"
	case KindReferential:
		return "referential_error"
	case KindUnsupportedValue:
		return "unsupported_value"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindImmutable:
		return "immutable_field"
	case KindMalformed:
		return "malformed_request"
	case KindInternal:
		return "error"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

type ApiErr struct {
	StatusCode int
	Kind       Kind
	err        error
	Details    string   // Additional details about the error
	Field      string   // Field that caused the error (for validation errors)
	Keys       []string // Accepted keys, so the caller can correct the payload
	Options    []string // Accepted values, so the caller can correct the payload
	Cause      error    // The underlying cause of the error
}

// implements error interface. this allows us to pass an instance of ApiErr as an argument of type `error`
func (e *ApiErr) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.err.Error(), e.Details)
	}
	return e.err.Error()
}

// Message is the client-facing message, without details.
func (e *ApiErr) Message() string {
	return e.err.Error()
}

// GetFullError returns a recursive error message including all causes
func (e *ApiErr) GetFullError() string {
	msg := e.Error()
	if e.Cause != nil {
		var apiErr *ApiErr
		if errors.As(e.Cause, &apiErr) {
			msg = fmt.Sprintf("%s -> %s", msg, apiErr.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

// this function allows us to do the following:
// err := &ApiErr{StatusCode: ..., err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *ApiErr) Unwrap() error {
	return e.err
}

func NewInternalErrorWithCause(message string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		Kind:       KindInternal,
		err:        errors.New(message),
		Cause:      cause,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// KindOf reports the kind of err, KindInternal for anything that is not an *ApiErr.
func KindOf(err error) Kind {
	var apiErr *ApiErr
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindInternal
}

// silentErr wraps a sentinel so that it is matched by errors.Is but does not
// show up in the formatted message.
type silentErr struct{ err error }

func (s silentErr) Error() string { return "" }
func (s silentErr) Unwrap() error { return s.err }

func silent(err error) error { return silentErr{err} }
