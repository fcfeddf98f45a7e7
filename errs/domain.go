package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Domain errors raised by validation and the existence gates.
var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrNoUpdatableField     = errors.New("no updatable field")
	ErrInvalidField         = errors.New("invalid field")
	ErrReferenceNotFound    = errors.New("referenced entity not found")
	ErrUnsupportedValue     = errors.New("unsupported value")
	ErrImmutableField       = errors.New("immutable field")
	ErrAlreadyExists        = errors.New("already exists")
)

// NewValidationError reports that the payload lacks one of the required keys.
func NewValidationError(requiredKeys []string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		Kind:       KindValidation,
		err:        fmt.Errorf("Required keys are: %s%w", strings.Join(requiredKeys, ", "), silent(ErrMissingRequiredField)),
		Keys:       requiredKeys,
	}
}

// NewRequiredFieldError reports a single missing key with its own message.
func NewRequiredFieldError(field, message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		Kind:       KindValidation,
		err:        fmt.Errorf("%s%w", message, silent(ErrMissingRequiredField)),
		Field:      field,
		Keys:       []string{field},
	}
}

// NewNoUpdatableFieldError reports a partial update carrying none of the updatable keys.
func NewNoUpdatableFieldError(keys []string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		Kind:       KindValidation,
		err:        fmt.Errorf("At least one of those keys must be send.%w", silent(ErrNoUpdatableField)),
		Keys:       keys,
	}
}

func NewInvalidFieldError(fieldName string, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		Kind:       KindValidation,
		err:        fmt.Errorf("Invalid field %s: %s%w", fieldName, reason, silent(ErrInvalidField)),
		Field:      fieldName,
	}
}

// NewReferentialError reports a write whose parent entity does not exist.
func NewReferentialError(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		Kind:       KindReferential,
		err:        fmt.Errorf("%s not found.%w", entity, silent(ErrReferenceNotFound)),
	}
}

// NewUnsupportedValueError reports a value outside a closed catalog.
func NewUnsupportedValueError(message, field string, options []string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		Kind:       KindUnsupportedValue,
		err:        fmt.Errorf("%s%w", message, silent(ErrUnsupportedValue)),
		Field:      field,
		Options:    options,
	}
}

func NewImmutableFieldError(field string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		Kind:       KindImmutable,
		err:        fmt.Errorf("%s is not editable.%w", capitalize(field), silent(ErrImmutableField)),
		Field:      field,
	}
}

// NewEntityNotFoundError is the existence-gate miss: "<Entity> not found."
func NewEntityNotFoundError(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		Kind:       KindNotFound,
		err:        fmt.Errorf("%s not found.%w", entity, silent(ErrNotFound)),
	}
}

// NewNotLinkedError reports a technology missing from a project. The route
// contract answers it with 400 even though it is a lookup miss.
func NewNotLinkedError(message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		Kind:       KindNotFound,
		err:        fmt.Errorf("%s%w", message, silent(ErrNotFound)),
	}
}

func NewAlreadyExistsError(message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		Kind:       KindConflict,
		err:        fmt.Errorf("%s%w", message, silent(ErrAlreadyExists)),
	}
}

func IsMissingRequiredFieldError(err error) bool {
	return errors.Is(err, ErrMissingRequiredField)
}

func IsNoUpdatableFieldError(err error) bool {
	return errors.Is(err, ErrNoUpdatableField)
}

func IsInvalidFieldError(err error) bool {
	return errors.Is(err, ErrInvalidField)
}

func IsReferentialError(err error) bool {
	return errors.Is(err, ErrReferenceNotFound)
}

func IsUnsupportedValueError(err error) bool {
	return errors.Is(err, ErrUnsupportedValue)
}

func IsImmutableFieldError(err error) bool {
	return errors.Is(err, ErrImmutableField)
}

func IsAlreadyExistsError(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
