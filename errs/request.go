package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Request & Input-Validation Errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMaxBodySizeExceeded  = errors.New("max body size exceeded")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrInvalidPathParam     = errors.New("invalid path parameter")
)

func NewUnsupportedMediaTypeError(contentType string, allowedTypes []string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnsupportedMediaType,
		Kind:       KindMalformed,
		err:        ErrUnsupportedMediaType,
		Details:    fmt.Sprintf("Unsupported media type: %s. Allowed types: %v", contentType, allowedTypes),
		Field:      "content_type",
		Options:    allowedTypes,
	}
}

func NewMaxBodySizeExceededError(maxSize int64) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusRequestEntityTooLarge,
		Kind:       KindMalformed,
		err:        ErrMaxBodySizeExceeded,
		Details:    fmt.Sprintf("Request body size exceeded maximum allowed size of %d bytes", maxSize),
		Field:      "body_size",
	}
}

func NewInvalidJSONError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		Kind:       KindMalformed,
		err:        ErrInvalidJSON,
		Details:    "Invalid JSON format",
		Cause:      cause,
		Field:      "json",
	}
}

// NewInvalidPathParamError reports a path identifier that cannot name a row.
func NewInvalidPathParamError(entity string, value string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		Kind:       KindMalformed,
		err:        fmt.Errorf("invalid %s id%w", entity, silent(ErrInvalidPathParam)),
		Details:    fmt.Sprintf("%q is not a valid identifier", value),
		Field:      "id",
	}
}

func IsUnsupportedMediaTypeError(err error) bool {
	return errors.Is(err, ErrUnsupportedMediaType)
}

func IsMaxBodySizeExceededError(err error) bool {
	return errors.Is(err, ErrMaxBodySizeExceeded)
}

func IsInvalidJSONError(err error) bool {
	return errors.Is(err, ErrInvalidJSON)
}

func IsInvalidPathParamError(err error) bool {
	return errors.Is(err, ErrInvalidPathParam)
}
