package errs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
)

// Database & Storage Specific Errors
var (
	ErrUniqueConstraintViolation = errors.New("unique constraint violation")
	ErrTransactionFailed         = errors.New("transaction failed")
	ErrForeignKeyConstraint      = errors.New("foreign key constraint violation")
	ErrDatabaseTimeout           = errors.New("database timeout")
)

// NewDatabaseError creates a new database error with details about the operation
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	if cause != nil {
		// Errors that already carry an API classification pass through untouched.
		var apiErr *ApiErr
		if errors.As(cause, &apiErr) {
			return apiErr
		}

		errStr := cause.Error()
		switch {
		case errors.Is(cause, gorm.ErrDuplicatedKey) || strings.Contains(errStr, "duplicate key"):
			return &ApiErr{
				StatusCode: http.StatusConflict,
				Kind:       KindConflict,
				err:        fmt.Errorf("%s already exists%w", entity, silent(ErrUniqueConstraintViolation)),
				Details:    details,
				Cause:      cause,
			}
		case errors.Is(cause, gorm.ErrForeignKeyViolated) || strings.Contains(errStr, "foreign key constraint"):
			return &ApiErr{
				StatusCode: http.StatusNotFound,
				Kind:       KindReferential,
				err:        fmt.Errorf("invalid reference in %s%w", entity, silent(ErrForeignKeyConstraint)),
				Details:    "The referenced resource does not exist or cannot be linked",
				Cause:      cause,
			}
		case errors.Is(cause, ErrNotFound) || errors.Is(cause, gorm.ErrRecordNotFound):
			return &ApiErr{
				StatusCode: http.StatusNotFound,
				Kind:       KindNotFound,
				err:        fmt.Errorf("%s not found%w", entity, silent(ErrNotFound)),
				Details:    details,
				Cause:      cause,
			}
		case errors.Is(cause, context.DeadlineExceeded):
			return &ApiErr{
				StatusCode: http.StatusGatewayTimeout,
				Kind:       KindInternal,
				err:        ErrDatabaseTimeout,
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "connection"):
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				Kind:       KindInternal,
				err:        ErrDatabaseConnection,
				Details:    "Unable to connect to database",
				Cause:      cause,
			}
		}
	}

	// Generic database error
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		Kind:       KindInternal,
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}

func NewTransactionFailedError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		Kind:       KindInternal,
		err:        ErrTransactionFailed,
		Details:    fmt.Sprintf("Transaction failed during %s", operation),
		Cause:      cause,
		Field:      "transaction",
	}
}

func IsUniqueConstraintViolationError(err error) bool {
	return errors.Is(err, ErrUniqueConstraintViolation)
}

func IsTransactionFailedError(err error) bool {
	return errors.Is(err, ErrTransactionFailed)
}

func IsForeignKeyConstraintError(err error) bool {
	return errors.Is(err, ErrForeignKeyConstraint)
}
