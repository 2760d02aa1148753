package serrors

import (
	"errors"
	"fmt"
)

// Stable error codes surfaced to API clients. Raw backend errors never
// cross the HTTP boundary; they are translated into one of these.
const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeUnauthenticated     = "UNAUTHENTICATED"
	CodeForbidden           = "FORBIDDEN"
	CodeProviderUnavailable = "AUTH_PROVIDER_UNAVAILABLE"
	CodeNotFound            = "NOT_FOUND"
	CodeConflict            = "CONFLICT"
	CodeFKTargetMissing     = "RELATED_RECORD_MISSING"
	CodeLimitExceeded       = "LIMIT_EXCEEDED"
	CodeTransient           = "TRANSIENT_BACKEND_ERROR"
	CodeInternal            = "INTERNAL_SERVER_ERROR"
)

type BaseError struct {
	Code    string
	Message string
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code, message string) *BaseError {
	return &BaseError{Code: code, Message: message}
}

func NewNotFound(entity string) *BaseError {
	return &BaseError{Code: CodeNotFound, Message: entity + " not found"}
}

func NewConflict(message string) *BaseError {
	return &BaseError{Code: CodeConflict, Message: message}
}

func NewLimitExceeded(message string) *BaseError {
	return &BaseError{Code: CodeLimitExceeded, Message: message}
}

func NewTransient(message string) *BaseError {
	return &BaseError{Code: CodeTransient, Message: message}
}

// ValidationErrors maps a field name to the violated constraint. All
// violations are collected; a payload is never partially accepted.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(v))
}

// AsBase unwraps err to a *BaseError if one is in the chain.
func AsBase(err error) (*BaseError, bool) {
	var base *BaseError
	if errors.As(err, &base) {
		return base, true
	}
	return nil, false
}

// HasCode reports whether err carries the given stable code.
func HasCode(err error, code string) bool {
	base, ok := AsBase(err)
	return ok && base.Code == code
}
