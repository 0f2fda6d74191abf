package util

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failure so the HTTP error middleware can map it to a
// response without inspecting error strings.
type ErrorKind string

const (
	KindValidation   ErrorKind = "VALIDATION"
	KindInvalidID    ErrorKind = "INVALID_ID"
	KindDuplicateKey ErrorKind = "DUPLICATE_KEY"
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindUnauthorized ErrorKind = "UNAUTHORIZED"
	KindForbidden    ErrorKind = "FORBIDDEN"
	KindInternal     ErrorKind = "INTERNAL"
)

// DomainError standardizes application errors. Every request failure is
// either a DomainError already or gets wrapped into one at the HTTP boundary.
type DomainError struct {
	Kind       ErrorKind
	Message    string
	HTTPStatus int
	Errors     []string
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewValidationError reports one or more field-level validation failures.
func NewValidationError(fieldErrors ...string) error {
	if len(fieldErrors) == 0 {
		fieldErrors = []string{"invalid request"}
	}
	return &DomainError{
		Kind:       KindValidation,
		Message:    "Validation Error",
		HTTPStatus: http.StatusBadRequest,
		Errors:     fieldErrors,
	}
}

// NewInvalidID reports a malformed identifier in a request path or body.
// Surfaced as 404 so callers cannot distinguish a bad id from a missing row.
func NewInvalidID() error {
	return &DomainError{
		Kind:       KindInvalidID,
		Message:    "Resource not found",
		HTTPStatus: http.StatusNotFound,
		Errors:     []string{"Invalid ID format"},
	}
}

// NewDuplicateKey reports a uniqueness violation on the named field.
func NewDuplicateKey(field string) error {
	return &DomainError{
		Kind:       KindDuplicateKey,
		Message:    fmt.Sprintf("Duplicate %s", field),
		HTTPStatus: http.StatusBadRequest,
		Errors:     []string{fmt.Sprintf("%s already exists", field)},
	}
}

// NewNotFound reports a missing resource.
func NewNotFound(resource string) error {
	msg := fmt.Sprintf("%s not found", resource)
	return &DomainError{
		Kind:       KindNotFound,
		Message:    msg,
		HTTPStatus: http.StatusNotFound,
		Errors:     []string{msg},
	}
}

// NewUnauthorized produces the uniform 401 used for every authentication
// failure. The internal cause goes to the log, never to the client.
func NewUnauthorized(cause error) error {
	return &DomainError{
		Kind:       KindUnauthorized,
		Message:    "Unauthorized",
		HTTPStatus: http.StatusUnauthorized,
		Errors:     []string{"Unauthorized"},
		Err:        cause,
	}
}

// NewForbidden reports a role check failure.
func NewForbidden() error {
	return &DomainError{
		Kind:       KindForbidden,
		Message:    "Forbidden",
		HTTPStatus: http.StatusForbidden,
		Errors:     []string{"Forbidden"},
	}
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(err error) error {
	return &DomainError{
		Kind:       KindInternal,
		Message:    "Internal Server Error",
		HTTPStatus: http.StatusInternalServerError,
		Errors:     []string{"Internal Server Error"},
		Err:        err,
	}
}

// AsDomainError extracts a DomainError from err, or nil.
func AsDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}
