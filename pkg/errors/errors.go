package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness. For failures of
// the remote announcement backend, Status holds the upstream status code.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrNotFound   = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrValidation = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrConflict   = New("CONFLICT", http.StatusConflict, "conflict")
	ErrRemote     = New("REMOTE_ERROR", http.StatusBadGateway, "announcement backend request failed")
	ErrRemoteDown = New("REMOTE_UNREACHABLE", http.StatusBadGateway, "announcement backend unreachable")
	ErrInternal   = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// Remote wraps a failure of the announcement backend, keeping the upstream
// status code so notices can be keyed to it.
func Remote(err error, status int, operation string) *Error {
	if status <= 0 {
		return Wrap(err, ErrRemoteDown.Code, ErrRemoteDown.Status, fmt.Sprintf("%s failed", operation))
	}
	return Wrap(err, ErrRemote.Code, status, fmt.Sprintf("%s failed with status %d", operation, status))
}

// StatusOf extracts the HTTP status carried by the error, 0 when absent.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// MessageKey derives the translation key the portal shows for a failed
// announcement operation, e.g. EXCEPTIONS.HTTP_STATUS_404.ANNOUNCEMENTS.
// A generic key is returned when no upstream status is known.
func MessageKey(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Code == ErrRemoteDown.Code {
		return "EXCEPTIONS.HTTP_STATUS_UNKNOWN.ANNOUNCEMENTS"
	}
	status := StatusOf(err)
	if status <= 0 {
		return "EXCEPTIONS.HTTP_STATUS_UNKNOWN.ANNOUNCEMENTS"
	}
	return fmt.Sprintf("EXCEPTIONS.HTTP_STATUS_%d.ANNOUNCEMENTS", status)
}
