package core

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind tags a classified remote failure. Every outward-facing function
// of the proxy returns an *Error carrying exactly one kind, so the HTTP layer
// can map it to a status deterministically.
type ErrorKind string

const (
	ErrItemNotFound          ErrorKind = "item_not_found"
	ErrAccessDenied          ErrorKind = "access_denied"
	ErrInvalidParameter      ErrorKind = "invalid_parameter"
	ErrParameterTypeMismatch ErrorKind = "parameter_type_mismatch"
	ErrAuthenticationFailed  ErrorKind = "authentication_failed"
	ErrMissingSessionToken   ErrorKind = "missing_session_token"
	ErrMalformedResponse     ErrorKind = "malformed_response"
	ErrRemoteFault           ErrorKind = "remote_fault"
	ErrInternalServerError   ErrorKind = "internal_server_error"
	ErrEndpointNotFound      ErrorKind = "endpoint_not_found"
	ErrUnrecognized          ErrorKind = "unrecognized"
	ErrUnknown               ErrorKind = "unknown"
)

var kindStatus = map[ErrorKind]int{
	ErrItemNotFound:          http.StatusNotFound,
	ErrAccessDenied:          http.StatusForbidden,
	ErrInvalidParameter:      http.StatusBadRequest,
	ErrParameterTypeMismatch: http.StatusBadRequest,
	ErrAuthenticationFailed:  http.StatusUnauthorized,
	ErrMissingSessionToken:   http.StatusInternalServerError,
	ErrMalformedResponse:     http.StatusInternalServerError,
	ErrRemoteFault:           http.StatusBadRequest,
	ErrInternalServerError:   http.StatusInternalServerError,
	ErrEndpointNotFound:      http.StatusNotFound,
	ErrUnrecognized:          http.StatusInternalServerError,
	ErrUnknown:               http.StatusInternalServerError,
}

// Error is a classified remote failure. Code carries the vendor fault code
// when one could be extracted, otherwise it is empty.
type Error struct {
	Kind       ErrorKind `json:"kind"`
	HTTPStatus int       `json:"-"`
	Code       string    `json:"code,omitempty"`
	Message    string    `json:"message"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewError builds an Error with the canonical HTTP status for its kind.
func NewError(kind ErrorKind, message string) *Error {
	status, ok := kindStatus[kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	return &Error{Kind: kind, HTTPStatus: status, Message: message}
}

// NewErrorf is NewError with formatting.
func NewErrorf(kind ErrorKind, format string, args ...any) *Error {
	return NewError(kind, fmt.Sprintf(format, args...))
}

// AsError unwraps err to a classified *Error if one is in the chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Classified returns err unchanged when it is already classified, otherwise
// wraps it as an internal server error. Keeps the "classify once, closest to
// the failing call" discipline without leaking bare transport errors upward.
func Classified(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := AsError(err); ok {
		return e
	}
	return NewError(ErrInternalServerError, err.Error())
}
