package types

import (
	"errors"
	"net/http"
)

type ErrorKind string

const (
	ERR_NOT_FOUND           ErrorKind = "not_found"
	ERR_CONFLICT            ErrorKind = "conflict"
	ERR_FAILED_PRECONDITION ErrorKind = "failed_precondition"
	ERR_PERMISSION_DENIED   ErrorKind = "permission_denied"
	ERR_INVALID_ARGUMENT    ErrorKind = "invalid_argument"
	ERR_UNAUTHORIZED        ErrorKind = "unauthorized"
)

// Error is the domain error returned by the common package. Handlers map
// Kind to an HTTP status instead of matching on message strings.
type Error struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func NewNotFound(message string) *Error {
	return &Error{Kind: ERR_NOT_FOUND, Message: message}
}

func NewConflict(message string) *Error {
	return &Error{Kind: ERR_CONFLICT, Message: message}
}

func NewFailedPrecondition(message string) *Error {
	return &Error{Kind: ERR_FAILED_PRECONDITION, Message: message}
}

func NewPermissionDenied(message string) *Error {
	return &Error{Kind: ERR_PERMISSION_DENIED, Message: message}
}

func NewInvalidArgument(message string) *Error {
	return &Error{Kind: ERR_INVALID_ARGUMENT, Message: message}
}

func NewUnauthorized(message string) *Error {
	return &Error{Kind: ERR_UNAUTHORIZED, Message: message}
}

func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case ERR_NOT_FOUND:
		return http.StatusNotFound
	case ERR_CONFLICT:
		return http.StatusConflict
	case ERR_FAILED_PRECONDITION:
		return http.StatusPreconditionFailed
	case ERR_PERMISSION_DENIED:
		return http.StatusForbidden
	case ERR_INVALID_ARGUMENT:
		return http.StatusBadRequest
	case ERR_UNAUTHORIZED:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// KindOf returns the ErrorKind carried by err, or "" for untyped errors.
func KindOf(err error) ErrorKind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return ""
}

// HTTPStatusOf maps any error to a transport status, falling back to 500.
func HTTPStatusOf(err error) int {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.HTTPStatus()
	}
	return http.StatusInternalServerError
}
