// Package apperr carries the HTTP-facing error taxonomy. Services return these
// instead of raw driver or library errors so handlers never leak internals.
package apperr

import (
	"errors"
	"net/http"
)

// Error pairs a transport status with a user-visible message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// New builds an error with an explicit status.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error    { return New(http.StatusBadRequest, message) }
func Unauthorized(message string) *Error  { return New(http.StatusUnauthorized, message) }
func Forbidden(message string) *Error     { return New(http.StatusForbidden, message) }
func NotFound(message string) *Error      { return New(http.StatusNotFound, message) }
func Conflict(message string) *Error      { return New(http.StatusConflict, message) }
func Unprocessable(message string) *Error { return New(http.StatusUnprocessableEntity, message) }
func Internal(message string) *Error      { return New(http.StatusInternalServerError, message) }

// Status extracts the transport status from err, defaulting to 500.
func Status(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return http.StatusInternalServerError
}

// Message extracts the user-visible message. Unexpected errors collapse to the
// fallback so raw driver detail never reaches a caller.
func Message(err error, fallback string) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return fallback
}
