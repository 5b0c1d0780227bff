// Package apierr holds the error classes every handler maps its failures to.
package apierr

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error carries a short client-facing message and the class it belongs to.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.kind
}

func NotFound(msg string) error {
	return &Error{kind: ErrNotFound, msg: msg}
}

func Validation(msg string) error {
	return &Error{kind: ErrValidation, msg: msg}
}

func Conflict(msg string) error {
	return &Error{kind: ErrConflict, msg: msg}
}

func Unauthorized(msg string) error {
	return &Error{kind: ErrUnauthorized, msg: msg}
}

func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the text safe to show to the client.
func Message(err error) string {
	status := Status(err)
	if status == http.StatusInternalServerError {
		return "internal server error"
	}
	if status == http.StatusUnauthorized {
		return "unauthorized"
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.msg
	}
	// a bare sentinel, e.g. ErrNotFound itself
	return err.Error()
}

// Write answers the request for err. Unclassified errors are logged, and
// the client only gets a generic message.
func Write(w http.ResponseWriter, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		log.Errorf("internal error: %s", err)
	}
	http.Error(w, Message(err), status)
}
