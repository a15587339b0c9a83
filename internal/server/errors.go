package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// statusError is implemented by errors that map to a specific response code.
type statusError interface {
	error
	StatusCode() int
}

// ErrUsernameTaken is returned when registering a username that already exists.
type ErrUsernameTaken struct {
	Username string
}

func (e *ErrUsernameTaken) Error() string   { return "username already taken: " + e.Username }
func (e *ErrUsernameTaken) StatusCode() int { return http.StatusConflict }

// ErrUserNotFound carries whichever key the lookup used.
type ErrUserNotFound struct {
	UserID   uuid.UUID
	Username string
}

func (e *ErrUserNotFound) Error() string {
	key := e.Username
	if key == "" {
		key = e.UserID.String()
	}
	return "user not found: " + key
}

func (e *ErrUserNotFound) StatusCode() int { return http.StatusNotFound }

// ErrValidation is a rejected request body or parameter.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return "validation error: " + e.Message
}

func (e *ErrValidation) StatusCode() int { return http.StatusBadRequest }

// HTTPStatus maps err to a response code, defaulting to 500.
func HTTPStatus(err error) int {
	var se statusError
	if errors.As(err, &se) {
		return se.StatusCode()
	}
	return http.StatusInternalServerError
}
