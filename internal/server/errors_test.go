package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"taken", &ErrUsernameTaken{Username: "alice"}, http.StatusConflict},
		{"not found", &ErrUserNotFound{UserID: uuid.New()}, http.StatusNotFound},
		{"validation", &ErrValidation{Field: "password", Message: "too short"}, http.StatusBadRequest},
		{"wrapped", fmt.Errorf("register: %w", &ErrUsernameTaken{Username: "bob"}), http.StatusConflict},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "username already taken: alice", (&ErrUsernameTaken{Username: "alice"}).Error())
	assert.Equal(t, "user not found: bob", (&ErrUserNotFound{Username: "bob"}).Error())
	assert.Equal(t, "validation error: body - invalid JSON", (&ErrValidation{Field: "body", Message: "invalid JSON"}).Error())
	assert.Equal(t, "validation error: bad", (&ErrValidation{Message: "bad"}).Error())
}
