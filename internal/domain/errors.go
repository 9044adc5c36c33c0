package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrSessionExpired   = errors.New("session expired")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrKeyNotFound      = errors.New("key not found")
	ErrNoGuildSelected  = errors.New("no guild selected")
	ErrGuildNotFound    = errors.New("guild not found")
	ErrUnknownRoute     = errors.New("unknown route")
)

// AuthError is a credential rejection, validation failure or expired session.
// Message is safe to show to the user.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}

	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response. A 401 unwraps to ErrUnauthorized.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return e.Detail
}

func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	return nil
}

// DisplayMessage returns the text the user should see for err.
func DisplayMessage(err error) string {
	var authErr *AuthError
	if errors.As(err, &authErr) && authErr.Message != "" {
		return authErr.Message
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}

	if err == nil {
		return ""
	}

	return err.Error()
}
