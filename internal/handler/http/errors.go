package http

import "errors"

var (
	// ErrMissingSessionCookie is returned when a request to a protected
	// route carries no session cookie.
	ErrMissingSessionCookie = errors.New("session cookie is missing")

	// ErrEmptySessionToken is returned when the session cookie is present
	// but holds no token.
	ErrEmptySessionToken = errors.New("session token is empty")
)
