package service

import "errors"

// Client-facing failure conditions. The message texts are part of the API
// contract: handlers write them verbatim into JSON error responses, so they
// keep their sentence form instead of the usual lowercase error style.
var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. The two cases share one message so a caller cannot probe
	// which usernames exist.
	ErrInvalidCredentials = errors.New("Incorrect username or password.")

	// ErrEmailNotVerified is returned when the account exists and the
	// password matches, but the email address was never verified.
	ErrEmailNotVerified = errors.New("User email has not been verified.")

	// ErrAccountNotApproved is returned when the account exists, the
	// password matches and the email is verified, but an administrator has
	// not approved the account yet.
	ErrAccountNotApproved = errors.New("User has not been approved.")

	// ErrPasswordResetNotFound is returned for lookups of an unknown reset
	// id or key. One message for both paths keeps id and key unguessable.
	ErrPasswordResetNotFound = errors.New("Password reset not found.")

	// ErrPasswordResetExpired is returned when a reset exists but its age
	// exceeds the configured validity window.
	ErrPasswordResetExpired = errors.New("Password reset expired.")
)

// Internal failure conditions, never shown to clients verbatim.
var (
	// ErrNotAuthenticated is returned when a request carries no session
	// cookie, an invalid token, or a token referencing a destroyed session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidDataProvided is returned when a service method receives
	// empty or malformed input before any storage call is made.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrTokenCreationFailed wraps JWT signing failures during session
	// establishment.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
