package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrMissingUsername = errors.New("username is required")
	ErrMissingPassword = errors.New("password is required")
	ErrPasswordTooWeak = errors.New("password is too short")
	ErrMissingEmail    = errors.New("email is required")
	ErrInvalidEmail    = errors.New("email is not a valid address")

	ErrMissingAccountIdentifier = errors.New("username or email is required")
)
