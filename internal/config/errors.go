package config

import "errors"

// Validation errors returned by [StructuredConfig.validate]. Callers can
// match against them with [errors.Is].
var (
	// ErrInvalidStorageConfigs is returned when the database DSN is missing.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: database DSN is required")

	// ErrInvalidServerConfigs is returned when the HTTP listen address is
	// missing.
	ErrInvalidServerConfigs = errors.New("invalid server configs: HTTP address is required")

	// ErrInvalidAppConfigs is returned when the session token signing key is
	// missing.
	ErrInvalidAppConfigs = errors.New("invalid app configs: token sign key is required")

	// ErrInvalidMailConfigs is returned when mail delivery is enabled but
	// the SMTP settings are incomplete.
	ErrInvalidMailConfigs = errors.New("invalid mail configs: SMTP host, port and from address are required when mail is enabled")
)
