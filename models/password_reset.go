package models

import "time"

// PasswordReset is a single-use, time-bounded credential-reset ticket.
//
// Expiry is a computed property of CreatedAt, not a stored flag, and single
// use is enforced by deleting the record on consumption. All timestamps are
// kept in UTC so that age computations are immune to server time zone
// changes.
type PasswordReset struct {
	// ID is the globally unique, opaque identifier of the reset (UUID).
	ID string `json:"id"`

	// UserID references the account this reset was issued for.
	UserID int64 `json:"user_id"`

	// Key is the single-use opaque token delivered in the reset link.
	// It is distinct from ID so the link never exposes the internal id.
	Key string `json:"key"`

	// CreatedAt is the creation timestamp the validity window is computed
	// from.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the PasswordReset model.
func (p PasswordReset) TableName() string {
	return "password_resets"
}

// Age returns how long ago the reset was created, relative to now.
// Both sides of the subtraction are normalised to UTC.
func (p PasswordReset) Age(now time.Time) time.Duration {
	return now.UTC().Sub(p.CreatedAt.UTC())
}

// PasswordResetFilter narrows a password-reset listing. Zero-valued fields
// are ignored.
type PasswordResetFilter struct {
	// After keeps only resets created at or after this time.
	After *time.Time

	// Before keeps only resets created strictly before this time.
	Before *time.Time

	// Limit caps the number of returned records; 0 means no limit.
	Limit uint64
}
