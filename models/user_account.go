package models

import "time"

// UserAccount represents a registered community-map account used for
// authentication and authorization. It combines identity attributes with
// credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type UserAccount struct {
	// UserID is the internal unique identifier of the account.
	UserID int64 `json:"id"`

	// Username is the unique login identifier chosen at registration.
	Username string `json:"username"`

	// Email is the address password-reset links and notifications are
	// delivered to.
	Email string `json:"email"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// PasswordHash stores the bcrypt hash of the account password.
	// This value MUST be a hash, never plaintext, and is never serialized.
	PasswordHash string `json:"-"`

	// Verified reports whether the account's email address has been
	// confirmed. Unverified accounts cannot establish a session.
	Verified bool `json:"-"`

	// Enabled reports whether the account has been approved by an
	// administrator. Disabled accounts cannot establish a session.
	Enabled bool `json:"-"`

	// LastLogin is the timestamp of the most recent successful login.
	// Nil until the account logs in for the first time.
	LastLogin *time.Time `json:"last_login,omitempty"`

	// UltimateLogin is the login timestamp prior to LastLogin, i.e. the
	// second-to-last login time.
	UltimateLogin *time.Time `json:"ultimate_login,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the UserAccount model.
func (u UserAccount) TableName() string {
	return "users"
}
