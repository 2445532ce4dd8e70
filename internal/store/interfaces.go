package store

import (
	"context"
	"time"

	"github.com/datasciencemap/community-map/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// UserAccountRepository is the data-access contract for the credential store
// (the users table). Accounts are created by the registration flow, which is
// outside this service; the session and password-reset lifecycles only look
// accounts up and mutate credential-related columns.
type UserAccountRepository interface {
	// FindUserByUsername retrieves the account whose username matches
	// exactly. Returns ErrNoUserWasFound if no such account exists.
	FindUserByUsername(ctx context.Context, username string) (models.UserAccount, error)

	// FindUserByEmail retrieves the account registered under the given
	// email address. Returns ErrNoUserWasFound if no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.UserAccount, error)

	// FindUserByID retrieves the account with the given id.
	// Returns ErrNoUserWasFound if no such account exists.
	FindUserByID(ctx context.Context, userID int64) (models.UserAccount, error)

	// UpdateLastLogin sets the account's last_login column to loginAt.
	UpdateLastLogin(ctx context.Context, userID int64, loginAt time.Time) error

	// ShiftLoginDates moves last_login into ultimate_login and stores
	// loginAt as the new last_login, returning the resulting
	// ultimate_login value.
	ShiftLoginDates(ctx context.Context, userID int64, loginAt time.Time) (time.Time, error)

	// UpdatePassword overwrites the account's password hash.
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// SessionRepository is the data-access contract for the server-side session
// store (the sessions table).
type SessionRepository interface {
	// CreateSession persists a new session row and returns it with the
	// server-assigned creation timestamp.
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)

	// FindSessionByID retrieves a session by its opaque id.
	// Returns ErrSessionNotFound if no such session exists.
	FindSessionByID(ctx context.Context, sessionID string) (models.Session, error)

	// DeleteSession removes a session row. Deleting a session that does
	// not exist is not an error; logout must stay idempotent.
	DeleteSession(ctx context.Context, sessionID string) error
}

// PasswordResetRepository is the data-access contract for the password-reset
// store (the password_resets table).
type PasswordResetRepository interface {
	// CreatePasswordReset persists a new reset row and returns it with the
	// server-assigned creation timestamp.
	CreatePasswordReset(ctx context.Context, reset models.PasswordReset) (models.PasswordReset, error)

	// FindPasswordResetByID retrieves a reset by its id.
	// Returns ErrPasswordResetNotFound if no such reset exists.
	FindPasswordResetByID(ctx context.Context, id string) (models.PasswordReset, error)

	// FindPasswordResetByKey retrieves a reset by its single-use key.
	// Returns ErrPasswordResetNotFound if no such reset exists.
	FindPasswordResetByKey(ctx context.Context, key string) (models.PasswordReset, error)

	// ListPasswordResets returns resets newest-first, narrowed by filter.
	ListPasswordResets(ctx context.Context, filter models.PasswordResetFilter) ([]models.PasswordReset, error)

	// DeletePasswordReset removes a reset row and returns the deleted
	// record. Returns ErrPasswordResetNotFound if no such reset exists.
	DeletePasswordReset(ctx context.Context, id string) (models.PasswordReset, error)

	// DeletePasswordResetsByUser removes every reset issued for the given
	// account, returning the number of rows removed.
	DeletePasswordResetsByUser(ctx context.Context, userID int64) (int64, error)

	// DeletePasswordResetsCreatedBefore removes every reset created before
	// the cutoff, returning the number of rows removed. Used by the purge
	// worker.
	DeletePasswordResetsCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// ErrorClassificator groups database errors into retryable and
// non-retryable classes so callers can log transient failures distinctly.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
