package service

import (
	"context"

	"github.com/datasciencemap/community-map/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_service.go -package=mock

// SessionService owns the authentication lifecycle: credential verification,
// session establishment and teardown, token resolution, and the login-date
// bookkeeping performed on each successful login.
type SessionService interface {
	// Login verifies the username/password pair against the credential
	// store, checks the account gates, and records the login time.
	//
	// Returns the matched account or:
	//   - ErrInvalidCredentials for an unknown username or wrong password.
	//   - ErrEmailNotVerified when the account email is unverified.
	//   - ErrAccountNotApproved when the account awaits approval.
	Login(ctx context.Context, username, password string) (models.UserAccount, error)

	// OpenSession establishes a fresh session for the given account and
	// returns it together with the signed token to place in the cookie.
	// When prevSessionID is non-empty the previous session row is destroyed
	// first, so the pre-authentication identifier can never be replayed.
	OpenSession(ctx context.Context, prevSessionID string, userID int64) (models.Session, models.Token, error)

	// ResolveToken validates a raw cookie token and loads the session it
	// references. Any failure — bad signature, expiry, wrong issuer, or a
	// destroyed session — is normalised to ErrNotAuthenticated.
	ResolveToken(ctx context.Context, tokenString string) (models.Session, error)

	// CloseSession destroys a session. Closing an already destroyed
	// session is not an error; logout stays idempotent.
	CloseSession(ctx context.Context, sessionID string) error

	// UpdateLoginDates shifts the account's previous last-login timestamp
	// into the penultimate slot and records the current login time,
	// returning the account with both fields updated. One call performs
	// exactly one shift.
	UpdateLoginDates(ctx context.Context, account models.UserAccount) (models.UserAccount, error)
}

// PasswordResetService owns the credential-reset lifecycle: issuing
// single-use reset tickets, validating them against the expiry window,
// consuming them to set a new password, and administrative listing/purging.
type PasswordResetService interface {
	// Request issues a reset for the account matching username (first) or
	// email (fallback) and dispatches the reset link. An unknown account
	// is a silent no-op so the operation never discloses which accounts
	// exist. Any outstanding resets for the account are destroyed first.
	Request(ctx context.Context, username, email string) error

	// Get retrieves a reset by id.
	// Returns ErrPasswordResetNotFound for an unknown id.
	Get(ctx context.Context, id string) (models.PasswordReset, error)

	// GetByKey retrieves a reset by its single-use key.
	// Returns ErrPasswordResetNotFound for an unknown key.
	GetByKey(ctx context.Context, key string) (models.PasswordReset, error)

	// ValidateAndFetch retrieves a reset by id and checks it against the
	// validity window. Returns ErrPasswordResetExpired when the reset is
	// older than the window.
	ValidateAndFetch(ctx context.Context, id string) (models.PasswordReset, error)

	// Consume sets a new password for the account the reset belongs to,
	// destroys every outstanding reset for that account, and dispatches
	// the password-changed notice. The expiry window is re-checked at
	// consumption time.
	Consume(ctx context.Context, id, newPassword string) (models.UserAccount, error)

	// Delete destroys a reset by id and returns the destroyed record.
	// Returns ErrPasswordResetNotFound for an unknown id.
	Delete(ctx context.Context, id string) (models.PasswordReset, error)

	// List returns resets newest-first, narrowed by filter.
	List(ctx context.Context, filter models.PasswordResetFilter) ([]models.PasswordReset, error)

	// PurgeExpired destroys every reset older than the validity window and
	// reports how many were removed. Invoked periodically by the purge
	// worker.
	PurgeExpired(ctx context.Context) (int64, error)
}

// Notifier dispatches account-lifecycle mail. Implementations decide the
// transport; a disabled notifier logs instead of sending.
type Notifier interface {
	// SendPasswordResetLink delivers the reset link for the given ticket to
	// the account's email address.
	SendPasswordResetLink(ctx context.Context, account models.UserAccount, reset models.PasswordReset) error

	// SendPasswordChanged notifies the account that its password was
	// changed through the reset flow.
	SendPasswordChanged(ctx context.Context, account models.UserAccount) error
}
