package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/datasciencemap/community-map/internal/logger"
	"github.com/datasciencemap/community-map/models"
)

// userAccountRepository is the PostgreSQL-backed implementation of
// [UserAccountRepository]. It handles account lookup and credential-related
// column updates against the "users" table. Account creation belongs to the
// registration flow and is not part of this repository.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userAccountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserAccountRepository constructs a [UserAccountRepository] backed by the
// provided database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserAccountRepository(db *DB, logger *logger.Logger) UserAccountRepository {
	logger.Debug().Msg("creating user account repository")
	return &userAccountRepository{
		db:     db,
		logger: logger,
	}
}

// FindUserByUsername retrieves the account whose username matches exactly.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userAccountRepository) FindUserByUsername(ctx context.Context, username string) (models.UserAccount, error) {
	return r.findUser(ctx, findUserByUsername, username, "*userAccountRepository.FindUserByUsername")
}

// FindUserByEmail retrieves the account registered under the given email
// address. Error handling matches [userAccountRepository.FindUserByUsername].
func (r *userAccountRepository) FindUserByEmail(ctx context.Context, email string) (models.UserAccount, error) {
	return r.findUser(ctx, findUserByEmail, email, "*userAccountRepository.FindUserByEmail")
}

// FindUserByID retrieves the account with the given id. Error handling
// matches [userAccountRepository.FindUserByUsername].
func (r *userAccountRepository) FindUserByID(ctx context.Context, userID int64) (models.UserAccount, error) {
	return r.findUser(ctx, findUserByID, userID, "*userAccountRepository.FindUserByID")
}

// findUser runs a single-row account lookup and scans the full column set.
func (r *userAccountRepository) findUser(ctx context.Context, query string, arg any, funcName string) (models.UserAccount, error) {
	log := logger.FromContext(ctx)

	var foundUser models.UserAccount
	row := r.db.QueryRowContext(ctx, query, arg)

	// find user account
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error: row is nil")
		r.logIfRetryable(err, funcName)
		return models.UserAccount{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found user account from db
	if err := row.Scan(&foundUser.UserID, &foundUser.Username, &foundUser.Email, &foundUser.Name, &foundUser.PasswordHash, &foundUser.Verified, &foundUser.Enabled, &foundUser.LastLogin, &foundUser.UltimateLogin, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserAccount{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.UserAccount{}, err
	}

	return foundUser, nil
}

// UpdateLastLogin sets the account's last_login column to loginAt.
//
// Error handling:
//   - No rows affected → [ErrNoUserWasFound].
//   - Any driver-level error → wrapped in [ErrExecutingStatement].
func (r *userAccountRepository) UpdateLastLogin(ctx context.Context, userID int64, loginAt time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateLastLogin, userID, loginAt)
	if err != nil {
		log.Err(err).Str("func", "*userAccountRepository.UpdateLastLogin").Msg("error: executing statement")
		r.logIfRetryable(err, "*userAccountRepository.UpdateLastLogin")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userAccountRepository.UpdateLastLogin").Msg("error: reading rows affected")
		return err
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// ShiftLoginDates moves last_login into ultimate_login and stores loginAt as
// the new last_login, returning the resulting ultimate_login value. A NULL
// ultimate_login (first login ever) maps to the zero [time.Time].
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userAccountRepository) ShiftLoginDates(ctx context.Context, userID int64, loginAt time.Time) (time.Time, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, shiftLoginDates, userID, loginAt)

	// shift login dates in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userAccountRepository.ShiftLoginDates").Msg("error: row is nil")
		r.logIfRetryable(err, "*userAccountRepository.ShiftLoginDates")
		return time.Time{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan resulting ultimate_login from db
	var ultimateLogin sql.NullTime
	if err := row.Scan(&ultimateLogin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userAccountRepository.ShiftLoginDates").Msg("error: scanning error")
		return time.Time{}, err
	}

	if !ultimateLogin.Valid {
		return time.Time{}, nil
	}
	return ultimateLogin.Time, nil
}

// UpdatePassword overwrites the account's password hash.
//
// Error handling:
//   - No rows affected → [ErrNoUserWasFound].
//   - Any driver-level error → wrapped in [ErrExecutingStatement].
func (r *userAccountRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updatePassword, userID, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*userAccountRepository.UpdatePassword").Msg("error: executing statement")
		r.logIfRetryable(err, "*userAccountRepository.UpdatePassword")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userAccountRepository.UpdatePassword").Msg("error: reading rows affected")
		return err
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// logIfRetryable emits a warning when the classified error is transient, so
// operators can distinguish connection blips from logic errors in the logs.
func (r *userAccountRepository) logIfRetryable(err error, funcName string) {
	if r.db.errorClassificator != nil && r.db.errorClassificator.Classify(err) == Retryable {
		r.logger.Warn().Str("func", funcName).Msg("transient database error, operation may be retried")
	}
}
