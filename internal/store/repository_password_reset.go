package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/datasciencemap/community-map/internal/logger"
	"github.com/datasciencemap/community-map/models"
	"github.com/jackc/pgerrcode"
)

// passwordResetRepository is the PostgreSQL-backed implementation of
// [PasswordResetRepository]. It manages single-use reset records in the
// "password_resets" table.
type passwordResetRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPasswordResetRepository constructs a [PasswordResetRepository] backed by
// the provided database connection and logger.
func NewPasswordResetRepository(db *DB, logger *logger.Logger) PasswordResetRepository {
	logger.Debug().Msg("creating password reset repository")
	return &passwordResetRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePasswordReset persists a new reset row and returns it with the
// server-assigned creation timestamp.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrPasswordResetAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *passwordResetRepository) CreatePasswordReset(ctx context.Context, reset models.PasswordReset) (models.PasswordReset, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createPasswordReset, reset.ID, reset.UserID, reset.Key)

	// create password reset in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.CreatePasswordReset").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.PasswordReset{}, ErrPasswordResetAlreadyExists
		default:
			return models.PasswordReset{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved password reset from db
	if err := row.Scan(&reset.ID, &reset.UserID, &reset.Key, &reset.CreatedAt); err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.CreatePasswordReset").Msg("error: scanning error")
		return models.PasswordReset{}, err
	}

	return reset, nil
}

// FindPasswordResetByID retrieves a reset by its id.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrPasswordResetNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *passwordResetRepository) FindPasswordResetByID(ctx context.Context, id string) (models.PasswordReset, error) {
	return r.findPasswordReset(ctx, findPasswordResetByID, id, "*passwordResetRepository.FindPasswordResetByID")
}

// FindPasswordResetByKey retrieves a reset by its single-use key. Error
// handling matches [passwordResetRepository.FindPasswordResetByID]: an
// unknown key yields the same [ErrPasswordResetNotFound] as an unknown id.
func (r *passwordResetRepository) FindPasswordResetByKey(ctx context.Context, key string) (models.PasswordReset, error) {
	return r.findPasswordReset(ctx, findPasswordResetByKey, key, "*passwordResetRepository.FindPasswordResetByKey")
}

// findPasswordReset runs a single-row reset lookup by the given argument.
func (r *passwordResetRepository) findPasswordReset(ctx context.Context, query string, arg any, funcName string) (models.PasswordReset, error) {
	log := logger.FromContext(ctx)

	var foundReset models.PasswordReset
	row := r.db.QueryRowContext(ctx, query, arg)

	// find password reset
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error: row is nil")
		return models.PasswordReset{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found password reset from db
	if err := row.Scan(&foundReset.ID, &foundReset.UserID, &foundReset.Key, &foundReset.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PasswordReset{}, ErrPasswordResetNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.PasswordReset{}, err
	}

	return foundReset, nil
}

// ListPasswordResets returns resets newest-first, narrowed by filter. The
// query is assembled with squirrel so the optional date bounds and limit
// combine without hand-numbered placeholders.
func (r *passwordResetRepository) ListPasswordResets(ctx context.Context, filter models.PasswordResetFilter) ([]models.PasswordReset, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("id", "user_id", "reset_key", "created_at").
		From(models.PasswordReset{}.TableName()).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.After != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *filter.After})
	}
	if filter.Before != nil {
		builder = builder.Where(sq.Lt{"created_at": *filter.Before})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.ListPasswordResets").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.ListPasswordResets").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	resets := make([]models.PasswordReset, 0)
	for rows.Next() {
		var reset models.PasswordReset
		if err := rows.Scan(&reset.ID, &reset.UserID, &reset.Key, &reset.CreatedAt); err != nil {
			log.Err(err).Str("func", "*passwordResetRepository.ListPasswordResets").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		resets = append(resets, reset)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.ListPasswordResets").Msg("error: iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return resets, nil
}

// DeletePasswordReset removes a reset row and returns the deleted record,
// so callers can report what was consumed without a second round trip.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrPasswordResetNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *passwordResetRepository) DeletePasswordReset(ctx context.Context, id string) (models.PasswordReset, error) {
	log := logger.FromContext(ctx)

	var deletedReset models.PasswordReset
	row := r.db.QueryRowContext(ctx, deletePasswordReset, id)

	// delete password reset from db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.DeletePasswordReset").Msg("error: row is nil")
		return models.PasswordReset{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan deleted password reset
	if err := row.Scan(&deletedReset.ID, &deletedReset.UserID, &deletedReset.Key, &deletedReset.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PasswordReset{}, ErrPasswordResetNotFound
		}
		log.Err(err).Str("func", "*passwordResetRepository.DeletePasswordReset").Msg("error: scanning error")
		return models.PasswordReset{}, err
	}

	return deletedReset, nil
}

// DeletePasswordResetsByUser removes every reset issued for the given
// account, returning the number of rows removed. Zero rows is not an error.
func (r *passwordResetRepository) DeletePasswordResetsByUser(ctx context.Context, userID int64) (int64, error) {
	return r.deleteResets(ctx, deletePasswordResetsByUser, userID, "*passwordResetRepository.DeletePasswordResetsByUser")
}

// DeletePasswordResetsCreatedBefore removes every reset created before the
// cutoff, returning the number of rows removed.
func (r *passwordResetRepository) DeletePasswordResetsCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.deleteResets(ctx, deletePasswordResetsCreatedBefore, cutoff, "*passwordResetRepository.DeletePasswordResetsCreatedBefore")
}

// deleteResets executes a bulk DELETE and reports the affected row count.
func (r *passwordResetRepository) deleteResets(ctx context.Context, query string, arg any, funcName string) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, arg)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error: executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error: reading rows affected")
		return 0, err
	}

	return affected, nil
}
