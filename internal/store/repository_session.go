package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/datasciencemap/community-map/internal/logger"
	"github.com/datasciencemap/community-map/models"
	"github.com/jackc/pgerrcode"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository]. It persists server-side session records in the
// "sessions" table; the cookie only ever carries a signed reference to a row
// stored here.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a new session row and returns it with the
// server-assigned creation timestamp.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrSessionAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSession, session.ID, session.UserID)

	// create session in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Session{}, ErrSessionAlreadyExists
		default:
			return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved session from db
	if err := row.Scan(&session.ID, &session.UserID, &session.CreatedAt); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: scanning error")
		return models.Session{}, err
	}

	return session, nil
}

// FindSessionByID retrieves a session by its opaque id.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrSessionNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *sessionRepository) FindSessionByID(ctx context.Context, sessionID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	var foundSession models.Session
	row := r.db.QueryRowContext(ctx, findSessionByID, sessionID)

	// find session by id
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindSessionByID").Msg("error: row is nil")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found session from db
	if err := row.Scan(&foundSession.ID, &foundSession.UserID, &foundSession.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "*sessionRepository.FindSessionByID").Msg("error: scanning error")
		return models.Session{}, err
	}

	return foundSession, nil
}

// DeleteSession removes a session row. Deleting a session that does not
// exist is not an error: logout stays idempotent no matter how many times a
// client repeats it.
func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteSession, sessionID); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
