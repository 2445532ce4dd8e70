package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/datasciencemap/community-map/internal/logger"
	"github.com/datasciencemap/community-map/models"
	"github.com/jackc/pgerrcode"
)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &sessionRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	ctx := context.Background()
	session := models.Session{
		ID:     "0190a8b0-0000-7000-8000-000000000001",
		UserID: 1,
	}

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"session_id", "user_id", "created_at"}).
		AddRow(session.ID, session.UserID, now)

	mock.ExpectQuery("INSERT INTO sessions").
		WithArgs(session.ID, session.UserID).
		WillReturnRows(rows)

	created, err := repo.CreateSession(ctx, session)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != session.ID {
		t.Errorf("expected session id %s, got %s", session.ID, created.ID)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected server-assigned created_at, got zero time")
	}
}

func TestCreateSession_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO sessions").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateSession(ctx, models.Session{ID: "dup", UserID: 1})
	if !errors.Is(err, ErrSessionAlreadyExists) {
		t.Fatalf("expected ErrSessionAlreadyExists, got %v", err)
	}
}

func TestCreateSession_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO sessions").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateSession(ctx, models.Session{ID: "s", UserID: 1})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindSessionByID_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"session_id", "user_id", "created_at"}).
		AddRow("sess-1", int64(7), now)

	mock.ExpectQuery("SELECT session_id").
		WithArgs("sess-1").
		WillReturnRows(rows)

	found, err := repo.FindSessionByID(ctx, "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", found.UserID)
	}
}

func TestFindSessionByID_NotFound(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT session_id").
		WithArgs("destroyed").
		WillReturnRows(sqlmock.NewRows([]string{"session_id", "user_id", "created_at"}))

	_, err := repo.FindSessionByID(ctx, "destroyed")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestDeleteSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("sess-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteSession(ctx, "sess-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteSession_MissingRowIsNotAnError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("already-gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteSession(ctx, "already-gone"); err != nil {
		t.Fatalf("expected idempotent delete, got %v", err)
	}
}

func TestDeleteSession_ExecError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("sess-1").
		WillReturnError(errors.New("db failure"))

	err := repo.DeleteSession(ctx, "sess-1")
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
