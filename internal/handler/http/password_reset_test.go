package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/datasciencemap/community-map/internal/service"
	"github.com/datasciencemap/community-map/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const successBody = `{"success":true}`

// ─────────────────────────────────────────────
// requestPasswordReset
// ─────────────────────────────────────────────

// TestRequestPasswordReset_Success verifies that the identifiers reach the
// service and the response is the success envelope.
func TestRequestPasswordReset_Success(t *testing.T) {
	resets := defaultPasswordResetMock()

	var gotUsername, gotEmail string
	resets.requestFn = func(_ context.Context, username, email string) error {
		gotUsername = username
		gotEmail = email
		return nil
	}

	h := newTestHandler(t, defaultSessionMock(), resets)
	req := httptest.NewRequest(http.MethodPost, "/api/password-reset", strings.NewReader(`{"username":"alice"}`))
	rec := httptest.NewRecorder()

	h.requestPasswordReset(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, successBody, rec.Body.String())
	assert.Equal(t, "alice", gotUsername)
	assert.Empty(t, gotEmail)
}

// TestRequestPasswordReset_UnknownAccountStillSucceeds verifies the response
// does not disclose account existence: the service reports success for an
// unknown account and so does the handler.
func TestRequestPasswordReset_UnknownAccountStillSucceeds(t *testing.T) {
	resets := defaultPasswordResetMock()
	resets.requestFn = func(context.Context, string, string) error { return nil }

	h := newTestHandler(t, defaultSessionMock(), resets)
	req := httptest.NewRequest(http.MethodPost, "/api/password-reset", strings.NewReader(`{"email":"nobody@example.com"}`))
	rec := httptest.NewRecorder()

	h.requestPasswordReset(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, successBody, rec.Body.String())
}

func TestRequestPasswordReset_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, defaultSessionMock(), defaultPasswordResetMock())

	req := httptest.NewRequest(http.MethodPost, "/api/password-reset", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.requestPasswordReset(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

func TestRequestPasswordReset_MissingIdentifiers(t *testing.T) {
	h := newTestHandler(t, defaultSessionMock(), defaultPasswordResetMock())

	req := httptest.NewRequest(http.MethodPost, "/api/password-reset", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.requestPasswordReset(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestPasswordReset_ServiceError(t *testing.T) {
	resets := defaultPasswordResetMock()
	resets.requestFn = func(context.Context, string, string) error {
		return errors.New("smtp unreachable")
	}

	h := newTestHandler(t, defaultSessionMock(), resets)
	req := httptest.NewRequest(http.MethodPost, "/api/password-reset", strings.NewReader(`{"username":"alice"}`))
	rec := httptest.NewRecorder()

	h.requestPasswordReset(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// listPasswordResets
// ─────────────────────────────────────────────

// TestListPasswordResets_ParsesFilter verifies that after, before, and limit
// survive the trip from query string to service filter.
func TestListPasswordResets_ParsesFilter(t *testing.T) {
	resets := defaultPasswordResetMock()

	var gotFilter models.PasswordResetFilter
	resets.listFn = func(_ context.Context, filter models.PasswordResetFilter) ([]models.PasswordReset, error) {
		gotFilter = filter
		return []models.PasswordReset{{ID: "reset-1"}, {ID: "reset-2"}}, nil
	}

	h := newTestHandler(t, defaultSessionMock(), resets)
	req := httptest.NewRequest(http.MethodGet,
		"/api/password-resets?after=2026-08-01T00:00:00Z&before=2026-08-20&limit=10", nil)
	rec := httptest.NewRecorder()

	h.listPasswordResets(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, gotFilter.After)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), *gotFilter.After)
	require.NotNil(t, gotFilter.Before)
	assert.Equal(t, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), *gotFilter.Before)
	assert.Equal(t, uint64(10), gotFilter.Limit)

	var listed []models.PasswordReset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 2)
}

func TestListPasswordResets_NoParameters(t *testing.T) {
	resets := defaultPasswordResetMock()
	resets.listFn = func(_ context.Context, filter models.PasswordResetFilter) ([]models.PasswordReset, error) {
		assert.Nil(t, filter.After)
		assert.Nil(t, filter.Before)
		assert.Zero(t, filter.Limit)
		return []models.PasswordReset{}, nil
	}

	h := newTestHandler(t, defaultSessionMock(), resets)
	req := httptest.NewRequest(http.MethodGet, "/api/password-resets", nil)
	rec := httptest.NewRecorder()

	h.listPasswordResets(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListPasswordResets_BadTimestamp(t *testing.T) {
	h := newTestHandler(t, defaultSessionMock(), defaultPasswordResetMock())

	req := httptest.NewRequest(http.MethodGet, "/api/password-resets?after=yesterday", nil)
	rec := httptest.NewRecorder()

	h.listPasswordResets(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPasswordResets_BadLimit(t *testing.T) {
	h := newTestHandler(t, defaultSessionMock(), defaultPasswordResetMock())

	req := httptest.NewRequest(http.MethodGet, "/api/password-resets?limit=-5", nil)
	rec := httptest.NewRecorder()

	h.listPasswordResets(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPasswordResets_StorageError(t *testing.T) {
	resets := defaultPasswordResetMock()
	resets.listFn = func(context.Context, models.PasswordResetFilter) ([]models.PasswordReset, error) {
		return nil, errors.New("query failed")
	}

	h := newTestHandler(t, defaultSessionMock(), resets)
	req := httptest.NewRequest(http.MethodGet, "/api/password-resets", nil)
	rec := httptest.NewRecorder()

	h.listPasswordResets(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// getPasswordReset / getPasswordResetByKey
// ─────────────────────────────────────────────

func TestGetPasswordReset_Success(t *testing.T) {
	resets := defaultPasswordResetMock()
	resets.getFn = func(_ context.Context, id string) (models.PasswordReset, error) {
		assert.Equal(t, "reset-1", id)
		return models.PasswordReset{ID: "reset-1", UserID: 42, Key: "key-1"}, nil
	}

	h := newTestHandler(t, defaultSessionMock(), resets)
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/password-reset/reset-1", nil), "id", "reset-1")
	rec := httptest.NewRecorder()

	h.getPasswordReset(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"reset-1"`)
}

func TestGetPasswordReset_NotFound(t *testing.T) {
	resets := defaultPasswordResetMock()
	resets.getFn = func(context.Context, string) (models.PasswordReset, error) {
		return models.PasswordReset{}, service.ErrPasswordResetNotFound
	}

	h := newTestHandler(t, defaultSessionMock(), resets)
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/password-reset/missing", nil), "id", "missing")
	rec := httptest.NewRecorder()

	h.getPasswordReset(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Password reset not found.\n", rec.Body.String())
}

func TestGetPasswordResetByKey_Success(t *testing.T) {
	resets := defaultPasswordResetMock()
	resets.getByKeyFn = func(_ context.Context, key string) (models.PasswordReset, error) {
		assert.Equal(t, "key-1", key)
		return models.PasswordReset{ID: "reset-1", Key: "key-1"}, nil
	}

	h := newTestHandler(t, defaultSessionMock(), resets)
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/password-reset/key/key-1", nil), "key", "key-1")
	rec := httptest.NewRecorder()

	h.getPasswordResetByKey(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"key":"key-1"`)
}

func TestGetPasswordResetByKey_NotFound(t *testing.T) {
	resets := defaultPasswordResetMock()
	resets.getByKeyFn = func(context.Context, string) (models.PasswordReset, error) {
		return models.PasswordReset{}, service.ErrPasswordResetNotFound
	}

	h := newTestHandler(t, defaultSessionMock(), resets)
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/password-reset/key/missing", nil), "key", "missing")
	rec := httptest.NewRecorder()

	h.getPasswordResetByKey(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Password reset not found.\n", rec.Body.String())
}

// ─────────────────────────────────────────────
// validatePasswordReset
// ─────────────────────────────────────────────

func TestValidatePasswordReset_Valid(t *testing.T) {
	resets := defaultPasswordResetMock()
	resets.validateAndFetchFn = func(_ context.Context, id string) (models.PasswordReset, error) {
		return models.PasswordReset{ID: id, UserID: 42}, nil
	}

	h := newTestHandler(t, defaultSessionMock(), resets)
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/password-reset/reset-1/validate", nil), "id", "reset-1")
	rec := httptest.NewRecorder()

	h.validatePasswordReset(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"reset-1"`)
}

// TestValidatePasswordReset_Expired verifies the exact client-facing message
// and the 401 status for an expired reset.
func TestValidatePasswordReset_Expired(t *testing.T) {
	resets := defaultPasswordResetMock()
	resets.validateAndFetchFn = func(context.Context, string) (models.PasswordReset, error) {
		return models.PasswordReset{}, service.ErrPasswordResetExpired
	}

	h := newTestHandler(t, defaultSessionMock(), resets)
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/password-reset/reset-1/validate", nil), "id", "reset-1")
	rec := httptest.NewRecorder()

	h.validatePasswordReset(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Password reset expired.\n", rec.Body.String())
}

// TestValidatePasswordReset_NotFound verifies that a missing reset is also a
// 401 on the validate route, not a 404.
func TestValidatePasswordReset_NotFound(t *testing.T) {
	resets := defaultPasswordResetMock()
	resets.validateAndFetchFn = func(context.Context, string) (models.PasswordReset, error) {
		return models.PasswordReset{}, service.ErrPasswordResetNotFound
	}

	h := newTestHandler(t, defaultSessionMock(), resets)
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/password-reset/missing/validate", nil), "id", "missing")
	rec := httptest.NewRecorder()

	h.validatePasswordReset(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Password reset not found.\n", rec.Body.String())
}

// ─────────────────────────────────────────────
// updatePasswordReset
// ─────────────────────────────────────────────

func TestUpdatePasswordReset_Success(t *testing.T) {
	resets := defaultPasswordResetMock()

	var gotID, gotPassword string
	resets.consumeFn = func(_ context.Context, id, newPassword string) (models.UserAccount, error) {
		gotID = id
		gotPassword = newPassword
		return models.UserAccount{UserID: 42}, nil
	}

	h := newTestHandler(t, defaultSessionMock(), resets)
	req := withURLParam(
		httptest.NewRequest(http.MethodPut, "/api/password-reset/reset-1", strings.NewReader(`{"password":"brand-new-password"}`)),
		"id", "reset-1")
	rec := httptest.NewRecorder()

	h.updatePasswordReset(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, successBody, rec.Body.String())
	assert.Equal(t, "reset-1", gotID)
	assert.Equal(t, "brand-new-password", gotPassword)
}

func TestUpdatePasswordReset_ShortPassword(t *testing.T) {
	h := newTestHandler(t, defaultSessionMock(), defaultPasswordResetMock())

	req := withURLParam(
		httptest.NewRequest(http.MethodPut, "/api/password-reset/reset-1", strings.NewReader(`{"password":"short"}`)),
		"id", "reset-1")
	rec := httptest.NewRecorder()

	h.updatePasswordReset(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePasswordReset_Expired(t *testing.T) {
	resets := defaultPasswordResetMock()
	resets.consumeFn = func(context.Context, string, string) (models.UserAccount, error) {
		return models.UserAccount{}, service.ErrPasswordResetExpired
	}

	h := newTestHandler(t, defaultSessionMock(), resets)
	req := withURLParam(
		httptest.NewRequest(http.MethodPut, "/api/password-reset/reset-1", strings.NewReader(`{"password":"brand-new-password"}`)),
		"id", "reset-1")
	rec := httptest.NewRecorder()

	h.updatePasswordReset(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Password reset expired.\n", rec.Body.String())
}

func TestUpdatePasswordReset_NotFound(t *testing.T) {
	resets := defaultPasswordResetMock()
	resets.consumeFn = func(context.Context, string, string) (models.UserAccount, error) {
		return models.UserAccount{}, service.ErrPasswordResetNotFound
	}

	h := newTestHandler(t, defaultSessionMock(), resets)
	req := withURLParam(
		httptest.NewRequest(http.MethodPut, "/api/password-reset/missing", strings.NewReader(`{"password":"brand-new-password"}`)),
		"id", "missing")
	rec := httptest.NewRecorder()

	h.updatePasswordReset(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Password reset not found.\n", rec.Body.String())
}

// ─────────────────────────────────────────────
// deletePasswordReset
// ─────────────────────────────────────────────

// TestDeletePasswordReset_ReturnsDeletedRecord verifies the destroyed record
// comes back in the response body.
func TestDeletePasswordReset_ReturnsDeletedRecord(t *testing.T) {
	resets := defaultPasswordResetMock()
	resets.deleteFn = func(_ context.Context, id string) (models.PasswordReset, error) {
		return models.PasswordReset{ID: id, UserID: 42, Key: "key-1"}, nil
	}

	h := newTestHandler(t, defaultSessionMock(), resets)
	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/password-reset/reset-1", nil), "id", "reset-1")
	rec := httptest.NewRecorder()

	h.deletePasswordReset(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"reset-1"`)
	assert.Contains(t, rec.Body.String(), `"key":"key-1"`)
}

func TestDeletePasswordReset_NotFound(t *testing.T) {
	resets := defaultPasswordResetMock()
	resets.deleteFn = func(context.Context, string) (models.PasswordReset, error) {
		return models.PasswordReset{}, service.ErrPasswordResetNotFound
	}

	h := newTestHandler(t, defaultSessionMock(), resets)
	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/password-reset/missing", nil), "id", "missing")
	rec := httptest.NewRecorder()

	h.deletePasswordReset(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Password reset not found.\n", rec.Body.String())
}
