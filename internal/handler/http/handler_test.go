package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/datasciencemap/community-map/internal/config"
	"github.com/datasciencemap/community-map/internal/logger"
	"github.com/datasciencemap/community-map/internal/service"
	"github.com/datasciencemap/community-map/internal/validators"
	"github.com/datasciencemap/community-map/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock SessionService
// ─────────────────────────────────────────────

// mockSessionService implements service.SessionService for unit tests.
// Each method field can be overridden per test case.
type mockSessionService struct {
	loginFn            func(ctx context.Context, username, password string) (models.UserAccount, error)
	openSessionFn      func(ctx context.Context, prevSessionID string, userID int64) (models.Session, models.Token, error)
	resolveTokenFn     func(ctx context.Context, tokenString string) (models.Session, error)
	closeSessionFn     func(ctx context.Context, sessionID string) error
	updateLoginDatesFn func(ctx context.Context, account models.UserAccount) (models.UserAccount, error)
}

func (m *mockSessionService) Login(ctx context.Context, username, password string) (models.UserAccount, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockSessionService) OpenSession(ctx context.Context, prevSessionID string, userID int64) (models.Session, models.Token, error) {
	return m.openSessionFn(ctx, prevSessionID, userID)
}

func (m *mockSessionService) ResolveToken(ctx context.Context, tokenString string) (models.Session, error) {
	return m.resolveTokenFn(ctx, tokenString)
}

func (m *mockSessionService) CloseSession(ctx context.Context, sessionID string) error {
	return m.closeSessionFn(ctx, sessionID)
}

func (m *mockSessionService) UpdateLoginDates(ctx context.Context, account models.UserAccount) (models.UserAccount, error) {
	return m.updateLoginDatesFn(ctx, account)
}

// ─────────────────────────────────────────────
// Mock PasswordResetService
// ─────────────────────────────────────────────

// mockPasswordResetService implements service.PasswordResetService for unit
// tests.
type mockPasswordResetService struct {
	requestFn          func(ctx context.Context, username, email string) error
	getFn              func(ctx context.Context, id string) (models.PasswordReset, error)
	getByKeyFn         func(ctx context.Context, key string) (models.PasswordReset, error)
	validateAndFetchFn func(ctx context.Context, id string) (models.PasswordReset, error)
	consumeFn          func(ctx context.Context, id, newPassword string) (models.UserAccount, error)
	deleteFn           func(ctx context.Context, id string) (models.PasswordReset, error)
	listFn             func(ctx context.Context, filter models.PasswordResetFilter) ([]models.PasswordReset, error)
	purgeExpiredFn     func(ctx context.Context) (int64, error)
}

func (m *mockPasswordResetService) Request(ctx context.Context, username, email string) error {
	return m.requestFn(ctx, username, email)
}

func (m *mockPasswordResetService) Get(ctx context.Context, id string) (models.PasswordReset, error) {
	return m.getFn(ctx, id)
}

func (m *mockPasswordResetService) GetByKey(ctx context.Context, key string) (models.PasswordReset, error) {
	return m.getByKeyFn(ctx, key)
}

func (m *mockPasswordResetService) ValidateAndFetch(ctx context.Context, id string) (models.PasswordReset, error) {
	return m.validateAndFetchFn(ctx, id)
}

func (m *mockPasswordResetService) Consume(ctx context.Context, id, newPassword string) (models.UserAccount, error) {
	return m.consumeFn(ctx, id, newPassword)
}

func (m *mockPasswordResetService) Delete(ctx context.Context, id string) (models.PasswordReset, error) {
	return m.deleteFn(ctx, id)
}

func (m *mockPasswordResetService) List(ctx context.Context, filter models.PasswordResetFilter) ([]models.PasswordReset, error) {
	return m.listFn(ctx, filter)
}

func (m *mockPasswordResetService) PurgeExpired(ctx context.Context) (int64, error) {
	return m.purgeExpiredFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testSessionCookie = "communitymap_session"

func testHandlerAppConfig() config.App {
	return config.App{
		SessionCookie:   testSessionCookie,
		SessionDuration: 24 * time.Hour,
	}
}

// newTestHandler builds a Handler with the given service mocks and the real
// request validator.
func newTestHandler(t *testing.T, sessions service.SessionService, resets service.PasswordResetService) *Handler {
	t.Helper()

	svcs := &service.Services{
		SessionService:       sessions,
		PasswordResetService: resets,
	}

	return NewHandler(svcs, validators.NewRequestValidator(), testHandlerAppConfig(), logger.Nop())
}

// defaultSessionMock rejects every token so auth-protected routes answer 401.
func defaultSessionMock() *mockSessionService {
	return &mockSessionService{
		loginFn: func(context.Context, string, string) (models.UserAccount, error) {
			return models.UserAccount{}, service.ErrInvalidCredentials
		},
		resolveTokenFn: func(context.Context, string) (models.Session, error) {
			return models.Session{}, service.ErrNotAuthenticated
		},
		closeSessionFn: func(context.Context, string) error { return nil },
	}
}

// defaultPasswordResetMock answers every lookup with a stub record so the
// route-registration tests can tell a handled route from a missing one.
func defaultPasswordResetMock() *mockPasswordResetService {
	return &mockPasswordResetService{
		requestFn: func(context.Context, string, string) error { return nil },
		getFn: func(_ context.Context, id string) (models.PasswordReset, error) {
			return models.PasswordReset{ID: id}, nil
		},
		getByKeyFn: func(_ context.Context, key string) (models.PasswordReset, error) {
			return models.PasswordReset{Key: key}, nil
		},
		validateAndFetchFn: func(_ context.Context, id string) (models.PasswordReset, error) {
			return models.PasswordReset{ID: id}, nil
		},
	}
}

// withURLParam attaches a chi route parameter to the request so handlers
// invoked outside a router can still read it.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, validators.NewRequestValidator(), testHandlerAppConfig(), logger.Nop())

	require.NotNil(t, h)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svcs := &service.Services{}
	h := NewHandler(svcs, validators.NewRequestValidator(), testHandlerAppConfig(), logger.Nop())

	assert.Equal(t, svcs, h.services)
}

func TestNewHandler_StoresCookieSettings(t *testing.T) {
	h := NewHandler(&service.Services{}, validators.NewRequestValidator(), testHandlerAppConfig(), logger.Nop())

	assert.Equal(t, testSessionCookie, h.sessionCookie)
	assert.Equal(t, 24*time.Hour, h.sessionDuration)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

func TestInit_ReturnsRouter(t *testing.T) {
	router := newTestHandler(t, defaultSessionMock(), defaultPasswordResetMock()).Init()

	require.NotNil(t, router)
}

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	// session
	{http.MethodPost, "/api/session"},
	{http.MethodPost, "/api/session/logout"},
	// session (auth middleware will return 401, not 404/405)
	{http.MethodGet, "/api/session/current"},
	{http.MethodPut, "/api/session/start"},
	// password reset
	{http.MethodPost, "/api/password-reset"},
	{http.MethodGet, "/api/password-reset/key/some-key"},
	{http.MethodGet, "/api/password-reset/some-id"},
	{http.MethodGet, "/api/password-reset/some-id/validate"},
	{http.MethodPut, "/api/password-reset/some-id"},
	// password reset (auth middleware will return 401, not 404/405)
	{http.MethodGet, "/api/password-resets"},
	{http.MethodDelete, "/api/password-reset/some-id"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestHandler(t, defaultSessionMock(), defaultPasswordResetMock()).Init()

	for _, tc := range expectedRoutes {
		tc := tc
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// A registered route returns anything except 404 (not found) or
			// 405 (method not allowed). Auth-protected routes return 401,
			// which still proves the route exists.
			assert.NotEqual(t, http.StatusNotFound, rec.Code,
				"route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code,
				"method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newTestHandler(t, defaultSessionMock(), defaultPasswordResetMock()).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newTestHandler(t, defaultSessionMock(), defaultPasswordResetMock()).Init()

	// DELETE /api/session is not registered — only POST is.
	req := httptest.NewRequest(http.MethodDelete, "/api/session", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
