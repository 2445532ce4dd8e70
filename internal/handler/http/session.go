package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/datasciencemap/community-map/internal/logger"
	"github.com/datasciencemap/community-map/internal/service"
	"github.com/datasciencemap/community-map/internal/utils"
	"github.com/datasciencemap/community-map/models"
	"github.com/go-chi/chi/v5"
)

// sessionDestroyedMessage is the logout response body. Logout is idempotent
// and reports destruction even when no session existed.
const sessionDestroyedMessage = "SESSION_DESTROYED"

// startSessionResponse carries the penultimate login timestamp back to the
// client after the login-date shift. A first-ever login reports null.
type startSessionResponse struct {
	UltimateLogin *time.Time `json:"ultimate_login"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		log.Err(err).Msg("login request failed validation")
		writeError(w, err)
		return
	}

	foundUser, err := h.services.SessionService.Login(ctx, request.Username, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid username or password")
			http.Error(w, service.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrEmailNotVerified):
			log.Err(err).Msg("account email not verified")
			http.Error(w, service.ErrEmailNotVerified.Error(), http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrAccountNotApproved):
			log.Err(err).Msg("account not approved")
			http.Error(w, service.ErrAccountNotApproved.Error(), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	// The previous session, if any, is destroyed inside OpenSession so the
	// pre-authentication identifier can never be replayed.
	previousSessionID := h.resolveSessionID(r)

	session, token, err := h.services.SessionService.OpenSession(ctx, previousSessionID, foundUser.UserID)
	if err != nil {
		log.Err(err).Msg("opening session failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Str("session_id", session.ID).Msg("session established")

	h.setSessionCookie(w, token.SignedString)
	utils.WriteJSON(w, foundUser, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if sessionID := h.resolveSessionID(r); sessionID != "" {
		if err := h.services.SessionService.CloseSession(ctx, sessionID); err != nil {
			log.Err(err).Msg("closing session failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		log.Debug().Str("session_id", sessionID).Msg("session destroyed")
	}

	h.clearSessionCookie(w)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(sessionDestroyedMessage))
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// Only the caller's own session is addressable.
	if id := chi.URLParam(r, "id"); id != "current" {
		log.Debug().Str("id", id).Msg("session lookup for a foreign id rejected")
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		log.Err(service.ErrNotAuthenticated).Msg("no session in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Err(service.ErrNotAuthenticated).Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	account, err := h.services.SessionService.UpdateLoginDates(ctx, models.UserAccount{UserID: userID})
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during login-date shift")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, startSessionResponse{UltimateLogin: account.UltimateLogin}, http.StatusOK)
}

// resolveSessionID extracts the session id referenced by the request's
// session cookie. A missing cookie or a token that fails resolution yields
// an empty id; callers treat that as "no previous session".
func (h *Handler) resolveSessionID(r *http.Request) string {
	cookie, err := r.Cookie(h.sessionCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}

	session, err := h.services.SessionService.ResolveToken(r.Context(), cookie.Value)
	if err != nil {
		return ""
	}

	return session.ID
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, signedToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.sessionCookie,
		Value:    signedToken,
		Path:     "/",
		MaxAge:   int(h.sessionDuration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
