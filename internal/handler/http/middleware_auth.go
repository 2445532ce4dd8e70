package http

import (
	"context"
	"net/http"

	"github.com/datasciencemap/community-map/internal/logger"
	"github.com/datasciencemap/community-map/internal/utils"
)

// auth is an HTTP middleware that enforces session-cookie authentication.
//
// It reads the session cookie, resolves the signed token it carries via
// [service.SessionService.ResolveToken], and on success stores the resolved
// session and its user id in the request context under
// [utils.SessionCtxKey] and [utils.UserIDCtxKey] before delegating to the
// next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - The session cookie is absent ([ErrMissingSessionCookie]).
//   - The cookie carries no token ([ErrEmptySessionToken]).
//   - The token is invalid, expired, or references a destroyed session.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest]. The response body never distinguishes the
// rejection cases.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(h.sessionCookie)
		if err != nil {
			log.Err(ErrMissingSessionCookie).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		if cookie.Value == "" {
			log.Err(ErrEmptySessionToken).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		session, err := h.services.SessionService.ResolveToken(ctx, cookie.Value)
		if err != nil {
			log.Err(err).Msg("session token rejected")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the resolved session in the context so that downstream
		// handlers can use it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.SessionCtxKey, session)
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, session.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
