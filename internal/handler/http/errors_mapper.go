package http

import (
	"errors"
	"net/http"

	"github.com/datasciencemap/community-map/internal/service"
	"github.com/datasciencemap/community-map/internal/validators"
)

// errorStatusMap relates service and validation sentinels to the HTTP status
// they translate to. Handlers with route-specific status requirements (the
// validate route reports an expired or missing reset as 401) use their own
// switch instead.
var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:    http.StatusUnauthorized,
	service.ErrEmailNotVerified:      http.StatusUnauthorized,
	service.ErrAccountNotApproved:    http.StatusUnauthorized,
	service.ErrNotAuthenticated:      http.StatusUnauthorized,
	service.ErrPasswordResetNotFound: http.StatusNotFound,
	service.ErrPasswordResetExpired:  http.StatusUnauthorized,
	service.ErrInvalidDataProvided:   http.StatusBadRequest,

	validators.ErrMissingUsername:          http.StatusBadRequest,
	validators.ErrMissingPassword:          http.StatusBadRequest,
	validators.ErrPasswordTooWeak:          http.StatusBadRequest,
	validators.ErrMissingEmail:             http.StatusBadRequest,
	validators.ErrInvalidEmail:             http.StatusBadRequest,
	validators.ErrMissingAccountIdentifier: http.StatusBadRequest,
}

// statusFromError resolves err to an HTTP status code via errorStatusMap.
// Unmapped errors resolve to 500 Internal Server Error.
func statusFromError(err error) int {
	for sentinel, status := range errorStatusMap {
		if errors.Is(err, sentinel) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError responds with the client-facing message for err. Unmapped
// errors respond with the generic 500 status text so internal details never
// reach the client.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	http.Error(w, err.Error(), status)
}
