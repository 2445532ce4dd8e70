package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/datasciencemap/community-map/internal/logger"
	"github.com/datasciencemap/community-map/internal/service"
	"github.com/datasciencemap/community-map/internal/utils"
	"github.com/datasciencemap/community-map/models"
	"github.com/go-chi/chi/v5"
)

// dateOnlyLayout is accepted for the after/before listing parameters in
// addition to RFC 3339.
const dateOnlyLayout = "2006-01-02"

func (h *Handler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.PasswordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		log.Err(err).Msg("password-reset request failed validation")
		writeError(w, err)
		return
	}

	// An unknown account is a silent success inside the service, so the
	// response never discloses whether the account exists.
	if err := h.services.PasswordResetService.Request(ctx, request.Username, request.Email); err != nil {
		log.Err(err).Msg("unexpected error occurred during password-reset request")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) listPasswordResets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := passwordResetFilterFromQuery(r.URL.Query())
	if err != nil {
		log.Err(err).Msg("invalid listing parameters")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resets, err := h.services.PasswordResetService.List(ctx, filter)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during password-reset listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, resets, http.StatusOK)
}

func (h *Handler) getPasswordReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	reset, err := h.services.PasswordResetService.Get(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordResetNotFound):
			log.Err(err).Str("id", id).Msg("password reset not found")
			http.Error(w, service.ErrPasswordResetNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during password-reset lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, reset, http.StatusOK)
}

func (h *Handler) getPasswordResetByKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	key := chi.URLParam(r, "key")

	reset, err := h.services.PasswordResetService.GetByKey(ctx, key)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordResetNotFound):
			log.Err(err).Msg("password reset not found by key")
			http.Error(w, service.ErrPasswordResetNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during password-reset lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, reset, http.StatusOK)
}

func (h *Handler) validatePasswordReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	reset, err := h.services.PasswordResetService.ValidateAndFetch(ctx, id)
	if err != nil {
		switch {
		// Both outcomes are 401 here: an expired ticket and a missing one
		// are equally unusable for the caller holding the link.
		case errors.Is(err, service.ErrPasswordResetExpired):
			log.Err(err).Str("id", id).Msg("password reset expired")
			http.Error(w, service.ErrPasswordResetExpired.Error(), http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrPasswordResetNotFound):
			log.Err(err).Str("id", id).Msg("password reset not found")
			http.Error(w, service.ErrPasswordResetNotFound.Error(), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during password-reset validation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, reset, http.StatusOK)
}

func (h *Handler) updatePasswordReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	var request models.PasswordResetUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		log.Err(err).Msg("password-reset update failed validation")
		writeError(w, err)
		return
	}

	if _, err := h.services.PasswordResetService.Consume(ctx, id, request.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordResetNotFound):
			log.Err(err).Str("id", id).Msg("password reset not found")
			http.Error(w, service.ErrPasswordResetNotFound.Error(), http.StatusNotFound)
			return
		case errors.Is(err, service.ErrPasswordResetExpired):
			log.Err(err).Str("id", id).Msg("password reset expired")
			http.Error(w, service.ErrPasswordResetExpired.Error(), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during password-reset consumption")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("id", id).Msg("password reset consumed")

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) deletePasswordReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	deleted, err := h.services.PasswordResetService.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordResetNotFound):
			log.Err(err).Str("id", id).Msg("password reset not found")
			http.Error(w, service.ErrPasswordResetNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during password-reset deletion")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, deleted, http.StatusOK)
}

// passwordResetFilterFromQuery builds a listing filter from the after,
// before, and limit query parameters. Absent parameters leave the matching
// filter field zero.
func passwordResetFilterFromQuery(query url.Values) (models.PasswordResetFilter, error) {
	var filter models.PasswordResetFilter

	if raw := query.Get("after"); raw != "" {
		parsed, err := parseTimeParam(raw)
		if err != nil {
			return models.PasswordResetFilter{}, fmt.Errorf("invalid `after` parameter: %s", raw)
		}
		filter.After = &parsed
	}

	if raw := query.Get("before"); raw != "" {
		parsed, err := parseTimeParam(raw)
		if err != nil {
			return models.PasswordResetFilter{}, fmt.Errorf("invalid `before` parameter: %s", raw)
		}
		filter.Before = &parsed
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.PasswordResetFilter{}, fmt.Errorf("invalid `limit` parameter: %s", raw)
		}
		filter.Limit = limit
	}

	return filter, nil
}

// parseTimeParam accepts RFC 3339 timestamps and bare dates.
func parseTimeParam(raw string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed.UTC(), nil
	}

	parsed, err := time.Parse(dateOnlyLayout, raw)
	if err != nil {
		return time.Time{}, err
	}

	return parsed.UTC(), nil
}
