package http

import (
	"time"

	"github.com/datasciencemap/community-map/internal/config"
	"github.com/datasciencemap/community-map/internal/logger"
	"github.com/datasciencemap/community-map/internal/service"
	"github.com/datasciencemap/community-map/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// sessionCookie is the name of the cookie carrying the signed session
	// token; sessionDuration bounds the cookie's Max-Age.
	sessionCookie   string
	sessionDuration time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		validator:       validator,
		sessionCookie:   cfg.SessionCookie,
		sessionDuration: cfg.SessionDuration,
		logger:          logger,
	}
}
