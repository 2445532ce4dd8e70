package service

import (
	"github.com/datasciencemap/community-map/internal/config"
	"github.com/datasciencemap/community-map/internal/logger"
	"github.com/datasciencemap/community-map/internal/store"
)

// Services aggregates the business-logic layer. Handlers and workers depend
// on this struct rather than on individual service constructors.
type Services struct {
	SessionService       SessionService
	PasswordResetService PasswordResetService
}

// NewServices wires all services onto the given storages and notifier.
func NewServices(storages *store.Storages, notifier Notifier, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		SessionService:       NewSessionService(storages.UserAccountRepository, storages.SessionRepository, cfg.App, logger),
		PasswordResetService: NewPasswordResetService(storages.UserAccountRepository, storages.PasswordResetRepository, notifier, cfg.App, logger),
	}
}
