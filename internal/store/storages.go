package store

import (
	"context"

	"github.com/datasciencemap/community-map/internal/config"
	"github.com/datasciencemap/community-map/internal/logger"
)

// Storages aggregates every repository backed by the shared database
// connection. It is the single dependency the service layer takes on the
// persistence tier.
type Storages struct {
	UserAccountRepository   UserAccountRepository
	SessionRepository       SessionRepository
	PasswordResetRepository PasswordResetRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// all repositories onto the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error occured during database connection")
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, err
	}

	return &Storages{
		UserAccountRepository:   NewUserAccountRepository(db, log),
		SessionRepository:       NewSessionRepository(db, log),
		PasswordResetRepository: NewPasswordResetRepository(db, log),
	}, nil
}
