package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/datasciencemap/community-map/internal/config"
	"github.com/datasciencemap/community-map/internal/logger"
	"github.com/datasciencemap/community-map/internal/store"
	"github.com/datasciencemap/community-map/internal/utils"
	"github.com/datasciencemap/community-map/models"
)

// passwordResetService is the concrete implementation of PasswordResetService.
// Resets are single-use tickets: consumption deletes the record, and expiry
// is a computed property of the creation timestamp rather than a stored flag.
type passwordResetService struct {
	// userAccountRepository is the data-access layer for the credential store.
	userAccountRepository store.UserAccountRepository

	// passwordResetRepository persists reset tickets.
	passwordResetRepository store.PasswordResetRepository

	// notifier dispatches reset links and password-changed notices.
	notifier Notifier

	// uuidGenerator produces reset ids and single-use keys.
	uuidGenerator *utils.UUIDGenerator

	// resetDuration is the validity window measured from creation time.
	resetDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewPasswordResetService constructs a PasswordResetService wired to the
// given repositories and notifier, with the validity window taken from cfg.
func NewPasswordResetService(userAccountRepository store.UserAccountRepository, passwordResetRepository store.PasswordResetRepository, notifier Notifier, cfg config.App, logger *logger.Logger) PasswordResetService {
	return &passwordResetService{
		userAccountRepository:   userAccountRepository,
		passwordResetRepository: passwordResetRepository,
		notifier:                notifier,
		uuidGenerator:           utils.NewUUIDGenerator(),
		resetDuration:           cfg.PasswordResetDuration,
		logger:                  logger,
	}
}

// Request issues a reset for the account matching username or, when the
// username yields nothing, email.
//
// An unknown account returns nil without side effects: the caller always
// reports success, so the operation cannot be used to probe which accounts
// exist. For a known account every outstanding reset is destroyed before
// the new one is created, keeping at most one active reset per account. A
// mail dispatch failure is returned so the caller can surface a server
// error instead of silently losing the link.
func (p *passwordResetService) Request(ctx context.Context, username, email string) error {
	log := logger.FromContext(ctx)

	if username == "" && email == "" {
		log.Error().Msg("no username or email provided for password reset request")
		return ErrInvalidDataProvided
	}

	account, found, err := p.resolveAccount(ctx, username, email)
	if err != nil {
		return err
	}
	if !found {
		log.Info().Msg("password reset requested for unknown account")
		return nil
	}

	if _, err := p.passwordResetRepository.DeletePasswordResetsByUser(ctx, account.UserID); err != nil {
		log.Err(err).Int64("user_id", account.UserID).Msg("destroying outstanding password resets failed")
		return fmt.Errorf("destroying outstanding password resets failed: %w", err)
	}

	reset := models.PasswordReset{
		ID:     p.uuidGenerator.Generate(),
		UserID: account.UserID,
		Key:    p.uuidGenerator.Generate(),
	}

	createdReset, err := p.passwordResetRepository.CreatePasswordReset(ctx, reset)
	if err != nil {
		log.Err(err).Int64("user_id", account.UserID).Msg("password reset creation ended with error")
		return fmt.Errorf("password reset creation ended with error: %w", err)
	}

	if err := p.notifier.SendPasswordResetLink(ctx, account, createdReset); err != nil {
		log.Err(err).Int64("user_id", account.UserID).Msg("sending password reset link failed")
		return fmt.Errorf("sending password reset link failed: %w", err)
	}

	return nil
}

// resolveAccount looks the account up by username first and falls back to
// email. Not finding one is reported through the bool, not an error.
func (p *passwordResetService) resolveAccount(ctx context.Context, username, email string) (models.UserAccount, bool, error) {
	log := logger.FromContext(ctx)

	if username != "" {
		account, err := p.userAccountRepository.FindUserByUsername(ctx, username)
		if err == nil {
			return account, true, nil
		}
		if !errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Msg("user search by username failed")
			return models.UserAccount{}, false, fmt.Errorf("user search by username failed: %w", err)
		}
	}

	if email != "" {
		account, err := p.userAccountRepository.FindUserByEmail(ctx, email)
		if err == nil {
			return account, true, nil
		}
		if !errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Msg("user search by email failed")
			return models.UserAccount{}, false, fmt.Errorf("user search by email failed: %w", err)
		}
	}

	return models.UserAccount{}, false, nil
}

// Get retrieves a reset by id, mapping an unknown id to
// ErrPasswordResetNotFound.
func (p *passwordResetService) Get(ctx context.Context, id string) (models.PasswordReset, error) {
	log := logger.FromContext(ctx)

	reset, err := p.passwordResetRepository.FindPasswordResetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrPasswordResetNotFound) {
			return models.PasswordReset{}, ErrPasswordResetNotFound
		}
		log.Err(err).Str("reset_id", id).Msg("password reset search by id failed")
		return models.PasswordReset{}, fmt.Errorf("password reset search by id failed: %w", err)
	}

	return reset, nil
}

// GetByKey retrieves a reset by its single-use key. An unknown key maps to
// the same ErrPasswordResetNotFound as an unknown id.
func (p *passwordResetService) GetByKey(ctx context.Context, key string) (models.PasswordReset, error) {
	log := logger.FromContext(ctx)

	reset, err := p.passwordResetRepository.FindPasswordResetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrPasswordResetNotFound) {
			return models.PasswordReset{}, ErrPasswordResetNotFound
		}
		log.Err(err).Msg("password reset search by key failed")
		return models.PasswordReset{}, fmt.Errorf("password reset search by key failed: %w", err)
	}

	return reset, nil
}

// ValidateAndFetch retrieves a reset by id and checks its age against the
// validity window. The record is left in place either way; destruction of
// expired resets belongs to Consume and the purge worker.
func (p *passwordResetService) ValidateAndFetch(ctx context.Context, id string) (models.PasswordReset, error) {
	reset, err := p.Get(ctx, id)
	if err != nil {
		return models.PasswordReset{}, err
	}

	if p.expired(reset) {
		return models.PasswordReset{}, ErrPasswordResetExpired
	}

	return reset, nil
}

// Consume sets a new password for the account the reset belongs to. The
// expiry window is re-checked here even when the client validated earlier,
// so a reset can never be consumed after its window closes. On success every
// outstanding reset for the account is destroyed and the password-changed
// notice is dispatched.
func (p *passwordResetService) Consume(ctx context.Context, id, newPassword string) (models.UserAccount, error) {
	log := logger.FromContext(ctx)

	if newPassword == "" {
		log.Error().Str("reset_id", id).Msg("empty password provided for password reset consumption")
		return models.UserAccount{}, ErrInvalidDataProvided
	}

	reset, err := p.Get(ctx, id)
	if err != nil {
		return models.UserAccount{}, err
	}

	if p.expired(reset) {
		return models.UserAccount{}, ErrPasswordResetExpired
	}

	account, err := p.userAccountRepository.FindUserByID(ctx, reset.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", reset.UserID).Msg("user search by id failed")
		return models.UserAccount{}, fmt.Errorf("user search by id failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Int64("user_id", account.UserID).Msg("hashing new password failed")
		return models.UserAccount{}, fmt.Errorf("hashing new password failed: %w", err)
	}

	if err := p.userAccountRepository.UpdatePassword(ctx, account.UserID, passwordHash); err != nil {
		log.Err(err).Int64("user_id", account.UserID).Msg("updating password failed")
		return models.UserAccount{}, fmt.Errorf("updating password failed: %w", err)
	}

	// single use: the consumed reset and any stragglers go together
	if _, err := p.passwordResetRepository.DeletePasswordResetsByUser(ctx, account.UserID); err != nil {
		log.Err(err).Int64("user_id", account.UserID).Msg("destroying consumed password resets failed")
		return models.UserAccount{}, fmt.Errorf("destroying consumed password resets failed: %w", err)
	}

	if err := p.notifier.SendPasswordChanged(ctx, account); err != nil {
		// the password is already changed; log and move on
		log.Err(err).Int64("user_id", account.UserID).Msg("sending password changed notice failed")
	}

	return account, nil
}

// Delete destroys a reset by id and returns the destroyed record.
func (p *passwordResetService) Delete(ctx context.Context, id string) (models.PasswordReset, error) {
	log := logger.FromContext(ctx)

	deletedReset, err := p.passwordResetRepository.DeletePasswordReset(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrPasswordResetNotFound) {
			return models.PasswordReset{}, ErrPasswordResetNotFound
		}
		log.Err(err).Str("reset_id", id).Msg("password reset deletion failed")
		return models.PasswordReset{}, fmt.Errorf("password reset deletion failed: %w", err)
	}

	return deletedReset, nil
}

// List returns resets newest-first, narrowed by filter.
func (p *passwordResetService) List(ctx context.Context, filter models.PasswordResetFilter) ([]models.PasswordReset, error) {
	log := logger.FromContext(ctx)

	resets, err := p.passwordResetRepository.ListPasswordResets(ctx, filter)
	if err != nil {
		log.Err(err).Msg("listing password resets failed")
		return nil, fmt.Errorf("listing password resets failed: %w", err)
	}

	return resets, nil
}

// PurgeExpired destroys every reset older than the validity window.
func (p *passwordResetService) PurgeExpired(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	cutoff := time.Now().UTC().Add(-p.resetDuration)
	purged, err := p.passwordResetRepository.DeletePasswordResetsCreatedBefore(ctx, cutoff)
	if err != nil {
		log.Err(err).Msg("purging expired password resets failed")
		return 0, fmt.Errorf("purging expired password resets failed: %w", err)
	}

	if purged > 0 {
		log.Info().Int64("purged", purged).Msg("expired password resets purged")
	}

	return purged, nil
}

// expired reports whether the reset's age exceeds the validity window.
// A reset aged exactly the window is still valid.
func (p *passwordResetService) expired(reset models.PasswordReset) bool {
	return reset.Age(time.Now()) > p.resetDuration
}
