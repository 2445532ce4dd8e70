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

// sessionService is the concrete implementation of SessionService.
// It verifies credentials with bcrypt, keeps session state in the sessions
// table, and wraps the opaque session id in a signed JWT for the cookie.
type sessionService struct {
	// userAccountRepository is the data-access layer for the credential store.
	userAccountRepository store.UserAccountRepository

	// sessionRepository persists server-side session rows.
	sessionRepository store.SessionRepository

	// uuidGenerator produces opaque session identifiers.
	uuidGenerator *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// sessionDuration controls how long a newly issued session token remains valid.
	sessionDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewSessionService constructs a SessionService wired to the given
// repositories and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewSessionService(userAccountRepository store.UserAccountRepository, sessionRepository store.SessionRepository, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		userAccountRepository: userAccountRepository,
		sessionRepository:     sessionRepository,
		uuidGenerator:         utils.NewUUIDGenerator(),
		tokenSignKey:          cfg.TokenSignKey,
		tokenIssuer:           cfg.TokenIssuer,
		sessionDuration:       cfg.SessionDuration,
		logger:                logger,
	}
}

// Login verifies the username/password pair and checks the account gates in
// order: credentials first, then email verification, then approval. The
// unknown-username and wrong-password cases collapse into one error so the
// response never discloses which usernames exist.
func (s *sessionService) Login(ctx context.Context, username, password string) (models.UserAccount, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("empty credentials provided")
		return models.UserAccount{}, ErrInvalidCredentials
	}

	foundUser, err := s.userAccountRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("username", username).Msg("login attempt for unknown username")
			return models.UserAccount{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.UserAccount{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.VerifyPassword(password, foundUser.PasswordHash) {
		log.Info().Int64("id", foundUser.UserID).Str("username", username).Msg("wrong password")
		return models.UserAccount{}, ErrInvalidCredentials
	}

	if !foundUser.Verified {
		log.Info().Int64("id", foundUser.UserID).Msg("login attempt with unverified email")
		return models.UserAccount{}, ErrEmailNotVerified
	}

	if !foundUser.Enabled {
		log.Info().Int64("id", foundUser.UserID).Msg("login attempt for unapproved account")
		return models.UserAccount{}, ErrAccountNotApproved
	}

	// one timestamp write per login; the penultimate shift belongs to
	// UpdateLoginDates
	now := time.Now().UTC()
	if err := s.userAccountRepository.UpdateLastLogin(ctx, foundUser.UserID, now); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("updating last login failed")
		return models.UserAccount{}, fmt.Errorf("updating last login failed: %w", err)
	}
	foundUser.LastLogin = &now

	return foundUser, nil
}

// OpenSession destroys the previous session (when one is presented), inserts
// a fresh session row with a newly generated id, and signs the token that
// wraps it. The delete-then-insert order guarantees the old identifier is
// unusable before the new one exists.
func (s *sessionService) OpenSession(ctx context.Context, prevSessionID string, userID int64) (models.Session, models.Token, error) {
	log := logger.FromContext(ctx)

	if prevSessionID != "" {
		if err := s.sessionRepository.DeleteSession(ctx, prevSessionID); err != nil {
			log.Err(err).Str("session_id", prevSessionID).Msg("destroying previous session failed")
			return models.Session{}, models.Token{}, fmt.Errorf("destroying previous session failed: %w", err)
		}
	}

	session := models.Session{
		ID:     s.uuidGenerator.Generate(),
		UserID: userID,
	}

	createdSession, err := s.sessionRepository.CreateSession(ctx, session)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("session creation ended with error")
		return models.Session{}, models.Token{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	token, err := utils.GenerateSessionToken(s.tokenIssuer, createdSession.ID, s.sessionDuration, s.tokenSignKey)
	if err != nil {
		// roll back the orphaned row so a signing failure leaves no session behind
		_ = s.sessionRepository.DeleteSession(ctx, createdSession.ID)
		log.Err(err).Int64("user_id", userID).Msg("session token creation failed")
		return models.Session{}, models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return createdSession, token, nil
}

// ResolveToken validates the raw cookie token and loads the session row it
// references. Every failure mode is normalised to ErrNotAuthenticated so
// callers do not need to inspect low-level JWT or storage errors.
func (s *sessionService) ResolveToken(ctx context.Context, tokenString string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		return models.Session{}, ErrNotAuthenticated
	}

	token, err := utils.ValidateAndParseSessionToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		log.Info().Err(err).Msg("session token rejected")
		return models.Session{}, ErrNotAuthenticated
	}

	session, err := s.sessionRepository.FindSessionByID(ctx, token.SessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			log.Info().Str("session_id", token.SessionID).Msg("token references a destroyed session")
			return models.Session{}, ErrNotAuthenticated
		}
		log.Err(err).Str("session_id", token.SessionID).Msg("session lookup failed")
		return models.Session{}, fmt.Errorf("session lookup failed: %w", err)
	}

	return session, nil
}

// CloseSession destroys the session row. Repeating the call for an already
// destroyed session succeeds.
func (s *sessionService) CloseSession(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	if sessionID == "" {
		return nil
	}

	if err := s.sessionRepository.DeleteSession(ctx, sessionID); err != nil {
		log.Err(err).Str("session_id", sessionID).Msg("session destruction failed")
		return fmt.Errorf("session destruction failed: %w", err)
	}

	return nil
}

// UpdateLoginDates performs a single shift of the login-date pair: the
// previous last-login becomes the penultimate login and the current time
// becomes the new last-login. The returned account carries both updated
// fields without a second lookup.
func (s *sessionService) UpdateLoginDates(ctx context.Context, account models.UserAccount) (models.UserAccount, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	ultimateLogin, err := s.userAccountRepository.ShiftLoginDates(ctx, account.UserID, now)
	if err != nil {
		log.Err(err).Int64("id", account.UserID).Msg("shifting login dates failed")
		return models.UserAccount{}, fmt.Errorf("shifting login dates failed: %w", err)
	}

	account.LastLogin = &now
	if ultimateLogin.IsZero() {
		account.UltimateLogin = nil
	} else {
		account.UltimateLogin = &ultimateLogin
	}

	return account, nil
}
