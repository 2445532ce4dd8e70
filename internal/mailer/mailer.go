package mailer

import (
	"context"
	"fmt"

	"github.com/datasciencemap/community-map/internal/config"
	"github.com/datasciencemap/community-map/internal/logger"
	"github.com/datasciencemap/community-map/internal/service"
	"github.com/datasciencemap/community-map/models"
	"gopkg.in/gomail.v2"
)

// Mailer delivers account-lifecycle mail over SMTP. It implements
// [service.Notifier].
//
// When the mail subsystem is disabled in configuration the Mailer degrades
// to a logging no-op, so development and test environments never need a
// reachable SMTP server.
type Mailer struct {
	cfg       config.Mail
	appName   string
	clientURL string
	dialer    *gomail.Dialer
	logger    *logger.Logger
}

// NewMailer constructs a Mailer from the mail and application configuration.
// The dialer is only created when mail is enabled.
func NewMailer(mailCfg config.Mail, appCfg config.App, log *logger.Logger) *Mailer {
	m := &Mailer{
		cfg:       mailCfg,
		appName:   appCfg.Name,
		clientURL: appCfg.ClientURL,
		logger:    log,
	}

	if mailCfg.Enabled {
		m.dialer = gomail.NewDialer(mailCfg.Host, mailCfg.Port, mailCfg.Username, mailCfg.Password)
	} else {
		log.Info().Msg("mail delivery disabled, notifications will be logged only")
	}

	return m
}

// compile-time interface check
var _ service.Notifier = (*Mailer)(nil)

// SendPasswordResetLink delivers the reset link for the given ticket to the
// account's email address.
func (m *Mailer) SendPasswordResetLink(ctx context.Context, account models.UserAccount, reset models.PasswordReset) error {
	body, err := renderPasswordResetBody(passwordResetTemplateData{
		Name:      account.Name,
		AppName:   m.appName,
		ResetLink: m.resetLink(reset.Key),
	})
	if err != nil {
		return fmt.Errorf("rendering password reset mail failed: %w", err)
	}

	subject := fmt.Sprintf("%s - Password Reset", m.appName)
	return m.send(ctx, account.Email, subject, body)
}

// SendPasswordChanged notifies the account that its password was changed
// through the reset flow.
func (m *Mailer) SendPasswordChanged(ctx context.Context, account models.UserAccount) error {
	body, err := renderPasswordChangedBody(passwordChangedTemplateData{
		Name:      account.Name,
		AppName:   m.appName,
		ClientURL: m.clientURL,
	})
	if err != nil {
		return fmt.Errorf("rendering password changed mail failed: %w", err)
	}

	subject := fmt.Sprintf("%s - Password Changed", m.appName)
	return m.send(ctx, account.Email, subject, body)
}

// resetLink builds the client URL the recipient follows to consume the
// reset. Only the single-use key travels in the link, never the internal id.
func (m *Mailer) resetLink(key string) string {
	return fmt.Sprintf("%s/#reset-password?key=%s", m.clientURL, key)
}

// send dispatches one HTML message, or logs it when mail is disabled.
func (m *Mailer) send(ctx context.Context, to, subject, htmlBody string) error {
	log := logger.FromContext(ctx)

	if !m.cfg.Enabled {
		log.Info().Str("subject", subject).Msg("mail delivery disabled, skipping send")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Err(err).Str("subject", subject).Msg("mail delivery failed")
		return fmt.Errorf("mail delivery failed: %w", err)
	}

	return nil
}
