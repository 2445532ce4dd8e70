package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:                  "Community Map",
			TokenSignKey:          "secret",
			TokenIssuer:           "community-map",
			SessionCookie:         "communitymap_session",
			SessionDuration:       24 * time.Hour,
			PasswordResetDuration: 30 * time.Minute,
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/communitymap"}},
		Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: 30 * time.Second},
	}
}

func TestValidate_Valid(t *testing.T) {
	require.NoError(t, validConfig().validate())
}

func TestValidate_MissingDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_MissingAddress(t *testing.T) {
	cfg := validConfig()
	cfg.Server.HTTPAddress = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}

func TestValidate_MissingSignKey(t *testing.T) {
	cfg := validConfig()
	cfg.App.TokenSignKey = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}

func TestValidate_MailEnabledWithoutSMTP(t *testing.T) {
	cfg := validConfig()
	cfg.Mail.Enabled = true

	assert.ErrorIs(t, cfg.validate(), ErrInvalidMailConfigs)
}

func TestValidate_MailDisabledIgnoresSMTP(t *testing.T) {
	cfg := validConfig()
	cfg.Mail.Enabled = false
	cfg.Mail.Host = ""

	require.NoError(t, cfg.validate())
}

func TestDefaultConfig_FillsGaps(t *testing.T) {
	defaults := defaultConfig()

	assert.Equal(t, "communitymap_session", defaults.App.SessionCookie)
	assert.Equal(t, 30*time.Minute, defaults.App.PasswordResetDuration)
	assert.Equal(t, 24*time.Hour, defaults.App.SessionDuration)
	assert.Equal(t, 10*time.Minute, defaults.Workers.PurgeInterval)
}
