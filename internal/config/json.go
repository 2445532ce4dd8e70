package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON decoding. Duration
// fields use the local [Duration] wrapper so values can be written as "30m"
// strings instead of nanosecond integers.
type StructuredJSONConfig struct {
	App struct {
		Name                  string   `json:"name"`
		ClientURL             string   `json:"client_url"`
		TokenSignKey          string   `json:"token_sign_key"`
		TokenIssuer           string   `json:"token_issuer"`
		SessionCookie         string   `json:"session_cookie"`
		SessionDuration       Duration `json:"session_duration"`
		PasswordResetDuration Duration `json:"password_reset_duration"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Mail struct {
		Enabled  bool   `json:"enabled"`
		Host     string `json:"smtp_host"`
		Port     int    `json:"smtp_port"`
		Username string `json:"smtp_username"`
		Password string `json:"smtp_password"`
		From     string `json:"smtp_from"`
	} `json:"mail,omitempty"`

	Workers struct {
		PurgeInterval Duration `json:"purge_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:                  jsonCfg.App.Name,
			ClientURL:             jsonCfg.App.ClientURL,
			TokenSignKey:          jsonCfg.App.TokenSignKey,
			TokenIssuer:           jsonCfg.App.TokenIssuer,
			SessionCookie:         jsonCfg.App.SessionCookie,
			SessionDuration:       time.Duration(jsonCfg.App.SessionDuration),
			PasswordResetDuration: time.Duration(jsonCfg.App.PasswordResetDuration),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Mail: Mail{
			Enabled:  jsonCfg.Mail.Enabled,
			Host:     jsonCfg.Mail.Host,
			Port:     jsonCfg.Mail.Port,
			Username: jsonCfg.Mail.Username,
			Password: jsonCfg.Mail.Password,
			From:     jsonCfg.Mail.From,
		},
		Workers: Workers{
			PurgeInterval: time.Duration(jsonCfg.Workers.PurgeInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
