package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// String returns the address in "host:port" form. Implements flag.Value.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses a "host:port" string into the receiver. Implements flag.Value.
func (a *NetAddress) Set(value string) error {
	host, portStr, err := net.SplitHostPort(value)
	if err != nil {
		return errors.New("need address in a form host:port")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return errors.New("port must be an integer")
	}

	a.Host = host
	a.Port = port
	return nil
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-app-name application name used in notifications
//	-client-url public base URL of the client application
//	-token-sign-key session token signing key
//	-token-issuer session token issuer name
//	-session-cookie session cookie name
//	-session-duration session lifetime (e.g., "24h")
//	-reset-duration password reset validity window (e.g., "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-mail-enabled whether outbound mail is delivered
//	-purge-interval expired reset purge interval (e.g., "10m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var appName string
	var clientURL string
	var tokenSignKey string
	var tokenIssuer string
	var sessionCookie string
	var sessionDuration time.Duration
	var resetDuration time.Duration
	var requestTimeout time.Duration
	var mailEnabled bool
	var purgeInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&appName, "app-name", "", "Application name")
	flag.StringVar(&clientURL, "client-url", "", "Client application base URL")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	flag.StringVar(&sessionCookie, "session-cookie", "", "Session cookie name")
	flag.DurationVar(&sessionDuration, "session-duration", 0, "Session duration (e.g., 24h)")
	flag.DurationVar(&resetDuration, "reset-duration", 0, "Password reset validity window (e.g., 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.BoolVar(&mailEnabled, "mail-enabled", false, "Deliver outbound mail")
	flag.DurationVar(&purgeInterval, "purge-interval", 0, "Expired reset purge interval (e.g., 10m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Name:                  appName,
			ClientURL:             clientURL,
			TokenSignKey:          tokenSignKey,
			TokenIssuer:           tokenIssuer,
			SessionCookie:         sessionCookie,
			SessionDuration:       sessionDuration,
			PasswordResetDuration: resetDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Mail: Mail{
			Enabled: mailEnabled,
		},
		Workers: Workers{
			PurgeInterval: purgeInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
