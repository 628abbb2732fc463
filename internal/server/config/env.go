package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig mirrors Config for environment-variable parsing. Variables use
// the IDENTITYD_ prefix, e.g. IDENTITYD_DATABASE_DSN.
type EnvConfig struct {
	EndpointAddr            string        `envconfig:"ENDPOINT_ADDR"`
	DatabaseDSN             string        `envconfig:"DATABASE_DSN"`
	SecretKey               string        `envconfig:"SECRET_KEY"`
	SessionValidityDuration time.Duration `envconfig:"SESSION_VALIDITY_DURATION"`
	AllowedHosts            []string      `envconfig:"ALLOWED_HOSTS"`
	GoogleClientID          string        `envconfig:"GOOGLE_CLIENT_ID"`
	GoogleRedirectURL       string        `envconfig:"GOOGLE_REDIRECT_URL"`
}

// parseEnv overlays Config with values from the environment. Unset
// variables leave the corresponding fields untouched.
func parseEnv(config *Config) {
	var ec EnvConfig
	if err := envconfig.Process("IDENTITYD", &ec); err != nil {
		panic(err)
	}

	if ec.EndpointAddr != "" {
		config.EndpointAddr = ec.EndpointAddr
	}
	if ec.DatabaseDSN != "" {
		config.DatabaseDSN = ec.DatabaseDSN
	}
	if ec.SecretKey != "" {
		config.SecretKey = ec.SecretKey
	}
	if ec.SessionValidityDuration != 0 {
		config.SessionValidityDuration = ec.SessionValidityDuration
	}
	if len(ec.AllowedHosts) > 0 {
		config.AllowedHosts = ec.AllowedHosts
	}
	if ec.GoogleClientID != "" {
		config.GoogleClientID = ec.GoogleClientID
	}
	if ec.GoogleRedirectURL != "" {
		config.GoogleRedirectURL = ec.GoogleRedirectURL
	}
}
