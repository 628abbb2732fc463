package config

import "time"

// Config holds runtime settings for the realhub client.
//
// Fields:
//   - IdentityEndpoint: base URL of the identity service REST API.
//   - DatabaseDSN: sqlite DSN for the local cache database.
//   - SessionID: identifier of the current app session; entries in the
//     session-scoped store are wiped when it changes. Empty means a fresh
//     random ID is generated on start.
//   - AppHost: host this app instance presents to the identity provider.
//   - ResetUserID / ResetSecret: password-recovery link parameters, when
//     the client was started from a recovery link.
//   - ProviderTimeout: per-request timeout for identity API calls.
type Config struct {
	IdentityEndpoint string
	DatabaseDSN      string
	SessionID        string
	AppHost          string
	ResetUserID      string
	ResetSecret      string
	ProviderTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.IdentityEndpoint = "http://127.0.0.1:8080"
	c.DatabaseDSN = "realhub.db"
	c.AppHost = "localhost"
	c.ProviderTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
