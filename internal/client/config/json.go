package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/andrisk/realhub/internal/flagx"
	"github.com/andrisk/realhub/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify timeouts either as
// strings like "10s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	IdentityEndpoint string         `json:"identity_endpoint"`
	DatabaseDSN      string         `json:"database_dsn"`
	SessionID        string         `json:"session_id"`
	AppHost          string         `json:"app_host"`
	ProviderTimeout  timex.Duration `json:"provider_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones. Recovery-link parameters never come from JSON;
// they are per-invocation and flag-only.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.IdentityEndpoint != "" {
		cfg.IdentityEndpoint = jc.IdentityEndpoint
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SessionID != "" {
		cfg.SessionID = jc.SessionID
	}
	if jc.AppHost != "" {
		cfg.AppHost = jc.AppHost
	}
	if jc.ProviderTimeout.Duration != 0 {
		cfg.ProviderTimeout = time.Duration(jc.ProviderTimeout.Duration)
	}
}
