package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/andrisk/realhub/internal/flagx"
	"github.com/andrisk/realhub/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "24h" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its fields are copied into the runtime Config
// struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddr            string         `json:"endpoint_addr"`
	DatabaseDSN             string         `json:"database_dsn"`
	SecretKey               string         `json:"secret_key"`
	SessionValidityDuration timex.Duration `json:"session_validity_duration"`
	AllowedHosts            []string       `json:"allowed_hosts"`
	GoogleClientID          string         `json:"google_client_id"`
	GoogleRedirectURL       string         `json:"google_redirect_url"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The lookup order for the JSON file path is:
//
//	The -c or -config command-line flags.
//	If it is not set, no JSON file is loaded.
//
// If the file path is found, parseJson attempts to read and unmarshal it
// into a JsonConfig. Non-zero values are copied into the target Config.
// If the file cannot be read or contains invalid JSON, the function panics.
func parseJson(config *Config) {
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

	if jc.EndpointAddr != "" {
		config.EndpointAddr = jc.EndpointAddr
	}
	if jc.DatabaseDSN != "" {
		config.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SecretKey != "" {
		config.SecretKey = jc.SecretKey
	}
	if jc.SessionValidityDuration.Duration != 0 {
		config.SessionValidityDuration = time.Duration(jc.SessionValidityDuration.Duration)
	}
	if len(jc.AllowedHosts) > 0 {
		config.AllowedHosts = jc.AllowedHosts
	}
	if jc.GoogleClientID != "" {
		config.GoogleClientID = jc.GoogleClientID
	}
	if jc.GoogleRedirectURL != "" {
		config.GoogleRedirectURL = jc.GoogleRedirectURL
	}
}
