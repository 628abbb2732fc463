// Package config loads runtime configuration for the realhub client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string        base URL of the identity service
//	-d string        sqlite DSN of the local cache database
//	-s string        session identifier to resume
//	-host string     app host registered with the identity provider
//	-uid string      password-recovery user id
//	-secret string   password-recovery secret
//	-t int           identity request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for timeouts, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "identity_endpoint": "http://127.0.0.1:8080",
//	  "database_dsn": "realhub.db",
//	  "session_id": "sess-42",
//	  "app_host": "localhost",
//	  "provider_timeout": "10s"
//	}
//
// Recovery-link parameters (-uid, -secret) are flag-only: they arrive with a
// particular invocation, never from a config file.
package config
