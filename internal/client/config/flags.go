package config

import (
	"flag"
	"os"
	"time"

	"github.com/andrisk/realhub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string        base URL of the identity service
//	-d string        sqlite DSN of the local cache database
//	-s string        session identifier to resume
//	-host string     app host registered with the identity provider
//	-uid string      password-recovery user id (from the recovery link)
//	-secret string   password-recovery secret (from the recovery link)
//	-t int           identity request timeout in seconds
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-host", "-uid", "-secret", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.IdentityEndpoint, "a", cfg.IdentityEndpoint, "base URL of the identity service")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "sqlite DSN of the local cache database")
	fs.StringVar(&cfg.SessionID, "s", cfg.SessionID, "session identifier to resume")
	fs.StringVar(&cfg.AppHost, "host", cfg.AppHost, "app host registered with the identity provider")
	fs.StringVar(&cfg.ResetUserID, "uid", cfg.ResetUserID, "password-recovery user id")
	fs.StringVar(&cfg.ResetSecret, "secret", cfg.ResetSecret, "password-recovery secret")
	providerTimeout := fs.Int("t", int(cfg.ProviderTimeout.Seconds()), "identity request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ProviderTimeout = time.Duration(*providerTimeout) * time.Second
}
