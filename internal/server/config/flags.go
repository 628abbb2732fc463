package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/andrisk/realhub/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   HMAC secret key for session tokens
//	-t int      session token validity, minutes
//	-w string   comma-separated list of allowed app hosts
//	-g string   Google OAuth2 client id
//	-r string   Google OAuth2 redirect URL
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - Duration flags are accepted as integers in minutes and then converted
//     to time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-w", "-g", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionValidityDuration := fs.Int("t", int(config.SessionValidityDuration.Minutes()), "session_validity_duration (in minutes)")
	allowedHosts := fs.String("w", strings.Join(config.AllowedHosts, ","), "comma-separated allowed app hosts")

	fs.StringVar(&config.GoogleClientID, "g", config.GoogleClientID, "Google OAuth2 client id")
	fs.StringVar(&config.GoogleRedirectURL, "r", config.GoogleRedirectURL, "Google OAuth2 redirect URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionValidityDuration = time.Duration(*sessionValidityDuration) * time.Minute
	config.AllowedHosts = splitHosts(*allowedHosts)
}

func splitHosts(s string) []string {
	parts := strings.Split(s, ",")
	hosts := make([]string, 0, len(parts))
	for _, p := range parts {
		if h := strings.TrimSpace(p); h != "" {
			hosts = append(hosts, h)
		}
	}
	return hosts
}
