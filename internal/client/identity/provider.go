// Package identity defines the single identity-provider interface the app
// consumes, plus its HTTP adapter. The provider is the source of truth for
// "who is logged in now"; the app only caches identities locally.
package identity

import (
	"context"
	"errors"
)

var (
	// ErrNotAuthenticated reports that no session exists. This is expected
	// control flow, not a failure; callers branch on it with errors.Is.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrUnavailable reports that the provider could not be reached at the
	// transport level (the "failed to fetch" condition). Recoverable by retry.
	ErrUnavailable = errors.New("identity provider unreachable")
)

// Account is the provider's native account object.
type Account struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Provider is the capability set the app needs from an identity provider.
//
// Contract:
//   - CurrentAccount: resolve the account behind the current session, or
//     ErrNotAuthenticated when there is none.
//   - CreateEmailSession: log in with email/password.
//   - CreateAccount: register a new account.
//   - DeleteCurrentSession: log out.
//   - GoogleOAuthURL: obtain the redirect URL for Google OAuth login.
//   - Host: the provider's hostname, for user-facing connectivity messages.
//
// All methods must honor context cancellation/timeouts.
type Provider interface {
	CurrentAccount(ctx context.Context) (*Account, error)
	CreateEmailSession(ctx context.Context, email, password string) error
	CreateAccount(ctx context.Context, email, password, name string) (*Account, error)
	DeleteCurrentSession(ctx context.Context) error
	GoogleOAuthURL(ctx context.Context) (string, error)
	Host() string
	Close() error
}
