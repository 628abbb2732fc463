// Package services contains application services for the realhub client.
// This file defines the session service: bootstrapping "who is the current
// user" against the remote identity provider, reconciling the result with
// the locally cached known-users directory, and the post-login redirect.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/andrisk/realhub/internal/client/guard"
	"github.com/andrisk/realhub/internal/client/identity"
	"github.com/andrisk/realhub/internal/client/models"
	"github.com/andrisk/realhub/internal/client/navigation"
	"github.com/andrisk/realhub/internal/client/repositories/directory"
	"github.com/andrisk/realhub/internal/common"
	"github.com/andrisk/realhub/internal/logging"
)

// SessionService resolves and owns the current user identity.
//
// Contract:
//   - CheckSession: query the provider, reconcile against the directory,
//     update current identity and connection-error state. Safe to call
//     repeatedly; failures never propagate, they become state.
//   - Login / Register: form-level auth actions; their failures propagate
//     to the calling form for display.
//   - Logout: remote session deletion; local sign-out is forced even when
//     the remote call fails.
type SessionService struct {
	provider identity.Provider
	users    *directory.Store
	nav      *navigation.History
	log      logging.Logger
	appHost  string

	mu               sync.Mutex
	current          *models.UserIdentity
	checking         bool
	connectionError  string
	initialCheckDone bool
}

// NewSessionService constructs the service. appHost is the host the app is
// served from; it appears in the connectivity message because the provider
// rejects requests from unregistered hosts.
func NewSessionService(provider identity.Provider, users *directory.Store, nav *navigation.History, appHost string, log logging.Logger) *SessionService {
	return &SessionService{provider: provider, users: users, nav: nav, appHost: appHost, log: log}
}

// CheckSession resolves the current identity. While it runs, Checking()
// reports true so the caller can show a loading state instead of the app.
// Concurrent calls race benignly: the last resolved result wins.
func (s *SessionService) CheckSession(ctx context.Context) {
	s.mu.Lock()
	s.checking = true
	s.connectionError = ""
	wasLoggedOut := s.current == nil
	redirectArmed := s.initialCheckDone
	s.mu.Unlock()

	resolved, connErr := s.resolve(ctx)

	s.mu.Lock()
	s.current = resolved
	s.connectionError = connErr
	s.checking = false
	s.initialCheckDone = true
	fireRedirect := redirectArmed && wasLoggedOut && resolved != nil
	s.mu.Unlock()

	if fireRedirect {
		// one-shot: only the transition from "no identity" to "identity",
		// never reloads or profile updates while already logged in
		s.nav.Replace(ctx, guard.LandingPage(resolved.Role), nil)
	}
}

// resolve performs the provider call and directory reconciliation. It
// returns the identity (nil when logged out or failed) and the
// connection-error text (empty on success or clean logged-out).
func (s *SessionService) resolve(ctx context.Context) (*models.UserIdentity, string) {
	account, err := s.provider.CurrentAccount(ctx)
	if err != nil {
		if errors.Is(err, identity.ErrNotAuthenticated) {
			return nil, ""
		}
		if errors.Is(err, identity.ErrUnavailable) {
			s.log.Warn(ctx, "identity provider unreachable", "error", err)
			return nil, fmt.Sprintf(
				"Cannot connect to the identity service at %s. Check your network, make sure %s is registered as an allowed host with the provider, then retry.",
				s.provider.Host(), s.appHost)
		}
		s.log.Error(ctx, "session check failed", "error", err)
		return nil, err.Error()
	}

	user, err := s.reconcile(ctx, account)
	if err != nil {
		s.log.Error(ctx, "reconciliation failed", "error", err)
		return nil, err.Error()
	}
	return user, ""
}

// reconcile finds the directory entry matching the account's email, or
// synthesizes a new visitor record and appends it. Email is the stable
// correlation field: the provider's native account ID is distinct from the
// directory's key.
func (s *SessionService) reconcile(ctx context.Context, account *identity.Account) (*models.UserIdentity, error) {
	user, err := s.users.FindByEmail(ctx, account.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	fresh := models.UserIdentity{
		ID:               uuid.NewString(),
		DisplayName:      account.Name,
		Email:            account.Email,
		Role:             models.RoleVisitor,
		SubscriptionTier: models.TierFree,
		Phone:            account.Phone,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.users.Append(ctx, fresh); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "new user cached", "email", fresh.Email)
	return &fresh, nil
}

// SkipInitialCheck marks the bootstrap check as complete without calling
// the provider. Used when the app boots into the password-reset view: a
// reset flow must not force a login check.
func (s *SessionService) SkipInitialCheck() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initialCheckDone = true
}

// Login authenticates with email/password and re-resolves the session.
// Errors propagate to the calling form.
func (s *SessionService) Login(ctx context.Context, email, password string) error {
	if err := s.provider.CreateEmailSession(ctx, email, password); err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	s.CheckSession(ctx)
	return nil
}

// Register creates an account, logs it in, and re-resolves the session.
func (s *SessionService) Register(ctx context.Context, name, email, password string) error {
	if _, err := s.provider.CreateAccount(ctx, email, password, name); err != nil {
		return fmt.Errorf("registration error: %w", err)
	}
	return s.Login(ctx, email, password)
}

// Logout deletes the remote session and clears the local identity. A
// failed remote call is logged but never leaves the user locally signed
// in against their will.
func (s *SessionService) Logout(ctx context.Context) {
	if err := s.provider.DeleteCurrentSession(ctx); err != nil {
		s.log.Error(ctx, "remote logout failed, forcing local sign-out", "error", err)
	}
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// CurrentUser returns the resolved identity, or nil when logged out.
func (s *SessionService) CurrentUser() *models.UserIdentity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// ConnectionError returns the user-facing connectivity message, or empty.
func (s *SessionService) ConnectionError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connectionError
}

// Checking reports whether a session check is in flight.
func (s *SessionService) Checking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checking
}

// InitialCheckDone reports whether the bootstrap check has completed
// (or was deliberately skipped).
func (s *SessionService) InitialCheckDone() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialCheckDone
}
