package accounts

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/andrisk/realhub/internal/common"
	"github.com/andrisk/realhub/internal/server/auth"
	"github.com/andrisk/realhub/internal/server/config"
	"github.com/andrisk/realhub/internal/server/models"
	"github.com/andrisk/realhub/internal/server/sessions"
)

type Service struct {
	repo                    Repository
	sessionRepo             sessions.Repository
	jwtSecret               []byte
	sessionValidityDuration time.Duration
	googleClientID          string
	googleRedirectURL       string
}

func NewService(repo Repository, sessionRepo sessions.Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                    repo,
		sessionRepo:             sessionRepo,
		jwtSecret:               []byte(cfg.SecretKey),
		sessionValidityDuration: cfg.SessionValidityDuration,
		googleClientID:          cfg.GoogleClientID,
		googleRedirectURL:       cfg.GoogleRedirectURL,
	}
}

// Register creates an account with a bcrypt-hashed password. A duplicate
// email surfaces as common.ErrorEmailTaken.
func (s *Service) Register(ctx context.Context, email, password, name string) (*models.Account, error) {

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %v", err)
	}

	account := &models.Account{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}

	account, err = s.repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrorEmailTaken) {
			return nil, common.ErrorEmailTaken
		}
		return nil, fmt.Errorf("error creating account: %v", err)
	}

	return account, nil
}

// Login verifies the credentials and issues a session token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)) != nil {
		return "", common.ErrorUnauthorized
	}

	session, err := s.sessionRepo.Create(ctx, account.ID, s.sessionValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	token, err := auth.GenerateToken(account.ID, session.ID, s.jwtSecret, s.sessionValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// CurrentAccount resolves a session token back to its account. The token
// must parse, and its session row must still exist and be unexpired;
// a deleted row means the session was revoked.
func (s *Service) CurrentAccount(ctx context.Context, token string) (*models.Account, error) {

	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	session, err := s.sessionRepo.Find(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if time.Now().After(session.ExpiresAt) {
		return nil, common.ErrSessionExpired
	}

	account, err := s.repo.GetByID(ctx, session.AccountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	return account, nil
}

// Logout revokes the token's session. Revoking an already-revoked token
// is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {

	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return common.ErrorUnauthorized
	}

	if err := s.sessionRepo.Delete(ctx, claims.SessionID); err != nil {
		return common.ErrorInternal
	}

	return nil
}

// GoogleOAuthURL builds the Google sign-in redirect URL from the
// configured client id.
func (s *Service) GoogleOAuthURL() string {
	q := url.Values{}
	q.Set("client_id", s.googleClientID)
	q.Set("redirect_uri", s.googleRedirectURL)
	q.Set("response_type", "code")
	q.Set("scope", "openid email profile")

	return "https://accounts.google.com/o/oauth2/v2/auth?" + q.Encode()
}
