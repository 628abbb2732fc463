// Package httpapi exposes the identity service over HTTP/JSON.
//
// Routes:
//
//	POST   /v1/accounts                  — register
//	POST   /v1/sessions/email           — log in with email/password
//	GET    /v1/account                  — current account (authenticated)
//	DELETE /v1/sessions/current         — log out (authenticated)
//	GET    /v1/sessions/oauth2/google   — Google sign-in redirect URL
//
// Errors are returned as {"message": "..."} with a matching status code.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/andrisk/realhub/internal/logging"
	"github.com/andrisk/realhub/internal/server/accounts"
)

type Server struct {
	addr           string
	logger         logging.Logger
	accountService *accounts.Service
	allowedHosts   []string
	httpServer     *http.Server
}

func NewServer(addr string, logger logging.Logger, accountService *accounts.Service, allowedHosts []string) *Server {
	return &Server{
		addr:           addr,
		logger:         logger,
		accountService: accountService,
		allowedHosts:   allowedHosts,
	}
}

// Router builds the route table. Split out of Run so tests can drive the
// handlers through httptest without binding a socket.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.hostCheckMiddleware)

	r.HandleFunc("/v1/accounts", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/v1/sessions/email", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/v1/sessions/oauth2/google", s.handleGoogleOAuthURL).Methods(http.MethodGet)

	authed := r.NewRoute().Subrouter()
	authed.Use(s.authMiddleware)
	authed.HandleFunc("/v1/account", s.handleCurrentAccount).Methods(http.MethodGet)
	authed.HandleFunc("/v1/sessions/current", s.handleLogout).Methods(http.MethodDelete)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	s.logger.Info(ctx, "http server listening", "addr", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}
