// Package server initializes and runs the identity service.
// It configures the PostgreSQL storage, handles graceful shutdown, runs the
// expired-session janitor, and starts the HTTP API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/andrisk/realhub/internal/logging"
	"github.com/andrisk/realhub/internal/server/accounts"
	"github.com/andrisk/realhub/internal/server/config"
	"github.com/andrisk/realhub/internal/server/httpapi"
	"github.com/andrisk/realhub/internal/server/shared/db"
)

// janitorInterval is how often expired sessions are purged.
const janitorInterval = 15 * time.Minute

type App struct {
	config         *config.Config
	logger         logging.Logger
	repos          db.RepositoryManager
	accountService *accounts.Service
}

func NewApp(c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	rm, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	as := accounts.NewService(rm.Accounts(), rm.Sessions(), c)

	return &App{config: c, logger: logger, repos: rm, accountService: as}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.accountService, app.config.AllowedHosts)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// startSessionJanitor periodically deletes expired session rows.
func (app *App) startSessionJanitor(ctx context.Context) {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n, err := app.repos.Sessions().DeleteExpired(ctx)
			if err != nil {
				app.logger.Error(ctx, "session cleanup failed", "error", err)
				continue
			}
			if n > 0 {
				app.logger.Info(ctx, "expired sessions removed", "count", n)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startSessionJanitor(ctx)
	}()

	wg.Wait()

	if err := app.repos.Conn().Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
