package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/andrisk/realhub/internal/client/config"
	"github.com/andrisk/realhub/internal/client/identity"
	"github.com/andrisk/realhub/internal/client/models"
	"github.com/andrisk/realhub/internal/client/navigation"
	"github.com/andrisk/realhub/internal/client/repositories/catalog"
	"github.com/andrisk/realhub/internal/client/repositories/directory"
	"github.com/andrisk/realhub/internal/client/services"
	"github.com/andrisk/realhub/internal/client/storage"
	"github.com/andrisk/realhub/internal/common"
	"github.com/andrisk/realhub/internal/logging"
)

// App wires the client together: local stores, identity provider,
// navigation history and session service, plus the interactive loop
// that drives them.
type App struct {
	config     *config.Config
	stores     *storage.Stores
	provider   identity.Provider
	users      *directory.Store
	properties *catalog.Collection[models.Property]
	messages   *catalog.Collection[models.Message]
	locations  *catalog.Collection[models.Location]
	ratings    *catalog.Collection[models.Rating]
	nav        *navigation.History
	session    *services.SessionService
	log        logging.Logger
	reader     *bufio.Reader
}

// NewApp builds the full client from configuration. Start-up order matters:
// the database and session scope come first, then navigation (which may boot
// straight into the password-reset view when the recovery-link parameters are
// present), and finally the session check. The check is skipped when booting
// into password reset; a recovery link must work without a login round-trip.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	sessionID := cfg.SessionID
	if sessionID == "" {
		var err error
		sessionID, err = common.MakeRandHexString(16)
		if err != nil {
			return nil, err
		}
	}

	stores, err := storage.InitDatabase(ctx, cfg.DatabaseDSN, sessionID, log)
	if err != nil {
		return nil, err
	}

	provider, err := identity.NewHTTPProvider(cfg.IdentityEndpoint, cfg.ProviderTimeout)
	if err != nil {
		_ = stores.DB.Close()
		return nil, err
	}

	addr := navigation.NewQueryAddressBar(cfg.ResetUserID, cfg.ResetSecret)
	nav := navigation.New(ctx, stores.Session, addr, navigation.NopViewport{}, log)

	users := directory.NewStore(stores.Local, log)
	session := services.NewSessionService(provider, users, nav, cfg.AppHost, log)

	app := &App{
		config:     cfg,
		stores:     stores,
		provider:   provider,
		users:      users,
		properties: catalog.NewProperties(stores.Local, log),
		messages:   catalog.NewMessages(stores.Local, log),
		locations:  catalog.NewLocations(stores.Local, log),
		ratings:    catalog.NewRatings(stores.Local, log),
		nav:        nav,
		session:    session,
		log:        log,
		reader:     bufio.NewReader(os.Stdin),
	}

	if nav.Current().Page == models.PageResetPassword {
		session.SkipInitialCheck()
	} else {
		session.CheckSession(ctx)
	}

	return app, nil
}

// Run drives the interactive loop until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.render(ctx)
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// Close releases the provider and the local database.
func (a *App) Close() {
	_ = a.provider.Close()
	if err := a.stores.DB.Close(); err != nil {
		a.log.Error(context.Background(), "db close error", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.CurrentUser() != nil
}

// status renders the prompt segment: current page plus the signed-in user.
func (a *App) status() string {
	entry := a.nav.Current()
	if user := a.session.CurrentUser(); user != nil {
		return string(entry.Page) + " " + user.DisplayName
	}
	return string(entry.Page)
}
