package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrisk/realhub/internal/client/config"
	"github.com/andrisk/realhub/internal/client/identity"
	"github.com/andrisk/realhub/internal/client/models"
	"github.com/andrisk/realhub/internal/client/navigation"
	"github.com/andrisk/realhub/internal/client/repositories/catalog"
	"github.com/andrisk/realhub/internal/client/repositories/directory"
	"github.com/andrisk/realhub/internal/client/services"
	"github.com/andrisk/realhub/internal/client/storage"
	"github.com/andrisk/realhub/internal/logging"
)

type stubProvider struct {
	account *identity.Account
}

func (s *stubProvider) CurrentAccount(ctx context.Context) (*identity.Account, error) {
	if s.account == nil {
		return nil, identity.ErrNotAuthenticated
	}
	return s.account, nil
}

func (s *stubProvider) CreateEmailSession(ctx context.Context, email, password string) error {
	s.account = &identity.Account{ID: "acc1", Name: "Tester", Email: email}
	return nil
}

func (s *stubProvider) CreateAccount(ctx context.Context, email, password, name string) (*identity.Account, error) {
	return &identity.Account{ID: "acc1", Name: name, Email: email}, nil
}

func (s *stubProvider) DeleteCurrentSession(ctx context.Context) error {
	s.account = nil
	return nil
}

func (s *stubProvider) GoogleOAuthURL(ctx context.Context) (string, error) { return "", nil }
func (s *stubProvider) Host() string                                       { return "id.example.com" }
func (s *stubProvider) Close() error                                       { return nil }

func newTestApp(t *testing.T, provider identity.Provider) *App {
	t.Helper()
	return newTestAppAt(t, provider, navigation.NewQueryAddressBar("", ""))
}

func newTestAppAt(t *testing.T, provider identity.Provider, addr navigation.AddressBar) *App {
	t.Helper()
	ctx := context.Background()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	stores, err := storage.InitDatabase(ctx, dsn, "sess-1", log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stores.DB.Close() })

	nav := navigation.New(ctx, stores.Session, addr, navigation.NopViewport{}, log)
	users := directory.NewStore(stores.Local, log)
	session := services.NewSessionService(provider, users, nav, "localhost", log)
	if nav.Current().Page == models.PageResetPassword {
		session.SkipInitialCheck()
	} else {
		session.CheckSession(ctx)
	}

	return &App{
		config:     &config.Config{},
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
		reader:     bufio.NewReader(strings.NewReader("")),
	}
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var output []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, fmt.Sprint(arg))
		}
		output = append(output, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &output
}

func TestGo_NavigatesAndRenders(t *testing.T) {
	app := newTestApp(t, &stubProvider{})
	captureOutput(t)

	require.NoError(t, app.Go(context.Background(), "about"))

	assert.Equal(t, models.PageAbout, app.nav.Current().Page)
}

func TestGo_RejectsUnknownAndResetPages(t *testing.T) {
	app := newTestApp(t, &stubProvider{})
	captureOutput(t)

	require.Error(t, app.Go(context.Background(), "nonsense"))
	require.Error(t, app.Go(context.Background(), "resetPassword"))
	assert.Equal(t, models.PageHome, app.nav.Current().Page)
}

func TestGo_ProtectedPageRedirectsAnonymousToLogin(t *testing.T) {
	app := newTestApp(t, &stubProvider{})
	captureOutput(t)

	require.NoError(t, app.Go(context.Background(), "dashboard"))

	// the policy swaps the denied page in place before rendering
	assert.Equal(t, models.PageLogin, app.nav.Current().Page)
}

func TestGo_AdminPageRedirectsVisitorHome(t *testing.T) {
	provider := &stubProvider{account: &identity.Account{ID: "a1", Name: "Vic", Email: "vic@example.com"}}
	app := newTestApp(t, provider)
	captureOutput(t)

	require.NoError(t, app.Go(context.Background(), "adminDashboard"))

	assert.Equal(t, models.PageHome, app.nav.Current().Page)
}

func TestOpen_AttachesListingRef(t *testing.T) {
	app := newTestApp(t, &stubProvider{})
	captureOutput(t)

	require.NoError(t, app.Open(context.Background(), "prop-7"))

	entry := app.nav.Current()
	assert.Equal(t, models.PageListingDetail, entry.Page)
	require.IsType(t, models.ListingRef{}, entry.Data)
	assert.Equal(t, "prop-7", entry.Data.(models.ListingRef).PropertyID)
}

func TestBackForward_RoundTrip(t *testing.T) {
	app := newTestApp(t, &stubProvider{})
	captureOutput(t)

	require.NoError(t, app.Go(context.Background(), "listings"))
	require.NoError(t, app.Go(context.Background(), "about"))

	require.NoError(t, app.Back(context.Background()))
	assert.Equal(t, models.PageListings, app.nav.Current().Page)

	require.NoError(t, app.Forward(context.Background()))
	assert.Equal(t, models.PageAbout, app.nav.Current().Page)
}

func TestListings_PrintsOnlyPublished(t *testing.T) {
	app := newTestApp(t, &stubProvider{})
	out := captureOutput(t)

	require.NoError(t, app.properties.Save(context.Background(), []models.Property{
		{ID: "p1", Title: "Sunny flat", Price: 120000, Published: true},
		{ID: "p2", Title: "Draft house", Price: 90000, Published: false},
	}))

	require.NoError(t, app.Listings(context.Background()))

	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "Sunny flat")
	assert.NotContains(t, joined, "Draft house")
}

func TestRender_ResetLinkBootShowsResetParams(t *testing.T) {
	app := newTestAppAt(t, &stubProvider{}, navigation.NewQueryAddressBar("u1", "s1"))
	out := captureOutput(t)

	require.Equal(t, models.PageResetPassword, app.nav.Current().Page)
	app.render(context.Background())

	assert.Contains(t, strings.Join(*out, "\n"), "Resetting password for user u1.")
}

func TestRender_ListingDetailSurvivesRestart(t *testing.T) {
	app := newTestApp(t, &stubProvider{})
	out := captureOutput(t)
	ctx := context.Background()

	require.NoError(t, app.properties.Save(ctx, []models.Property{
		{ID: "p1", Title: "Sunny flat", Price: 120000, Published: true},
	}))
	require.NoError(t, app.Open(ctx, "p1"))

	// a fresh history over the same session store restores the entry from JSON
	restored := navigation.New(ctx, app.stores.Session, navigation.NewQueryAddressBar("", ""), navigation.NopViewport{}, app.log)
	require.Equal(t, models.PageListingDetail, restored.Current().Page)
	app.nav = restored

	*out = (*out)[:0]
	app.render(ctx)

	assert.Contains(t, strings.Join(*out, "\n"), "Sunny flat (120000 EUR)")
}

func TestListings_IncludesLocationNames(t *testing.T) {
	app := newTestApp(t, &stubProvider{})
	out := captureOutput(t)
	ctx := context.Background()

	require.NoError(t, app.locations.Save(ctx, []models.Location{{ID: "loc1", Name: "Riga"}}))
	require.NoError(t, app.properties.Save(ctx, []models.Property{
		{ID: "p1", Title: "Sunny flat", Price: 120000, LocationID: "loc1", Published: true},
	}))

	require.NoError(t, app.Listings(ctx))

	assert.Contains(t, strings.Join(*out, "\n"), "Sunny flat, Riga")
}

func TestDashboard_ShowsAgentRating(t *testing.T) {
	provider := &stubProvider{}
	app := newTestApp(t, provider)
	out := captureOutput(t)
	ctx := context.Background()

	require.NoError(t, app.users.Append(ctx, models.UserIdentity{
		ID: "agent-1", DisplayName: "Amy", Email: "amy@example.com",
		Role: models.RoleAgent, SubscriptionTier: models.TierFree, CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, app.ratings.Save(ctx, []models.Rating{
		{ID: "r1", AgentID: "agent-1", Stars: 5},
		{ID: "r2", AgentID: "agent-1", Stars: 4},
		{ID: "r3", AgentID: "agent-2", Stars: 1},
	}))

	provider.account = &identity.Account{ID: "acc9", Name: "Amy", Email: "amy@example.com"}
	app.session.CheckSession(ctx)

	*out = (*out)[:0]
	app.renderDashboard(ctx)

	assert.Contains(t, strings.Join(*out, "\n"), "Rating: 4.5 stars over 2 review(s).")
}

func TestLogout_ReappliesPolicyToCurrentPage(t *testing.T) {
	provider := &stubProvider{account: &identity.Account{ID: "a1", Name: "Vic", Email: "vic@example.com"}}
	app := newTestApp(t, provider)
	captureOutput(t)

	require.NoError(t, app.Go(context.Background(), "profile"))
	require.Equal(t, models.PageProfile, app.nav.Current().Page)

	require.NoError(t, app.Logout(context.Background()))

	assert.Equal(t, models.PageLogin, app.nav.Current().Page)
}
