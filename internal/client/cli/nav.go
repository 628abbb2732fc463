package cli

import (
	"context"
	"fmt"

	"github.com/andrisk/realhub/internal/client/models"
)

// Go navigates to a page by its name (e.g. "listings", "profile").
// The reset-password view is excluded: it is only reachable through a
// recovery link, never by typing its name.
func (a *App) Go(ctx context.Context, page string) error {
	p := models.Page(page)
	if !p.Valid() || p == models.PageResetPassword {
		return fmt.Errorf("unknown page: %s", page)
	}

	a.nav.Navigate(ctx, p, nil)
	a.render(ctx)
	return nil
}

// Open pushes a listing's detail page with the property reference attached.
func (a *App) Open(ctx context.Context, id string) error {
	a.nav.Navigate(ctx, models.PageListingDetail, models.ListingRef{PropertyID: id})
	a.render(ctx)
	return nil
}

// Back moves one entry back in history, when possible.
func (a *App) Back(ctx context.Context) error {
	if !a.nav.CanGoBack() {
		printlnFn("Already at the oldest page.")
		return nil
	}
	a.nav.GoBack(ctx)
	a.render(ctx)
	return nil
}

// Forward moves one entry forward in history, when possible.
func (a *App) Forward(ctx context.Context) error {
	if !a.nav.CanGoForward() {
		printlnFn("No forward history.")
		return nil
	}
	a.nav.GoForward(ctx)
	a.render(ctx)
	return nil
}
