package cli

import (
	"context"
	"fmt"

	"github.com/andrisk/realhub/internal/client/guard"
	"github.com/andrisk/realhub/internal/client/models"
)

// render shows the current view. It is called after every navigation or
// session change, and is where the access policy bites: a page the current
// user may not see is swapped in place for its redirect target before
// anything is printed.
func (a *App) render(ctx context.Context) {
	if a.session.Checking() {
		printlnFn("Checking session...")
		return
	}
	if msg := a.session.ConnectionError(); msg != "" {
		printlnFn(msg)
		printlnFn("Type 'retry' to try again.")
		return
	}

	entry := a.nav.Current()
	if target, denied := guard.Resolve(a.session.CurrentUser(), entry.Page); denied {
		a.nav.Replace(ctx, target, nil)
		entry = a.nav.Current()
	}

	a.renderPage(ctx, entry)
}

func (a *App) renderPage(ctx context.Context, entry models.HistoryEntry) {
	switch entry.Page {
	case models.PageHome:
		printlnFn("Welcome to RealHub. Type 'listings' to browse properties.")
	case models.PageListings:
		_ = a.Listings(ctx)
	case models.PageListingDetail:
		a.renderListingDetail(ctx, entry)
	case models.PageLogin:
		printlnFn("Sign in: type 'login' to enter your credentials.")
	case models.PageRegister:
		printlnFn("Create an account: type 'register'.")
	case models.PageRegisterSuccess:
		printlnFn("Account created. You are signed in.")
	case models.PageForgotPassword:
		printlnFn("Password recovery: enter your email with 'forgot <email>'.")
	case models.PageResetPassword:
		params, ok := entry.Data.(models.ResetPasswordParams)
		if !ok {
			printlnFn("Reset link is missing or incomplete.")
			return
		}
		printlnFn(fmt.Sprintf("Resetting password for user %s.", params.UserID))
	case models.PageDashboard:
		a.renderDashboard(ctx)
	case models.PageAdminDashboard:
		printlnFn("Admin dashboard: user and listing management.")
	case models.PageProfile:
		a.renderProfile()
	case models.PageContact:
		printlnFn("Contact us: type 'contact' to send a message.")
	case models.PageAbout:
		printlnFn("RealHub is a marketplace for real-estate listings.")
	default:
		printlnFn("Page:", string(entry.Page))
	}
}

func (a *App) renderListingDetail(ctx context.Context, entry models.HistoryEntry) {
	ref, ok := entry.Data.(models.ListingRef)
	if !ok {
		printlnFn("Listing detail: no property selected.")
		return
	}
	properties, err := a.properties.List(ctx)
	if err != nil {
		printlnFn("Cannot load listings:", err.Error())
		return
	}
	for _, p := range properties {
		if p.ID == ref.PropertyID {
			printlnFn(fmt.Sprintf("%s (%d EUR)", p.Title, p.Price))
			if name := a.locationNames(ctx)[p.LocationID]; name != "" {
				printlnFn("Location:", name)
			}
			if p.Description != "" {
				printlnFn(p.Description)
			}
			return
		}
	}
	printlnFn("Property not found:", ref.PropertyID)
}

func (a *App) renderDashboard(ctx context.Context) {
	user := a.session.CurrentUser()
	printlnFn(fmt.Sprintf("Dashboard — %s (%s, %s plan)", user.DisplayName, user.Role, user.SubscriptionTier))

	messages, err := a.messages.List(ctx)
	if err != nil {
		printlnFn("Cannot load messages:", err.Error())
		return
	}
	printlnFn(fmt.Sprintf("You have %d message(s).", len(messages)))

	if user.Role == models.RoleAgent {
		a.renderAgentRating(ctx, user.ID)
	}
}

// renderAgentRating prints the agent's cached rating summary, if any.
func (a *App) renderAgentRating(ctx context.Context, agentID string) {
	ratings, err := a.ratings.List(ctx)
	if err != nil {
		printlnFn("Cannot load ratings:", err.Error())
		return
	}
	var sum, count int
	for _, r := range ratings {
		if r.AgentID == agentID {
			sum += r.Stars
			count++
		}
	}
	if count == 0 {
		return
	}
	printlnFn(fmt.Sprintf("Rating: %.1f stars over %d review(s).", float64(sum)/float64(count), count))
}

func (a *App) renderProfile() {
	user := a.session.CurrentUser()
	printlnFn("Name: ", user.DisplayName)
	printlnFn("Email:", user.Email)
	if user.Phone != "" {
		printlnFn("Phone:", user.Phone)
	}
	if user.Badge != "" {
		printlnFn("Badge:", user.Badge)
	}
}
