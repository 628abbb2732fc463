// Package models defines client-side data models used by the realhub app:
// the closed set of page identifiers, navigation history entries with their
// per-page payloads, the resolved user identity, and the locally cached
// marketplace records.
package models

// Page identifies one view of the application. The set is closed; anything
// else found in persisted state is treated as corrupt.
type Page string

const (
	PageHome            Page = "home"
	PageListings        Page = "listings"
	PageListingDetail   Page = "listingDetail"
	PageLogin           Page = "login"
	PageRegister        Page = "register"
	PageRegisterSuccess Page = "registerSuccess"
	PageForgotPassword  Page = "forgotPassword"
	PageResetPassword   Page = "resetPassword"
	PageDashboard       Page = "dashboard"
	PageAdminDashboard  Page = "adminDashboard"
	PageProfile         Page = "profile"
	PageContact         Page = "contact"
	PageAbout           Page = "about"
)

var allPages = map[Page]struct{}{
	PageHome:            {},
	PageListings:        {},
	PageListingDetail:   {},
	PageLogin:           {},
	PageRegister:        {},
	PageRegisterSuccess: {},
	PageForgotPassword:  {},
	PageResetPassword:   {},
	PageDashboard:       {},
	PageAdminDashboard:  {},
	PageProfile:         {},
	PageContact:         {},
	PageAbout:           {},
}

// Valid reports whether p belongs to the closed page set.
func (p Page) Valid() bool {
	_, ok := allPages[p]
	return ok
}
