// Package guard holds the pre-render authorization policy: which pages are
// guest-only, which are protected and for whom, and where to send a user
// who is not allowed to see the requested page. Pure logic, no I/O; the
// caller applies the returned redirect as a replacing navigation.
package guard

import "github.com/andrisk/realhub/internal/client/models"

// guestOnly pages are hidden from logged-in users, except resetPassword,
// which stays reachable so an authenticated user can still finish a reset.
var guestOnly = map[models.Page]struct{}{
	models.PageLogin:           {},
	models.PageRegister:        {},
	models.PageRegisterSuccess: {},
	models.PageForgotPassword:  {},
	models.PageResetPassword:   {},
}

// allowedRoles maps each protected page to the roles permitted to see it.
// Pages absent from this map are public.
var allowedRoles = map[models.Page]map[models.Role]struct{}{
	models.PageDashboard: {
		models.RoleAgent: {},
		models.RoleAdmin: {},
	},
	models.PageAdminDashboard: {
		models.RoleAdmin: {},
	},
	models.PageProfile: {
		models.RoleVisitor: {},
		models.RoleAgent:   {},
		models.RoleAdmin:   {},
	},
}

// LandingPage is where a freshly resolved identity gets redirected:
// dashboard for agents and admins, listings for everyone else.
func LandingPage(role models.Role) models.Page {
	if role == models.RoleAgent || role == models.RoleAdmin {
		return models.PageDashboard
	}
	return models.PageListings
}

// Resolve checks whether user may see page. It returns the replacing
// redirect target and true when access is denied; rendering must be
// short-circuited for that cycle.
func Resolve(user *models.UserIdentity, page models.Page) (models.Page, bool) {
	if user != nil {
		if _, guest := guestOnly[page]; guest && page != models.PageResetPassword {
			return LandingPage(user.Role), true
		}
	}

	roles, protected := allowedRoles[page]
	if !protected {
		return "", false
	}
	if user == nil {
		return models.PageLogin, true
	}
	if _, ok := roles[user.Role]; !ok {
		return models.PageHome, true
	}
	return "", false
}
