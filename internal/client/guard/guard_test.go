package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrisk/realhub/internal/client/models"
)

func user(role models.Role) *models.UserIdentity {
	return &models.UserIdentity{ID: "u1", Email: "u@realhub.example", Role: role}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name         string
		user         *models.UserIdentity
		page         models.Page
		wantRedirect models.Page
		wantDenied   bool
	}{
		{name: "anonymous on public page", user: nil, page: models.PageHome},
		{name: "anonymous on listings", user: nil, page: models.PageListings},
		{name: "anonymous on login", user: nil, page: models.PageLogin},
		{
			name: "anonymous on protected page",
			user: nil, page: models.PageDashboard,
			wantRedirect: models.PageLogin, wantDenied: true,
		},
		{
			name: "visitor on admin dashboard",
			user: user(models.RoleVisitor), page: models.PageAdminDashboard,
			wantRedirect: models.PageHome, wantDenied: true,
		},
		{
			name: "agent on admin dashboard",
			user: user(models.RoleAgent), page: models.PageAdminDashboard,
			wantRedirect: models.PageHome, wantDenied: true,
		},
		{name: "admin on admin dashboard", user: user(models.RoleAdmin), page: models.PageAdminDashboard},
		{name: "agent on dashboard", user: user(models.RoleAgent), page: models.PageDashboard},
		{
			name: "visitor on dashboard",
			user: user(models.RoleVisitor), page: models.PageDashboard,
			wantRedirect: models.PageHome, wantDenied: true,
		},
		{name: "visitor on profile", user: user(models.RoleVisitor), page: models.PageProfile},
		{
			name: "logged-in visitor on login page",
			user: user(models.RoleVisitor), page: models.PageLogin,
			wantRedirect: models.PageListings, wantDenied: true,
		},
		{
			name: "logged-in agent on register page",
			user: user(models.RoleAgent), page: models.PageRegister,
			wantRedirect: models.PageDashboard, wantDenied: true,
		},
		{name: "logged-in user may finish a reset", user: user(models.RoleVisitor), page: models.PageResetPassword},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			redirect, denied := Resolve(tt.user, tt.page)
			assert.Equal(t, tt.wantDenied, denied)
			assert.Equal(t, tt.wantRedirect, redirect)
		})
	}
}

func TestLandingPage(t *testing.T) {
	assert.Equal(t, models.PageDashboard, LandingPage(models.RoleAgent))
	assert.Equal(t, models.PageDashboard, LandingPage(models.RoleAdmin))
	assert.Equal(t, models.PageListings, LandingPage(models.RoleVisitor))
}
