package cli

import (
	"context"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email and password and creates an account.
// On success the user is logged in; the session service replaces the
// registration form with the landing page, so "back" never returns to it.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Register(ctx, name, email, password); err != nil {
		return err
	}

	printlnFn("Account created. You are signed in.")
	a.render(ctx)
	return nil
}

// Login prompts for credentials and authenticates. The post-login redirect
// to the user's landing page happens inside the session service; here we
// only re-render whatever page we ended up on.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		return err
	}

	a.render(ctx)
	return nil
}

// Logout signs the user out. The current page may no longer be allowed for
// an anonymous visitor, so render runs the access policy again.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.render(ctx)
	return nil
}

// Retry re-runs the session check after a connectivity failure.
func (a *App) Retry(ctx context.Context) error {
	a.session.CheckSession(ctx)
	a.render(ctx)
	return nil
}

// WhoAmI prints the signed-in user, or a hint when anonymous.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		printlnFn("Not signed in. Type 'login' or 'register'.")
		return nil
	}
	printlnFn(user.DisplayName, "<"+user.Email+">", string(user.Role), string(user.SubscriptionTier))
	return nil
}
