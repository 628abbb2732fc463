// Package cli provides the interactive realhub command-line client.
//
// It wires configuration, local storage, the identity provider, navigation
// history, and an interactive REPL that browses the marketplace the way the
// web app does: pages live on a history stack, moving back and forward
// replays it, and an access policy guards every view before it is shown.
//
// Key features:
//   - Login / Register / Logout against the identity service
//   - Session bootstrap with a retryable connection-error state
//   - Page navigation: go, open, back, forward
//   - Cached listings browsing and agent contact messages
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, render, and runREPL for details.
package cli
