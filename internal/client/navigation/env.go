package navigation

// AddressBar exposes the environment's entry URL to the history store. A
// password-reset deep link arrives as a userId/secret parameter pair; the
// store clears it on the first navigation so a stale link cannot be reused.
type AddressBar interface {
	// ResetLink returns the deep-link parameters if both are present.
	ResetLink() (userID, secret string, ok bool)
	// ClearResetLink removes the parameters from the address bar. Must be
	// idempotent.
	ClearResetLink()
}

// Viewport receives the scroll side effect of every navigation.
type Viewport interface {
	ScrollToTop()
}

// QueryAddressBar is an AddressBar backed by startup parameters.
type QueryAddressBar struct {
	userID  string
	secret  string
	cleared bool
}

// NewQueryAddressBar builds an address bar carrying a reset deep link when
// both userID and secret are non-empty.
func NewQueryAddressBar(userID, secret string) *QueryAddressBar {
	return &QueryAddressBar{userID: userID, secret: secret}
}

func (a *QueryAddressBar) ResetLink() (string, string, bool) {
	if a.cleared || a.userID == "" || a.secret == "" {
		return "", "", false
	}
	return a.userID, a.secret, true
}

func (a *QueryAddressBar) ClearResetLink() {
	a.cleared = true
}

// NopViewport ignores scroll requests. Used where no viewport exists.
type NopViewport struct{}

func (NopViewport) ScrollToTop() {}
