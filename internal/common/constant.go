// Package common contains shared constants and sentinel errors used across
// realhub components.
package common

// SessionTokenHeaderName is the HTTP header used to carry the session token
// on requests to the identity provider.
const SessionTokenHeaderName = "X-Session-Token"
