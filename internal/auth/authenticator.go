// Package auth issues and validates the tokens that guard the state API.
package auth

import "context"

// Authenticator verifies a credential presented in exchange for a token.
// This abstraction allows swapping the passphrase check for another method
// (device pairing codes, OAuth, etc.) without changing the service layer.
type Authenticator interface {
	// Authenticate returns nil if the credential is accepted.
	Authenticate(ctx context.Context, credential string) error
}
