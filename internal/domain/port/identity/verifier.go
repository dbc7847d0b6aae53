package identity

import "context"

// Identity is the caller as asserted by the external identity provider
type Identity struct {
	Subject string
	Email   string
}

// Verifier validates bearer tokens issued by the identity provider
type Verifier interface {
	// Verify returns the identity behind token.
	//
	// Possible errors:
	// - ErrUnauthorized: If the token is missing, malformed, expired or not trusted
	Verify(ctx context.Context, token string) (*Identity, error)
}
