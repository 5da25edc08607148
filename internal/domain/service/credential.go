package service

import "context"

// CredentialAccessor reads the persisted session token.
type CredentialAccessor interface {
	// GetToken returns the stored token or domain errors.ErrUnauthenticated when
	// no session is stored or the stored value is malformed.
	GetToken(ctx context.Context) (string, error)
}
