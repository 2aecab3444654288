package domain

import "context"

type identityKey struct{}

// Identity is the verified caller, reconstructed from a login or a valid
// bearer token. It carries no password material and lives only for the
// duration of a request.
type Identity struct {
	ID       string
	Username string
	Email    string
}

// WithIdentity stores an Identity in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext extracts the Identity from the context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
