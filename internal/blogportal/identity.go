package blogportal

import "context"

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID   int
	Username string
	IsAdmin  bool
}

type identityKey struct{}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	return identity, ok
}

// RequireUser returns the caller identity or ErrUnauthorized for anonymous callers.
func RequireUser(ctx context.Context) (Identity, error) {
	identity, ok := IdentityFrom(ctx)
	if !ok {
		return Identity{}, ErrUnauthorized
	}

	return identity, nil
}

// RequireAdmin returns the caller identity or ErrForbidden unless the caller is an administrator.
func RequireAdmin(ctx context.Context) (Identity, error) {
	identity, ok := IdentityFrom(ctx)
	if !ok || !identity.IsAdmin {
		return Identity{}, ErrForbidden
	}

	return identity, nil
}
