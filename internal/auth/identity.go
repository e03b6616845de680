package auth

import "context"

// Role classifies what a caller may see and mutate.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Identity is the authenticated (username, role) pair derived from a
// verified token. It is built fresh per request and never stored.
type Identity struct {
	Username string
	Role     Role
}

// IsAdmin reports whether the identity holds the admin role.
func (i *Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanModify reports whether the identity may act on a record owned by owner.
func (i *Identity) CanModify(owner string) bool {
	return i.IsAdmin() || i.Username == owner
}

// Context key type to avoid collisions.
type contextKey string

const identityContextKey contextKey = "identity"

// WithIdentity returns a context carrying the resolved identity.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// IdentityFromContext retrieves the authenticated identity, if any.
// A nil identity means the request went through the unauthenticated
// surface: the guard rejects before handlers run whenever it is installed.
func IdentityFromContext(ctx context.Context) *Identity {
	if identity, ok := ctx.Value(identityContextKey).(*Identity); ok {
		return identity
	}
	return nil
}
