package auth

import (
	"context"
)

// Principal is the authenticated identity attached to a single request. It is
// constructed fresh per request and never shared across requests.
type Principal struct {
	Username    string   `json:"username"`
	Role        UserRole `json:"role"`
	Authorities []string `json:"authorities"`
}

// NewPrincipal builds a Principal with the authorities derived from the role
func NewPrincipal(username string, role UserRole) Principal {
	return Principal{
		Username:    username,
		Role:        role,
		Authorities: Authorities(role),
	}
}

// PrincipalFromIdentity builds a Principal from a resolved identity
func PrincipalFromIdentity(identity Identity) Principal {
	return NewPrincipal(identity.Username(), UserRole(identity.Role()))
}

var principalCtxKey = &contextKey{"principal"}

type contextKey struct {
	name string
}

// WithPrincipal sets the Principal in the given context. The context is the
// security slot: request scoped, written once by the request authenticator.
func WithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey, principal)
}

// PrincipalFromContext finds the principal for the current request. The
// second return is false for anonymous requests.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	raw, ok := ctx.Value(principalCtxKey).(Principal)
	return raw, ok
}
