package auth

import (
	"context"

	"github.com/empdash/empdash-backend-go/internal/domain/user"
)

// Identity is the decoded caller identity attached to a request. It is
// reconstructed from the bearer token on every request, never persisted.
type Identity struct {
	ID       string
	Username string
	Role     user.Role
}

type identityCtxKey struct{}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

// IdentityFromContext reports the caller identity, if one was attached.
// An absent identity means the request is anonymous.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(Identity)
	return identity, ok
}

// IdentityFromClaims rebuilds an Identity from decoded token claims.
func IdentityFromClaims(claims map[string]interface{}) (Identity, error) {
	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return Identity{}, ErrInvalidToken
	}
	username, ok := claims["username"].(string)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	roleStr, ok := claims["role"].(string)
	if !ok || !user.ValidRole(roleStr) {
		return Identity{}, ErrInvalidToken
	}
	return Identity{
		ID:       id,
		Username: username,
		Role:     user.Role(roleStr),
	}, nil
}
