// Package context carries the authenticated caller through a request.
package context

import (
	"context"

	"github.com/dtroode/stellar-wallet-server/internal/model"
)

type principalKey struct{}

// Principal is the caller proven by a bearer access token.
type Principal struct {
	Claims      model.AccessClaims
	AccessToken string
}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the caller attached by the authentication
// middleware. The boolean is false for anonymous requests.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	if !ok || p.Claims.PublicKey == "" {
		return Principal{}, false
	}
	return p, true
}
