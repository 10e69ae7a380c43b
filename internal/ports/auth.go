package ports

// Package ports defines interfaces (hexagonal ports) for identity and token access.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/davidyusaku-13/prima-mobile/internal/domain/auth"
)

// IdentityProvider exposes the current state of the identity provider.
// Snapshot is read fresh for every gate evaluation.
type IdentityProvider interface {
	Snapshot(ctx context.Context) (domainauth.Snapshot, error)
}

// TokenProvider resolves the bearer token for outbound API calls.
// An empty token with a nil error means "no token": the request is sent without Authorization.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// TokenProviderFunc adapts a function to TokenProvider.
type TokenProviderFunc func(ctx context.Context) (string, error)

// Token implements TokenProvider.
func (f TokenProviderFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

// PasswordSignIn exchanges user credentials for a session. Rejections that carry
// a display message are returned as *domainauth.SignInError.
type PasswordSignIn interface {
	SignIn(ctx context.Context, email, password string) (domainauth.SignInResult, error)
}
