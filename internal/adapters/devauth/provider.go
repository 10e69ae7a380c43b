package devauth

// Package devauth provides a simple, config-driven identity provider for local runs.

import (
	"context"
	"errors"

	"golang.org/x/oauth2"

	domainauth "github.com/davidyusaku-13/prima-mobile/internal/domain/auth"
	"github.com/davidyusaku-13/prima-mobile/internal/ports"
)

var (
	_ ports.IdentityProvider = (*Provider)(nil)
	_ ports.TokenProvider    = (*Provider)(nil)
)

// Config controls the dev provider behavior.
// An empty UserID models a signed-out session; Token is then ignored.
type Config struct {
	UserID string
	Token  string
	// Unloaded keeps the provider in its initial "still loading" state forever.
	Unloaded bool
}

// Provider implements the identity and token ports from static configuration.
type Provider struct {
	snapshot domainauth.Snapshot
	source   oauth2.TokenSource
}

// NewProvider constructs a dev provider from Config.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.UserID != "" && cfg.Token == "" {
		return nil, errors.New("dev auth: Token is required when UserID is set")
	}
	p := &Provider{
		snapshot: domainauth.Snapshot{
			Loaded:   !cfg.Unloaded,
			UserID:   cfg.UserID,
			SignedIn: cfg.UserID != "",
		},
	}
	if p.snapshot.SignedIn {
		p.source = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token, TokenType: "Bearer"})
	}
	return p, nil
}

// Snapshot returns the configured identity.
func (p *Provider) Snapshot(ctx context.Context) (domainauth.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domainauth.Snapshot{}, err
	}
	return p.snapshot, nil
}

// Token returns the configured token, or "" when signed out.
func (p *Provider) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.source == nil {
		return "", nil
	}
	tok, err := p.source.Token()
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}
