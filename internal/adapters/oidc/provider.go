// Package oidc adapts an OpenID Connect provider to the identity and token ports.
// The client holds a refresh token; access tokens are minted from it on demand.
package oidc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	domainauth "github.com/davidyusaku-13/prima-mobile/internal/domain/auth"
	"github.com/davidyusaku-13/prima-mobile/internal/ports"
)

var (
	_ ports.IdentityProvider = (*Provider)(nil)
	_ ports.TokenProvider    = (*Provider)(nil)
	_ ports.PasswordSignIn   = (*Provider)(nil)
)

// errMFARequired is the token endpoint error code for a pending second factor.
const errMFARequired = "mfa_required"

// ErrSignedOut is returned by Token when the refresh token was revoked or expired.
var ErrSignedOut = errors.New("session is signed out")

// Provider implements IdentityProvider and TokenProvider using OIDC/OAuth2.
type Provider struct {
	config   *oauth2.Config
	verifier *gooidc.IDTokenVerifier
	oidc     *gooidc.Provider
	source   oauth2.TokenSource
	client   *http.Client

	mu       sync.Mutex
	snapshot *domainauth.Snapshot
}

// ProviderConfig holds configuration for the OIDC provider.
type ProviderConfig struct {
	ClientID     string
	ClientSecret string // Optional for public clients
	Scope        string
	DiscoveryURL string
	// RefreshToken is the stored credential of the signed-in user. Empty means signed out.
	RefreshToken string
	HTTPClient   *http.Client // Optional, defaults to a client with a 30s timeout
}

// NewProvider creates a new OIDC provider. Discovery runs once, bounded by ctx.
func NewProvider(ctx context.Context, config ProviderConfig) (*Provider, error) {
	if config.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if config.DiscoveryURL == "" {
		return nil, errors.New("discovery URL is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	issuer := strings.TrimSuffix(config.DiscoveryURL, "/")
	issuer = strings.TrimSuffix(issuer, "/.well-known/openid-configuration")
	op, err := gooidc.NewProvider(gooidc.ClientContext(ctx, httpClient), issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc new provider: %w", err)
	}

	p := &Provider{
		client:   httpClient,
		oidc:     op,
		verifier: op.Verifier(&gooidc.Config{ClientID: config.ClientID}),
		config: &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Scopes:       strings.Fields(config.Scope),
			Endpoint:     op.Endpoint(),
		},
	}

	if config.RefreshToken == "" {
		p.snapshot = &domainauth.Snapshot{Loaded: true}
		return p, nil
	}

	p.source = p.tokenSource(&oauth2.Token{RefreshToken: config.RefreshToken})
	return p, nil
}

// tokenSource refreshes from tok. The source outlives any request ctx; only the
// HTTP client is carried over.
func (p *Provider) tokenSource(tok *oauth2.Token) oauth2.TokenSource {
	srcCtx := context.WithValue(context.Background(), oauth2.HTTPClient, p.client)
	return p.config.TokenSource(srcCtx, tok)
}

// SignIn exchanges email and password at the token endpoint (resource owner
// password grant). On success the provider switches to the new session.
func (p *Provider) SignIn(ctx context.Context, email, password string) (domainauth.SignInResult, error) {
	tok, err := p.config.PasswordCredentialsToken(gooidc.ClientContext(ctx, p.client), email, password)
	if err != nil {
		return signInFailure(err)
	}

	subject, err := p.subject(ctx, tok)
	if err != nil {
		return domainauth.SignInResult{}, fmt.Errorf("sign in: %w", err)
	}

	p.mu.Lock()
	p.source = p.tokenSource(tok)
	p.snapshot = &domainauth.Snapshot{Loaded: true, UserID: subject, SignedIn: subject != ""}
	p.mu.Unlock()

	return domainauth.SignInResult{
		Status:       domainauth.StatusComplete,
		UserID:       subject,
		RefreshToken: tok.RefreshToken,
	}, nil
}

// signInFailure turns a token endpoint rejection into a sign-in status or a
// displayable error. Identity provider bodies win over the OAuth2 description.
func signInFailure(err error) (domainauth.SignInResult, error) {
	var re *oauth2.RetrieveError
	if !errors.As(err, &re) {
		return domainauth.SignInResult{}, fmt.Errorf("sign in: %w", err)
	}
	if re.ErrorCode == errMFARequired {
		return domainauth.SignInResult{Status: domainauth.StatusNeedsSecondFactor}, nil
	}

	var payload any
	if jsonErr := json.Unmarshal(re.Body, &payload); jsonErr != nil {
		payload = nil
	}
	msg := domainauth.ProviderErrorMessage(payload, strings.TrimSpace(re.ErrorDescription))
	if msg == "" {
		msg = domainauth.DefaultSignInErrorMessage
	}
	return domainauth.SignInResult{}, &domainauth.SignInError{Message: msg, Err: err}
}

// Token returns a current access token, refreshing it when expired.
// A signed-out session yields an empty token.
func (p *Provider) Token(ctx context.Context) (string, error) {
	tok, err := p.token(ctx)
	if errors.Is(err, ErrSignedOut) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

// Snapshot reports the identity state. The first call resolves the user through the
// ID token, or UserInfo when the token response carries none; later calls reuse it.
func (p *Provider) Snapshot(ctx context.Context) (domainauth.Snapshot, error) {
	p.mu.Lock()
	if p.snapshot != nil {
		snap := *p.snapshot
		p.mu.Unlock()
		return snap, nil
	}
	p.mu.Unlock()

	tok, err := p.token(ctx)
	if errors.Is(err, ErrSignedOut) {
		return p.store(domainauth.Snapshot{Loaded: true}), nil
	}
	if err != nil {
		return domainauth.Snapshot{}, err
	}

	subject, err := p.subject(ctx, tok)
	if err != nil {
		return domainauth.Snapshot{}, err
	}
	return p.store(domainauth.Snapshot{Loaded: true, UserID: subject, SignedIn: subject != ""}), nil
}

func (p *Provider) store(snap domainauth.Snapshot) domainauth.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snapshot = &snap
	return snap
}

// token runs the blocking refresh on its own goroutine so ctx can abandon it.
func (p *Provider) token(ctx context.Context) (*oauth2.Token, error) {
	p.mu.Lock()
	source := p.source
	p.mu.Unlock()
	if source == nil {
		return nil, ErrSignedOut
	}

	type result struct {
		tok *oauth2.Token
		err error
	}
	ch := make(chan result, 1)
	go func() {
		tok, err := source.Token()
		ch <- result{tok, err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("refresh token: %w", ctx.Err())
	case r := <-ch:
		if r.err != nil {
			if isRevoked(r.err) {
				p.store(domainauth.Snapshot{Loaded: true})
				return nil, ErrSignedOut
			}
			return nil, fmt.Errorf("refresh token: %w", r.err)
		}
		return r.tok, nil
	}
}

func (p *Provider) subject(ctx context.Context, tok *oauth2.Token) (string, error) {
	if raw, ok := tok.Extra("id_token").(string); ok && raw != "" {
		idTok, err := p.verifier.Verify(ctx, raw)
		if err != nil {
			return "", fmt.Errorf("verify id_token: %w", err)
		}
		return idTok.Subject, nil
	}

	ui, err := p.oidc.UserInfo(gooidc.ClientContext(ctx, p.client), oauth2.StaticTokenSource(tok))
	if err != nil {
		return "", fmt.Errorf("fetch user info: %w", err)
	}
	return ui.Subject, nil
}

// isRevoked reports whether the token endpoint rejected the refresh token itself.
func isRevoked(err error) bool {
	var re *oauth2.RetrieveError
	if !errors.As(err, &re) {
		return false
	}
	switch re.ErrorCode {
	case "invalid_grant", "unauthorized_client":
		return true
	}
	return re.Response != nil && re.Response.StatusCode == http.StatusUnauthorized
}
