package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/davidyusaku-13/prima-mobile/config"
	"github.com/davidyusaku-13/prima-mobile/internal/adapters/devauth"
	"github.com/davidyusaku-13/prima-mobile/internal/adapters/oidc"
	"github.com/davidyusaku-13/prima-mobile/internal/ports"
)

// Identity pairs the identity snapshot source with its token source.
// SignIn is nil when the auth mode has no credential exchange.
type Identity struct {
	Provider ports.IdentityProvider
	Tokens   ports.TokenProvider
	SignIn   ports.PasswordSignIn
}

// AuthConfig contains configuration for the identity provider.
type AuthConfig struct {
	Auth       config.AuthConfig
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// BuildIdentity creates the identity provider for the configured auth mode.
func BuildIdentity(ctx context.Context, cfg AuthConfig) (Identity, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Auth.Mode {
	case config.AuthModeStatic, "":
		prov, err := devauth.NewProvider(devauth.Config{
			UserID:   cfg.Auth.Static.UserID,
			Token:    cfg.Auth.Static.Token,
			Unloaded: cfg.Auth.Static.Unloaded,
		})
		if err != nil {
			return Identity{}, fmt.Errorf("static identity: %w", err)
		}
		logger.Debug("using static identity", "signed_in", cfg.Auth.Static.UserID != "")
		return Identity{Provider: prov, Tokens: prov}, nil

	case config.AuthModeOIDC:
		return buildOIDCIdentity(ctx, cfg, logger)

	default:
		return Identity{}, fmt.Errorf("unsupported auth mode %q", cfg.Auth.Mode)
	}
}

func buildOIDCIdentity(ctx context.Context, cfg AuthConfig, logger *slog.Logger) (Identity, error) {
	oc := cfg.Auth.OIDC
	_, discoveryErr := config.RequireEnv(oc.DiscoveryURL, "OIDC_DISCOVERY_URL")
	_, clientErr := config.RequireEnv(oc.ClientID, "OIDC_CLIENT_ID")
	if err := errors.Join(discoveryErr, clientErr); err != nil {
		logger.Warn("AuthModeOIDC selected but required config missing",
			"discovery_url_empty", discoveryErr != nil,
			"client_id_empty", clientErr != nil,
		)
		return Identity{}, fmt.Errorf("oidc identity: %w", err)
	}

	prov, err := oidc.NewProvider(ctx, oidc.ProviderConfig{
		ClientID:     oc.ClientID,
		ClientSecret: oc.ClientSecret,
		Scope:        oc.Scope,
		DiscoveryURL: oc.DiscoveryURL,
		RefreshToken: oc.RefreshToken,
		HTTPClient:   cfg.HTTPClient,
	})
	if err != nil {
		return Identity{}, fmt.Errorf("oidc identity: %w", err)
	}
	return Identity{Provider: prov, Tokens: prov, SignIn: prov}, nil
}
