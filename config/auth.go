package config

import (
	"fmt"
	"strings"
)

// AuthMode selects the identity provider implementation.
type AuthMode string

const (
	// AuthModeOIDC uses an OpenID Connect provider with a stored refresh token.
	AuthModeOIDC AuthMode = "oidc"
	// AuthModeStatic uses a fixed identity and token (for local runs only).
	AuthModeStatic AuthMode = "static"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "oidc", "static":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: oidc, static)", v)
	}
}

// OIDCConfig contains OIDC client configuration.
type OIDCConfig struct {
	ClientID     string `env:"CLIENT_ID"     envDefault:"prima-mobile"`
	ClientSecret string `env:"CLIENT_SECRET"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email offline_access"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
	RefreshToken string `env:"REFRESH_TOKEN"`
}

// StaticAuthConfig controls the fixed identity used when AUTH_MODE=static.
type StaticAuthConfig struct {
	UserID   string `env:"USER_ID"`
	Token    string `env:"TOKEN"`
	Unloaded bool   `env:"UNLOADED" envDefault:"false"`
}

// AuthConfig groups all identity-related configuration.
type AuthConfig struct {
	// Mode determines which identity provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"static"`

	// OIDC configuration (used when Mode=oidc).
	OIDC OIDCConfig `envPrefix:"OIDC_"`

	// Static configuration (used when Mode=static).
	Static StaticAuthConfig `envPrefix:"STATIC_AUTH_"`
}

// Sanitize trims credentials copied from shells and .env files.
func (c *AuthConfig) Sanitize() {
	c.OIDC.DiscoveryURL = strings.TrimSpace(c.OIDC.DiscoveryURL)
	c.OIDC.RefreshToken = strings.TrimSpace(c.OIDC.RefreshToken)
	c.Static.UserID = strings.TrimSpace(c.Static.UserID)
	c.Static.Token = strings.TrimSpace(c.Static.Token)
}
