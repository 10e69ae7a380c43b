package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: Backend API client configuration
//   - auth.go: Identity provider configuration
//   - navigation.go: Tab layout capabilities
//   - observability.go: Metrics configuration
type AppConfig struct {
	// IsDev controls development mode behavior (debug logging).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// API configuration for the backend client.
	API APIConfig `envPrefix:"PRIMA_API_"`

	// PublicAPIURL is the Expo-era name for the API base URL, used when PRIMA_API_URL is unset.
	PublicAPIURL string `env:"EXPO_PUBLIC_API_URL"`

	// Identity provider configuration
	Auth AuthConfig

	// Navigation capabilities
	Navigation NavigationConfig

	// Observability configuration
	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	if strings.TrimSpace(c.API.URL) == "" {
		c.API.URL = c.PublicAPIURL
	}
	c.API.Sanitize()
	c.Auth.Sanitize()
	c.Observability.Sanitize()

	// Check NODE_ENV for dev mode
	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// This is called by Sanitize() to ensure IsDev is set correctly.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
