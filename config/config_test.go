package config

import (
	"net/http"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_Defaults(t *testing.T) {
	t.Setenv("NODE_ENV", "")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	cfg.Sanitize()

	if cfg.API.URL != "" {
		t.Errorf("expected empty API URL, got %q", cfg.API.URL)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.API.Timeout)
	}
	if cfg.Auth.Mode != AuthModeStatic {
		t.Errorf("expected static auth mode, got %q", cfg.Auth.Mode)
	}
	if !cfg.Navigation.AdminTabEnabled {
		t.Errorf("expected admin tab enabled by default")
	}
	if cfg.Observability.Metrics.IsEnabled() {
		t.Errorf("expected metrics disabled by default")
	}
	if cfg.IsDev {
		t.Errorf("expected IsDev false")
	}
}

func TestAppConfig_ParseEnv(t *testing.T) {
	t.Setenv("PRIMA_API_URL", " https://api.example.com/v1 ")
	t.Setenv("PRIMA_API_TIMEOUT", "3s")
	t.Setenv("AUTH_MODE", "OIDC")
	t.Setenv("OIDC_CLIENT_ID", "mobile")
	t.Setenv("OIDC_DISCOVERY_URL", "https://login.example.com/.well-known/openid-configuration")
	t.Setenv("OIDC_REFRESH_TOKEN", "refresh")
	t.Setenv("ADMIN_TAB_ENABLED", "false")
	t.Setenv("NODE_ENV", "development")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	cfg.Sanitize()

	if cfg.API.URL != "https://api.example.com/v1" {
		t.Errorf("unexpected API URL %q", cfg.API.URL)
	}
	if cfg.API.Timeout != 3*time.Second {
		t.Errorf("unexpected timeout %v", cfg.API.Timeout)
	}
	if cfg.Auth.Mode != AuthModeOIDC {
		t.Errorf("unexpected auth mode %q", cfg.Auth.Mode)
	}
	if cfg.Auth.OIDC.ClientID != "mobile" || cfg.Auth.OIDC.RefreshToken != "refresh" {
		t.Errorf("unexpected OIDC config %+v", cfg.Auth.OIDC)
	}
	if cfg.Navigation.AdminTabEnabled {
		t.Errorf("expected admin tab disabled")
	}
	if !cfg.IsDev {
		t.Errorf("expected NODE_ENV=development to enable dev mode")
	}
}

func TestAppConfig_PublicAPIURLFallback(t *testing.T) {
	t.Setenv("EXPO_PUBLIC_API_URL", "https://legacy.example.com")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	cfg.Sanitize()

	if cfg.API.URL != "https://legacy.example.com" {
		t.Errorf("expected fallback URL, got %q", cfg.API.URL)
	}

	t.Setenv("PRIMA_API_URL", "https://api.example.com")
	cfg = AppConfig{}
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	cfg.Sanitize()
	if cfg.API.URL != "https://api.example.com" {
		t.Errorf("expected PRIMA_API_URL to win, got %q", cfg.API.URL)
	}
}

func TestAuthMode_UnmarshalText(t *testing.T) {
	var mode AuthMode
	if err := mode.UnmarshalText([]byte("oauth")); err == nil {
		t.Errorf("expected error for unknown mode")
	}
	if err := mode.UnmarshalText([]byte(" Static ")); err != nil || mode != AuthModeStatic {
		t.Errorf("expected static, got %q (%v)", mode, err)
	}
}

func TestAPIConfig_Sanitize(t *testing.T) {
	cfg := APIConfig{URL: "  ", Timeout: -time.Second}
	cfg.Sanitize()

	if cfg.URL != "" {
		t.Errorf("expected trimmed URL, got %q", cfg.URL)
	}
	if cfg.Timeout != DefaultAPITimeout {
		t.Errorf("expected default timeout, got %v", cfg.Timeout)
	}
}

func TestAPIConfig_Proxy(t *testing.T) {
	cfg := APIConfig{HTTPSProxy: "http://proxy.internal:3128", NoProxy: "localhost"}
	proxy := cfg.Proxy()

	req, _ := http.NewRequest(http.MethodGet, "https://api.example.com/admin", nil)
	u, err := proxy(req)
	if err != nil {
		t.Fatalf("proxy: %v", err)
	}
	if u == nil || u.Host != "proxy.internal:3128" {
		t.Errorf("expected proxy host, got %v", u)
	}

	req, _ = http.NewRequest(http.MethodGet, "https://localhost/admin", nil)
	u, err = proxy(req)
	if err != nil {
		t.Fatalf("proxy: %v", err)
	}
	if u != nil {
		t.Errorf("expected direct connection for NO_PROXY host, got %v", u)
	}
}

func TestObservabilityMetricsConfig_Sanitize(t *testing.T) {
	cfg := ObservabilityMetricsConfig{
		Enabled:       true,
		StatsdAddress: " ",
	}

	cfg.Sanitize()

	if cfg.Enabled {
		t.Fatalf("expected enabled to be false when address is empty")
	}
	if cfg.Prefix != defaultMetricsPrefix {
		t.Fatalf("expected default prefix, got %q", cfg.Prefix)
	}

	cfg = ObservabilityMetricsConfig{
		Enabled:       true,
		StatsdAddress: " statsd:1234 ",
		Prefix:        "custom",
	}

	cfg.Sanitize()

	if !cfg.IsEnabled() {
		t.Fatalf("expected metrics enabled")
	}
	if cfg.StatsdAddress != "statsd:1234" {
		t.Fatalf("expected trimmed address, got %q", cfg.StatsdAddress)
	}
}

func TestRequireEnv(t *testing.T) {
	if _, err := RequireEnv("   ", "PRIMA_API_URL"); err == nil ||
		err.Error() != "Missing required environment variable: PRIMA_API_URL" {
		t.Errorf("unexpected error %v", err)
	}
	v, err := RequireEnv("value", "KEY")
	if err != nil || v != "value" {
		t.Errorf("expected value back, got %q (%v)", v, err)
	}
}
