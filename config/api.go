package config

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/http/httpproxy"
)

// DefaultAPITimeout bounds a whole API call, token step included.
const DefaultAPITimeout = 10 * time.Second

// APIConfig contains backend API client configuration.
type APIConfig struct {
	// URL is the backend base URL (e.g., "https://api.example.com/v1").
	// Left empty, every call fails with a config error instead of failing startup.
	URL string `env:"URL"`

	// Timeout is the per-call deadline.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`

	// Proxy settings. Empty values mean direct connections.
	HTTPProxy  string `env:"HTTP_PROXY"`
	HTTPSProxy string `env:"HTTPS_PROXY"`
	NoProxy    string `env:"NO_PROXY"`
}

// Sanitize applies guardrails to API configuration values.
func (c *APIConfig) Sanitize() {
	c.URL = strings.TrimSpace(c.URL)
	if c.Timeout <= 0 {
		c.Timeout = DefaultAPITimeout
	}
}

// Proxy returns the proxy selector for the API transport.
func (c APIConfig) Proxy() func(*http.Request) (*url.URL, error) {
	pc := httpproxy.Config{
		HTTPProxy:  c.HTTPProxy,
		HTTPSProxy: c.HTTPSProxy,
		NoProxy:    c.NoProxy,
	}
	fn := pc.ProxyFunc()
	return func(r *http.Request) (*url.URL, error) {
		return fn(r.URL)
	}
}
