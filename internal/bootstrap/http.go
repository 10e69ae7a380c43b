package bootstrap

import (
	"net"
	"net/http"
	"time"

	"github.com/davidyusaku-13/prima-mobile/config"
)

// NewHTTPClient builds the outbound HTTP client shared by the API and identity adapters.
// The per-call deadline is enforced by apiclient, so the client itself has no timeout.
func NewHTTPClient(cfg config.APIConfig) *http.Client {
	transport := &http.Transport{
		Proxy: cfg.Proxy(),
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          16,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: time.Second,
	}
	return &http.Client{Transport: transport}
}
