// Package apiclient issues authenticated, time-bounded JSON GETs against the backend API
// and turns every failure into an *errors.APIError.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	jmespath "github.com/jmespath-community/go-jmespath"

	apperrors "github.com/davidyusaku-13/prima-mobile/internal/errors"
	"github.com/davidyusaku-13/prima-mobile/internal/observability/metrics"
	"github.com/davidyusaku-13/prima-mobile/internal/observability/statsd"
	"github.com/davidyusaku-13/prima-mobile/internal/ports"
)

const (
	// DefaultTimeout bounds a whole Get call, token resolution included.
	DefaultTimeout = 10 * time.Second

	// RequestIDHeader carries a per-request correlation id.
	RequestIDHeader = "X-Request-ID"

	maxBodyBytes = 4 << 20

	// errorMessageExpr picks the server supplied error text from an error body.
	errorMessageExpr = "message || error"
)

// Doer is the transport used by Client. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures a Client.
type Options struct {
	// BaseURL is the API root. Empty is allowed at construction; calls then fail with a config error.
	BaseURL string
	// Timeout bounds each call. Defaults to DefaultTimeout when zero or negative.
	Timeout time.Duration
	// Tokens resolves the bearer token. Nil means requests are sent without Authorization.
	Tokens ports.TokenProvider
	// HTTPClient is the transport. Defaults to a plain *http.Client.
	HTTPClient Doer
	// Metrics receives request counts and timings. Defaults to statsd.Discard.
	Metrics statsd.Sink
	Logger  *slog.Logger
	// RequestID generates the X-Request-ID value. Defaults to uuid.NewString.
	RequestID func() string
}

// Client is the HTTP client. It is safe for concurrent use and performs a single
// attempt per call; retries are left to the caller.
type Client struct {
	base      *url.URL
	baseErr   string
	timeout   time.Duration
	tokens    ports.TokenProvider
	doer      Doer
	metrics   statsd.Sink
	logger    *slog.Logger
	requestID func() string
}

// New builds a Client. Configuration problems are reported per call as config errors
// so callers see them through the same taxonomy as every other failure.
func New(opts Options) *Client {
	c := &Client{
		timeout:   opts.Timeout,
		tokens:    opts.Tokens,
		doer:      opts.HTTPClient,
		metrics:   opts.Metrics,
		logger:    opts.Logger,
		requestID: opts.RequestID,
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.doer == nil {
		c.doer = &http.Client{}
	}
	if c.metrics == nil {
		c.metrics = statsd.Discard
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.requestID == nil {
		c.requestID = uuid.NewString
	}

	c.base, c.baseErr = parseBaseURL(opts.BaseURL)
	return c
}

// Timeout returns the per-call timeout.
func (c *Client) Timeout() time.Duration { return c.timeout }

// Get performs GET path and decodes the JSON body into a T.
func Get[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	if err := c.GetJSON(ctx, path, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// GetJSON performs GET path and decodes the JSON body into out. out may be nil to
// discard the body. Every returned error is an *errors.APIError.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	start := time.Now()
	requestID := c.requestID()
	status, err := c.get(ctx, path, requestID, out)
	c.record(ctx, path, requestID, status, time.Since(start), err)
	return err
}

func (c *Client) get(ctx context.Context, path, requestID string, out any) (int, error) {
	if c.base == nil {
		return 0, apperrors.Config(path, c.baseErr)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	token, err := c.resolveToken(ctx, path)
	if err != nil {
		return 0, err
	}

	target, err := c.resolve(path)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, apperrors.Config(path, fmt.Sprintf("build request: %v", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return 0, apperrors.MapTransportError(ctx, path, c.timeout, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	return resp.StatusCode, c.handleResponse(ctx, path, resp, out)
}

// resolveToken runs inside the call deadline. A provider failure is a token error
// unless the deadline fired while waiting on it.
func (c *Client) resolveToken(ctx context.Context, path string) (string, error) {
	if c.tokens == nil {
		return "", nil
	}
	token, err := c.tokens.Token(ctx)
	if err == nil {
		return strings.TrimSpace(token), nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", apperrors.MapTransportError(ctx, path, c.timeout, err)
	}
	return "", apperrors.Token(path, err)
}

func (c *Client) resolve(path string) (string, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return "", apperrors.Config(path, fmt.Sprintf("invalid request path %q", path))
	}
	return c.base.ResolveReference(ref).String(), nil
}

func (c *Client) handleResponse(ctx context.Context, path string, resp *http.Response, out any) error {
	status := resp.StatusCode
	ok := status >= 200 && status < 300

	if !isJSON(resp.Header.Get("Content-Type")) {
		if ok {
			return apperrors.InvalidResponse(path, status, "Expected a JSON response body", nil)
		}
		return apperrors.HTTP(path, status, apperrors.StatusMessage(status))
	}

	body, err := readBody(resp.Body)
	if err != nil {
		if errors.Is(err, errBodyTooLarge) {
			return apperrors.InvalidResponse(path, status, "Response body is too large", err)
		}
		return apperrors.MapTransportError(ctx, path, c.timeout, err)
	}
	if !json.Valid(body) {
		return apperrors.InvalidResponse(path, status, "Response is not valid JSON", errors.New("malformed JSON body"))
	}

	if !ok {
		return apperrors.HTTP(path, status, errorMessage(status, body))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.InvalidResponse(path, status, "Response does not match the expected shape", err)
	}
	return nil
}

func (c *Client) record(ctx context.Context, path, requestID string, status int, elapsed time.Duration, err error) {
	if err != nil {
		c.logger.DebugContext(ctx, "api request failed",
			"path", path,
			"request_id", requestID,
			"kind", apperrors.GetKind(err),
			"status", status,
			"error", err,
		)
	}
	metrics.EmitRequest(c.metrics, metrics.RequestMetric{
		Path:     path,
		Status:   status,
		Duration: elapsed,
		Err:      err,
	})
}

func parseBaseURL(raw string) (*url.URL, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, "API base URL is not configured"
	}
	u, err := url.Parse(normalizeBaseURL(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Sprintf("API base URL %q is not an absolute URL", raw)
	}
	return u, ""
}

// normalizeBaseURL makes the base a directory so relative paths resolve beneath it.
func normalizeBaseURL(raw string) string {
	if strings.HasSuffix(raw, "/") {
		return raw
	}
	return raw + "/"
}

func isJSON(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "application/json")
}

var errBodyTooLarge = errors.New("response body exceeds limit")

func readBody(r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxBodyBytes+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxBodyBytes {
		return nil, errBodyTooLarge
	}
	return bytes.TrimSpace(body), nil
}

// errorMessage returns the body's message or error field when it is a non-empty
// string, else the generic status message.
func errorMessage(status int, body []byte) string {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return apperrors.StatusMessage(status)
	}
	if _, isObject := payload.(map[string]any); !isObject {
		return apperrors.StatusMessage(status)
	}
	v, err := jmespath.Search(errorMessageExpr, payload)
	if err != nil {
		return apperrors.StatusMessage(status)
	}
	if msg, ok := v.(string); ok && msg != "" {
		return msg
	}
	return apperrors.StatusMessage(status)
}
