package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	domainauth "github.com/davidyusaku-13/prima-mobile/internal/domain/auth"
	"github.com/davidyusaku-13/prima-mobile/internal/observability/metrics"
	"github.com/davidyusaku-13/prima-mobile/internal/observability/statsd"
	"github.com/davidyusaku-13/prima-mobile/internal/ports"
)

// SignInServiceOptions groups dependencies for SignInService.
type SignInServiceOptions struct {
	Provider  ports.PasswordSignIn // Required
	Telemetry Telemetry            // Optional
}

// SignInService validates the sign-in form and exchanges the credentials with
// the identity provider. Every failure is a *domainauth.SignInError.
type SignInService struct {
	provider ports.PasswordSignIn
	logger   *slog.Logger
	metrics  statsd.Sink
}

// NewSignInService constructs a new SignInService.
func NewSignInService(opts SignInServiceOptions) *SignInService {
	if opts.Provider == nil {
		panic("sign in service: Provider is required")
	}
	t := opts.Telemetry.withDefaults()
	return &SignInService{provider: opts.Provider, logger: t.Logger, metrics: t.Metrics}
}

// SignIn runs one sign-in attempt. The form is checked before the provider is
// contacted. A result whose status is not complete is returned together with a
// SignInError carrying the status message.
func (s *SignInService) SignIn(ctx context.Context, email, password string) (domainauth.SignInResult, error) {
	if msg := domainauth.ValidateSignIn(email, password); msg != "" {
		s.emit("invalid", 0)
		return domainauth.SignInResult{}, &domainauth.SignInError{Message: msg}
	}

	start := time.Now()
	res, err := s.provider.SignIn(ctx, strings.TrimSpace(email), password)
	if err != nil {
		s.emit("error", time.Since(start))
		s.logger.WarnContext(ctx, "sign in rejected", "error", err)
		var signInErr *domainauth.SignInError
		if errors.As(err, &signInErr) {
			return domainauth.SignInResult{}, signInErr
		}
		return domainauth.SignInResult{}, &domainauth.SignInError{Message: domainauth.DefaultSignInErrorMessage, Err: err}
	}

	if msg := domainauth.SignInStatusMessage(res.Status); msg != "" {
		s.emit(res.Status, time.Since(start))
		s.logger.InfoContext(ctx, "sign in incomplete", "status", res.Status)
		return res, &domainauth.SignInError{Message: msg}
	}

	s.emit(metrics.ResultOK, time.Since(start))
	s.logger.InfoContext(ctx, "signed in", "user_id", res.UserID)
	return res, nil
}

func (s *SignInService) emit(result string, elapsed time.Duration) {
	metrics.EmitOutcome(s.metrics, metrics.OutcomeMetric{Name: "auth.sign_in", Result: result, Duration: elapsed})
}
