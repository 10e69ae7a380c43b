package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/davidyusaku-13/prima-mobile/config"
	"github.com/davidyusaku-13/prima-mobile/internal/adminapi"
	"github.com/davidyusaku-13/prima-mobile/internal/apiclient"
	"github.com/davidyusaku-13/prima-mobile/internal/navigation"
	"github.com/davidyusaku-13/prima-mobile/internal/observability/statsd"
	"github.com/davidyusaku-13/prima-mobile/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Identity      Identity
	API           *apiclient.Client
	Admin         *adminapi.Client
	Access        *service.AdminAccessService
	AdminData     *service.AdminDataService
	Shell         *service.Shell
	// SignIn is nil when the identity provider has no credential exchange.
	SignIn        *service.SignInService
	Observability ObservabilityContainer
}

// Close releases resources held by the container.
func (c ServiceContainer) Close() error {
	if c.Observability.MetricsSink != nil {
		return c.Observability.MetricsSink.Close()
	}
	return nil
}

// ObservabilityContainer groups shared observability dependencies.
type ObservabilityContainer struct {
	Metrics       statsd.Sink
	MetricsSink   *statsd.Client
	MetricsConfig config.ObservabilityMetricsConfig
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config *config.AppConfig
	Logger *slog.Logger
}

// buildObservability configures the metrics adapter. A StatsD failure degrades to a no-op sink.
func buildObservability(ctx context.Context, logger *slog.Logger, cfg config.ObservabilityConfig) ObservabilityContainer {
	obs := ObservabilityContainer{Metrics: statsd.Discard, MetricsConfig: cfg.Metrics}
	if !cfg.Metrics.IsEnabled() {
		return obs
	}

	client, err := statsd.NewClient(ctx, statsd.Config{
		Enabled: true,
		Address: cfg.Metrics.StatsdAddress,
		Prefix:  cfg.Metrics.Prefix,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("failed to initialise statsd client", "error", err)
		return obs
	}
	obs.Metrics = client
	obs.MetricsSink = client
	return obs
}

// NewServices wires adapters and services from configuration.
func NewServices(ctx context.Context, deps ServiceDeps) (ServiceContainer, error) {
	if deps.Config == nil {
		return ServiceContainer{}, fmt.Errorf("service config is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	httpClient := NewHTTPClient(cfg.API)
	obs := buildObservability(ctx, logger, cfg.Observability)

	identity, err := BuildIdentity(ctx, AuthConfig{Auth: cfg.Auth, HTTPClient: httpClient, Logger: logger})
	if err != nil {
		_ = ServiceContainer{Observability: obs}.Close()
		return ServiceContainer{}, err
	}

	api := apiclient.New(apiclient.Options{
		BaseURL:    cfg.API.URL,
		Timeout:    cfg.API.Timeout,
		Tokens:     identity.Tokens,
		HTTPClient: httpClient,
		Metrics:    obs.Metrics,
		Logger:     logger,
	})
	adminClient := adminapi.New(api)
	telemetry := service.Telemetry{Logger: logger, Metrics: obs.Metrics}

	access := service.NewAdminAccessService(service.AdminAccessServiceOptions{
		API:       adminClient,
		Config:    service.AdminAccessConfig{HasAdminTab: cfg.Navigation.AdminTabEnabled && navigation.HasAdminTab()},
		Telemetry: telemetry,
	})

	var signIn *service.SignInService
	if identity.SignIn != nil {
		signIn = service.NewSignInService(service.SignInServiceOptions{Provider: identity.SignIn, Telemetry: telemetry})
	}

	return ServiceContainer{
		Identity:  identity,
		SignIn:    signIn,
		API:       api,
		Admin:     adminClient,
		Access:    access,
		AdminData: service.NewAdminDataService(service.AdminDataServiceOptions{API: adminClient, Telemetry: telemetry}),
		Shell: service.NewShell(service.ShellOptions{
			Identity: identity.Provider,
			Access:   access,
			Config:   service.ShellConfig{Logger: logger},
		}),
		Observability: obs,
	}, nil
}
