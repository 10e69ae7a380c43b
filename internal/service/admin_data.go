package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/davidyusaku-13/prima-mobile/internal/domain/admin"
	apperrors "github.com/davidyusaku-13/prima-mobile/internal/errors"
	"github.com/davidyusaku-13/prima-mobile/internal/observability/metrics"
	"github.com/davidyusaku-13/prima-mobile/internal/observability/statsd"
	"github.com/davidyusaku-13/prima-mobile/internal/ports"
)

const unexpectedAdminDataError = "Terjadi kesalahan tak terduga saat memuat data admin."

// AdminErrorMessage renders a load failure for the admin screens.
// HTTP failures with a status read "Backend merespons status N."; other failures
// use their message.
func AdminErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if apperrors.IsHTTP(err) {
		if status := apperrors.GetStatus(err); status > 0 {
			return fmt.Sprintf("Backend merespons status %d.", status)
		}
	}
	if msg := apperrors.Message(err); msg != "" {
		return msg
	}
	return unexpectedAdminDataError
}

// LoadState is the view state of one admin screen. Data from the last successful
// load is kept while a reload is in flight or after it fails.
type LoadState[T any] struct {
	Data      T
	HasData   bool
	IsLoading bool
	Error     string
}

// Overview bundles the three admin endpoints shown on the admin landing screen.
type Overview struct {
	Root   admin.RootResponse
	Health admin.Health
	Users  []admin.User
}

// loader runs fetches for one screen and applies only the latest one.
type loader[T any] struct {
	name    string
	fetch   func(context.Context) (T, error)
	logger  *slog.Logger
	metrics statsd.Sink

	mu         sync.Mutex
	generation uint64
	state      LoadState[T]
}

func (l *loader[T]) snapshot() LoadState[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *loader[T]) load(ctx context.Context) (LoadState[T], error) {
	l.mu.Lock()
	l.generation++
	gen := l.generation
	l.state.IsLoading = true
	l.state.Error = ""
	l.mu.Unlock()

	start := time.Now()
	data, err := l.fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	result := metrics.ResultOK
	if err != nil {
		result = string(apperrors.GetKind(err))
	}
	tags := map[string]string{"screen": l.name}
	if gen != l.generation {
		metrics.EmitOutcome(l.metrics, metrics.OutcomeMetric{Name: "admin.load", Result: metrics.ResultStale, Tags: tags})
		l.logger.DebugContext(ctx, "discarding superseded admin load", "screen", l.name, "generation", gen)
		return l.state, err
	}

	if err != nil {
		l.state.Error = AdminErrorMessage(err)
		l.logger.WarnContext(ctx, "admin load failed", "screen", l.name, "error", err)
	} else {
		l.state.Data = data
		l.state.HasData = true
	}
	l.state.IsLoading = false

	metrics.EmitOutcome(l.metrics, metrics.OutcomeMetric{
		Name:     "admin.load",
		Result:   result,
		Duration: time.Since(start),
		Tags:     tags,
	})
	return l.state, err
}

// AdminDataServiceOptions groups dependencies for AdminDataService.
type AdminDataServiceOptions struct {
	API       ports.AdminAPI // Required
	Telemetry Telemetry      // Optional
}

// AdminDataService loads the admin overview, health and user list screens.
// Each screen keeps its own generation so overlapping reloads settle on the newest.
type AdminDataService struct {
	api      ports.AdminAPI
	overview *loader[Overview]
	health   *loader[admin.Health]
	users    *loader[[]admin.User]
}

// NewAdminDataService constructs a new AdminDataService.
func NewAdminDataService(opts AdminDataServiceOptions) *AdminDataService {
	if opts.API == nil {
		panic("admin data service: API is required")
	}
	tel := opts.Telemetry.withDefaults()
	s := &AdminDataService{api: opts.API}
	s.overview = &loader[Overview]{name: "overview", fetch: s.fetchOverview, logger: tel.Logger, metrics: tel.Metrics}
	s.health = &loader[admin.Health]{name: "health", fetch: opts.API.Health, logger: tel.Logger, metrics: tel.Metrics}
	s.users = &loader[[]admin.User]{name: "users", fetch: opts.API.Users, logger: tel.Logger, metrics: tel.Metrics}
	return s
}

// LoadOverview fetches root, health and users concurrently. The first failure
// fails the whole overview.
func (s *AdminDataService) LoadOverview(ctx context.Context) (LoadState[Overview], error) {
	return s.overview.load(ctx)
}

// LoadHealth fetches the health screen.
func (s *AdminDataService) LoadHealth(ctx context.Context) (LoadState[admin.Health], error) {
	return s.health.load(ctx)
}

// LoadUsers fetches the user list screen.
func (s *AdminDataService) LoadUsers(ctx context.Context) (LoadState[[]admin.User], error) {
	return s.users.load(ctx)
}

// OverviewState returns the overview screen state.
func (s *AdminDataService) OverviewState() LoadState[Overview] { return s.overview.snapshot() }

// HealthState returns the health screen state.
func (s *AdminDataService) HealthState() LoadState[admin.Health] { return s.health.snapshot() }

// UsersState returns the user list screen state.
func (s *AdminDataService) UsersState() LoadState[[]admin.User] { return s.users.snapshot() }

func (s *AdminDataService) fetchOverview(ctx context.Context) (Overview, error) {
	var out Overview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		root, err := s.api.Root(gctx)
		out.Root = root
		return err
	})
	g.Go(func() error {
		health, err := s.api.Health(gctx)
		out.Health = health
		return err
	})
	g.Go(func() error {
		users, err := s.api.Users(gctx)
		out.Users = users
		return err
	})
	if err := g.Wait(); err != nil {
		return Overview{}, err
	}
	return out, nil
}
