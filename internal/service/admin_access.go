package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/davidyusaku-13/prima-mobile/internal/domain/auth"
	apperrors "github.com/davidyusaku-13/prima-mobile/internal/errors"
	"github.com/davidyusaku-13/prima-mobile/internal/observability/metrics"
	"github.com/davidyusaku-13/prima-mobile/internal/observability/statsd"
	"github.com/davidyusaku-13/prima-mobile/internal/ports"
)

const defaultAdminAccessError = "Unable to verify admin access"

// AdminAccessState is the settled (or settling) result of the admin role probe.
// IsAdmin and Error are never both set.
type AdminAccessState struct {
	IsAdmin   bool
	IsLoading bool
	Error     string
}

// Telemetry groups the optional logging and metrics sinks shared by services.
type Telemetry struct {
	Logger  *slog.Logger
	Metrics statsd.Sink
}

func (t Telemetry) withDefaults() Telemetry {
	if t.Logger == nil {
		t.Logger = slog.Default()
	}
	if t.Metrics == nil {
		t.Metrics = statsd.Discard
	}
	return t
}

// AdminAccessConfig holds static settings of the probe.
type AdminAccessConfig struct {
	// HasAdminTab reports whether this build ships the admin section at all.
	HasAdminTab bool
}

// AdminAccessServiceOptions groups dependencies for AdminAccessService.
type AdminAccessServiceOptions struct {
	API       ports.AdminAPI // Required
	Config    AdminAccessConfig
	Telemetry Telemetry // Optional
}

// AdminAccessService decides when the admin role probe runs and keeps only the
// result of the most recent attempt.
//
// Every attempt takes a new generation number. A completed probe applies its result
// only if its generation is still the latest one; superseded results are dropped.
// In-flight probes are never canceled. It is safe for concurrent use.
type AdminAccessService struct {
	api         ports.AdminAPI
	hasAdminTab bool
	logger      *slog.Logger
	metrics     statsd.Sink

	mu         sync.Mutex
	generation uint64
	state      AdminAccessState
	last       domainauth.Snapshot
}

// NewAdminAccessService constructs a new AdminAccessService.
// The initial state is loading, matching a client that has not yet seen the identity provider.
func NewAdminAccessService(opts AdminAccessServiceOptions) *AdminAccessService {
	if opts.API == nil {
		panic("admin access service: API is required")
	}
	tel := opts.Telemetry.withDefaults()
	return &AdminAccessService{
		api:         opts.API,
		hasAdminTab: opts.Config.HasAdminTab,
		logger:      tel.Logger,
		metrics:     tel.Metrics,
		state:       AdminAccessState{IsLoading: true},
	}
}

// ShouldProbeAdminAccess reports whether a role probe is warranted.
func ShouldProbeAdminAccess(snap domainauth.Snapshot, hasAdminTab bool) bool {
	return snap.Loaded && snap.HasUser() && hasAdminTab
}

// State returns the current state.
func (s *AdminAccessService) State() AdminAccessState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Sync evaluates the probe for snap and blocks until the attempt it started (if any)
// completes. It returns the state current at that point, which is a newer attempt's
// state when this one was superseded.
func (s *AdminAccessService) Sync(ctx context.Context, snap domainauth.Snapshot) AdminAccessState {
	s.mu.Lock()
	s.last = snap
	gen, probe := s.begin(snap)
	s.mu.Unlock()

	if !probe {
		return s.State()
	}
	return s.run(ctx, gen)
}

// Refresh restarts the probe with a fresh generation using the last synced snapshot.
// Calling it while a probe is in flight is allowed; the older result is discarded.
func (s *AdminAccessService) Refresh(ctx context.Context) AdminAccessState {
	s.mu.Lock()
	snap := s.last
	s.mu.Unlock()
	return s.Sync(ctx, snap)
}

// begin must be called with s.mu held.
func (s *AdminAccessService) begin(snap domainauth.Snapshot) (uint64, bool) {
	s.generation++
	gen := s.generation

	if ShouldProbeAdminAccess(snap, s.hasAdminTab) {
		s.state = AdminAccessState{IsLoading: true}
		return gen, true
	}

	if !snap.Loaded && s.hasAdminTab {
		s.state.IsLoading = true
		return gen, false
	}

	s.state = AdminAccessState{}
	return gen, false
}

func (s *AdminAccessService) run(ctx context.Context, gen uint64) AdminAccessState {
	attemptID := uuid.NewString()
	logger := s.logger.With("attempt_id", attemptID, "generation", gen)
	logger.DebugContext(ctx, "admin access probe started")

	start := time.Now()
	_, err := s.api.Root(ctx)
	outcome, next := classifyProbe(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		logger.DebugContext(ctx, "discarding superseded admin access probe result",
			"outcome", outcome,
			"latest_generation", s.generation,
		)
		metrics.EmitOutcome(s.metrics, metrics.OutcomeMetric{Name: "admin_access.probe", Result: metrics.ResultStale})
		return s.state
	}

	s.state = next
	metrics.EmitOutcome(s.metrics, metrics.OutcomeMetric{
		Name:     "admin_access.probe",
		Result:   outcome,
		Duration: time.Since(start),
	})
	if next.Error != "" {
		logger.WarnContext(ctx, "admin access probe failed", "error", err)
	} else {
		logger.DebugContext(ctx, "admin access probe settled", "is_admin", next.IsAdmin)
	}
	return s.state
}

// classifyProbe maps a probe outcome to a metric label and settled state.
// 401/403 means "not an admin" and is not an error.
func classifyProbe(err error) (string, AdminAccessState) {
	switch {
	case err == nil:
		return "admin", AdminAccessState{IsAdmin: true}
	case apperrors.IsUnauthorized(err):
		return "not_admin", AdminAccessState{}
	default:
		msg := apperrors.Message(err)
		if msg == "" {
			msg = defaultAdminAccessError
		}
		return "error", AdminAccessState{Error: msg}
	}
}
