package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	domainauth "github.com/davidyusaku-13/prima-mobile/internal/domain/auth"
	"github.com/davidyusaku-13/prima-mobile/internal/navigation"
	"github.com/davidyusaku-13/prima-mobile/internal/ports"
)

const defaultIdentityPollInterval = 100 * time.Millisecond

// AdminAccessBannerTitle heads the retry banner shown when the role probe fails.
const AdminAccessBannerTitle = "Gagal verifikasi akses admin"

// ShellOptions groups dependencies for Shell.
type ShellOptions struct {
	Identity ports.IdentityProvider // Required
	Access   *AdminAccessService    // Required
	Config   ShellConfig
}

// ShellConfig holds optional Shell settings.
type ShellConfig struct {
	PollInterval time.Duration
	Logger       *slog.Logger
}

// Resolution is what the app would mount for a requested path.
type Resolution struct {
	Requested   string
	Route       string
	Redirected  bool
	Snapshot    domainauth.Snapshot
	Access      AdminAccessState
	VisibleTabs []navigation.Tab
	// Banner is the probe failure text shown above the tab bar; empty when none.
	Banner string
}

// Shell walks a path through the root gate, the tab layout and the admin gate.
type Shell struct {
	identity ports.IdentityProvider
	access   *AdminAccessService
	interval time.Duration
	logger   *slog.Logger
}

// NewShell constructs a new Shell.
func NewShell(opts ShellOptions) *Shell {
	if opts.Identity == nil {
		panic("shell: Identity is required")
	}
	if opts.Access == nil {
		panic("shell: Access is required")
	}
	interval := opts.Config.PollInterval
	if interval <= 0 {
		interval = defaultIdentityPollInterval
	}
	logger := opts.Config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Shell{identity: opts.Identity, access: opts.Access, interval: interval, logger: logger}
}

// IsAdminPath reports whether path is inside the admin section.
func IsAdminPath(path string) bool {
	admin := string(domainauth.RouteAdmin)
	return path == admin || strings.HasPrefix(path, admin+"/")
}

// IsTabsPath reports whether path is mounted under the tab layout.
func IsTabsPath(path string) bool {
	tabs := string(domainauth.RouteTabs)
	return path == tabs || strings.HasPrefix(path, tabs+"/")
}

// WaitLoaded polls the identity provider until it reports a loaded snapshot.
func (s *Shell) WaitLoaded(ctx context.Context) (domainauth.Snapshot, error) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		snap, err := s.identity.Snapshot(ctx)
		if err != nil {
			return domainauth.Snapshot{}, fmt.Errorf("read identity: %w", err)
		}
		if snap.Loaded {
			return snap, nil
		}
		select {
		case <-ctx.Done():
			return snap, fmt.Errorf("wait for identity: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

// Resolve returns the route the app settles on when path is opened.
// It holds until identity is loaded, then applies the root gate. Tab routes sync the
// admin probe; admin routes additionally pass the admin gate.
func (s *Shell) Resolve(ctx context.Context, path string) (Resolution, error) {
	res := Resolution{Requested: path, Route: path}

	snap, err := s.WaitLoaded(ctx)
	res.Snapshot = snap
	if err != nil {
		return res, err
	}

	root := domainauth.RootGate(domainauth.RootGateInput{Loaded: snap.Loaded, SignedIn: snap.SignedIn, Path: path})
	if root.HasRedirect() {
		s.redirect(ctx, &res, root.RedirectTo)
	}

	if !IsTabsPath(res.Route) {
		return res, nil
	}

	res.Access = s.access.Sync(ctx, snap)
	res.VisibleTabs = navigation.VisibleTabs(res.Access.IsAdmin)
	res.Banner = res.Access.Error

	if IsAdminPath(res.Route) {
		gate := domainauth.AdminGate(domainauth.AdminGateInput{
			Loaded:       snap.Loaded,
			IsAdmin:      res.Access.IsAdmin,
			AdminLoading: res.Access.IsLoading,
		})
		if gate.Hold() {
			return res, fmt.Errorf("admin access still settling for %s", res.Route)
		}
		if gate.HasRedirect() {
			s.redirect(ctx, &res, gate.RedirectTo)
		}
	}
	return res, nil
}

func (s *Shell) redirect(ctx context.Context, res *Resolution, to domainauth.Route) {
	s.logger.DebugContext(ctx, "redirecting", "from", res.Route, "to", string(to))
	res.Route = string(to)
	res.Redirected = true
}
