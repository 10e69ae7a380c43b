package auth

// Package auth contains simple hand-written test doubles for identity ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"sync"

	domainauth "github.com/davidyusaku-13/prima-mobile/internal/domain/auth"
	"github.com/davidyusaku-13/prima-mobile/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.IdentityProvider = (*MockIdentityProvider)(nil)
	_ ports.TokenProvider    = (*MockIdentityProvider)(nil)
)

// MockIdentityProvider simulates an identity provider for tests.
//
// Snapshot returns the entries of Snapshots in order, repeating the last one once
// exhausted, so a test can script "loading, loading, loaded". Token returns
// AccessToken unless TokenFunc is set. It is safe for concurrent use.
type MockIdentityProvider struct {
	SnapshotFunc func(ctx context.Context) (domainauth.Snapshot, error)
	TokenFunc    func(ctx context.Context) (string, error)

	Snapshots   []domainauth.Snapshot
	AccessToken string

	mu            sync.Mutex
	snapshotCalls int
	tokenCalls    int
}

// NewSignedInProvider returns a loaded, signed-in provider for userID with a fixed token.
func NewSignedInProvider(userID, token string) *MockIdentityProvider {
	return &MockIdentityProvider{
		Snapshots:   []domainauth.Snapshot{{Loaded: true, UserID: userID, SignedIn: true}},
		AccessToken: token,
	}
}

// NewSignedOutProvider returns a loaded provider with no user.
func NewSignedOutProvider() *MockIdentityProvider {
	return &MockIdentityProvider{
		Snapshots: []domainauth.Snapshot{{Loaded: true}},
	}
}

func (m *MockIdentityProvider) Snapshot(ctx context.Context) (domainauth.Snapshot, error) {
	m.mu.Lock()
	idx := m.snapshotCalls
	m.snapshotCalls++
	m.mu.Unlock()

	if m.SnapshotFunc != nil {
		return m.SnapshotFunc(ctx)
	}
	if len(m.Snapshots) == 0 {
		return domainauth.Snapshot{}, nil
	}
	if idx >= len(m.Snapshots) {
		idx = len(m.Snapshots) - 1
	}
	return m.Snapshots[idx], nil
}

func (m *MockIdentityProvider) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	m.tokenCalls++
	m.mu.Unlock()

	if m.TokenFunc != nil {
		return m.TokenFunc(ctx)
	}
	return m.AccessToken, nil
}

// SnapshotCalls returns how many times Snapshot was called.
func (m *MockIdentityProvider) SnapshotCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotCalls
}

// TokenCalls returns how many times Token was called.
func (m *MockIdentityProvider) TokenCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokenCalls
}
