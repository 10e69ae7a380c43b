package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/davidyusaku-13/prima-mobile/internal/domain/admin"
	domainauth "github.com/davidyusaku-13/prima-mobile/internal/domain/auth"
	apperrors "github.com/davidyusaku-13/prima-mobile/internal/errors"
	"github.com/davidyusaku-13/prima-mobile/internal/mocks"
	authmocks "github.com/davidyusaku-13/prima-mobile/internal/mocks/auth"
	"github.com/davidyusaku-13/prima-mobile/internal/navigation"
)

func newShell(t *testing.T, identity *authmocks.MockIdentityProvider) (*Shell, *mocks.MockAdminAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAdminAPI(ctrl)
	access := NewAdminAccessService(AdminAccessServiceOptions{
		API:    api,
		Config: AdminAccessConfig{HasAdminTab: navigation.HasAdminTab()},
	})
	shell := NewShell(ShellOptions{
		Identity: identity,
		Access:   access,
		Config:   ShellConfig{PollInterval: time.Millisecond},
	})
	return shell, api
}

func TestNewShell_RequiredDependencies(t *testing.T) {
	assert.Panics(t, func() { NewShell(ShellOptions{}) })
	assert.Panics(t, func() { NewShell(ShellOptions{Identity: authmocks.NewSignedOutProvider()}) })
}

func TestPathPredicates(t *testing.T) {
	assert.True(t, IsAdminPath("/(tabs)/admin"))
	assert.True(t, IsAdminPath("/(tabs)/admin/users"))
	assert.False(t, IsAdminPath("/(tabs)/administrator"))
	assert.True(t, IsTabsPath("/(tabs)"))
	assert.True(t, IsTabsPath("/(tabs)/pasien"))
	assert.False(t, IsTabsPath("/sign-in"))
}

func TestShell_Resolve_SignedOutGoesToSignIn(t *testing.T) {
	shell, _ := newShell(t, authmocks.NewSignedOutProvider())

	res, err := shell.Resolve(context.Background(), "/(tabs)/admin")

	require.NoError(t, err)
	assert.Equal(t, "/sign-in", res.Route)
	assert.True(t, res.Redirected)
}

func TestShell_Resolve_SignedInLeavesAuthScreens(t *testing.T) {
	shell, api := newShell(t, authmocks.NewSignedInProvider("user_1", "tok"))
	api.EXPECT().Root(gomock.Any()).Return(admin.RootResponse{}, apperrors.HTTP("/admin", 403, "Forbidden"))

	res, err := shell.Resolve(context.Background(), "/sign-up")

	require.NoError(t, err)
	assert.Equal(t, "/(tabs)", res.Route)
	assert.Len(t, res.VisibleTabs, 4)
	assert.Empty(t, res.Banner)
}

func TestShell_Resolve_WaitsForIdentity(t *testing.T) {
	identity := &authmocks.MockIdentityProvider{Snapshots: []domainauth.Snapshot{
		{},
		{},
		{Loaded: true},
	}}
	shell, _ := newShell(t, identity)

	res, err := shell.Resolve(context.Background(), "/sign-in")

	require.NoError(t, err)
	assert.Equal(t, "/sign-in", res.Route)
	assert.False(t, res.Redirected)
	assert.Equal(t, 3, identity.SnapshotCalls())
}

func TestShell_Resolve_HoldsUntilContextEnds(t *testing.T) {
	identity := &authmocks.MockIdentityProvider{Snapshots: []domainauth.Snapshot{{}}}
	shell, _ := newShell(t, identity)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := shell.Resolve(ctx, "/(tabs)")

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestShell_Resolve_AdminAllowed(t *testing.T) {
	shell, api := newShell(t, authmocks.NewSignedInProvider("user_1", "tok"))
	api.EXPECT().Root(gomock.Any()).Return(admin.RootResponse{Status: "ok", Section: "admin"}, nil)

	res, err := shell.Resolve(context.Background(), "/(tabs)/admin/users")

	require.NoError(t, err)
	assert.Equal(t, "/(tabs)/admin/users", res.Route)
	assert.False(t, res.Redirected)
	assert.Len(t, res.VisibleTabs, 5)
}

func TestShell_Resolve_NonAdminBouncedToTabs(t *testing.T) {
	shell, api := newShell(t, authmocks.NewSignedInProvider("user_1", "tok"))
	api.EXPECT().Root(gomock.Any()).Return(admin.RootResponse{}, apperrors.HTTP("/admin", 401, "Unauthorized"))

	res, err := shell.Resolve(context.Background(), "/(tabs)/admin")

	require.NoError(t, err)
	assert.Equal(t, "/(tabs)", res.Route)
	assert.True(t, res.Redirected)
}

func TestShell_Resolve_ProbeFailureShowsBanner(t *testing.T) {
	shell, api := newShell(t, authmocks.NewSignedInProvider("user_1", "tok"))
	api.EXPECT().Root(gomock.Any()).Return(admin.RootResponse{}, apperrors.HTTP("/admin", 500, "boom"))

	res, err := shell.Resolve(context.Background(), "/(tabs)/admin")

	require.NoError(t, err)
	assert.Equal(t, "/(tabs)", res.Route)
	assert.Equal(t, "boom", res.Banner)
}

func TestShell_Resolve_IdentityError(t *testing.T) {
	ctrl := gomock.NewController(t)
	identity := mocks.NewMockIdentityProvider(ctrl)
	identity.EXPECT().Snapshot(gomock.Any()).Return(domainauth.Snapshot{}, errors.New("provider down"))

	shell := NewShell(ShellOptions{
		Identity: identity,
		Access:   NewAdminAccessService(AdminAccessServiceOptions{API: mocks.NewMockAdminAPI(ctrl)}),
	})

	_, err := shell.Resolve(context.Background(), "/(tabs)")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider down")
}
