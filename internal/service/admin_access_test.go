package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/davidyusaku-13/prima-mobile/internal/domain/admin"
	domainauth "github.com/davidyusaku-13/prima-mobile/internal/domain/auth"
	apperrors "github.com/davidyusaku-13/prima-mobile/internal/errors"
	"github.com/davidyusaku-13/prima-mobile/internal/mocks"
)

var signedIn = domainauth.Snapshot{Loaded: true, UserID: "user_1", SignedIn: true}

func newProbe(t *testing.T, hasAdminTab bool) (*AdminAccessService, *mocks.MockAdminAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAdminAPI(ctrl)
	svc := NewAdminAccessService(AdminAccessServiceOptions{
		API:    api,
		Config: AdminAccessConfig{HasAdminTab: hasAdminTab},
	})
	return svc, api
}

func TestNewAdminAccessService_RequiredDependency(t *testing.T) {
	assert.Panics(t, func() {
		NewAdminAccessService(AdminAccessServiceOptions{})
	})
}

func TestNewAdminAccessService_StartsLoading(t *testing.T) {
	svc, _ := newProbe(t, true)
	assert.Equal(t, AdminAccessState{IsLoading: true}, svc.State())
}

func TestShouldProbeAdminAccess(t *testing.T) {
	tests := []struct {
		name string
		snap domainauth.Snapshot
		tab  bool
		want bool
	}{
		{"eligible", signedIn, true, true},
		{"not loaded", domainauth.Snapshot{UserID: "user_1"}, true, false},
		{"no user", domainauth.Snapshot{Loaded: true}, true, false},
		{"no admin tab", signedIn, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldProbeAdminAccess(tt.snap, tt.tab))
		})
	}
}

func TestAdminAccessService_Sync_Admin(t *testing.T) {
	svc, api := newProbe(t, true)
	api.EXPECT().Root(gomock.Any()).Return(admin.RootResponse{Status: "ok", Section: "admin"}, nil)

	state := svc.Sync(context.Background(), signedIn)

	assert.Equal(t, AdminAccessState{IsAdmin: true}, state)
}

func TestAdminAccessService_Sync_ForbiddenIsNotAdmin(t *testing.T) {
	for _, status := range []int{401, 403} {
		svc, api := newProbe(t, true)
		api.EXPECT().Root(gomock.Any()).
			Return(admin.RootResponse{}, apperrors.HTTP("/admin", status, "Forbidden"))

		state := svc.Sync(context.Background(), signedIn)

		assert.Equal(t, AdminAccessState{}, state, "status %d", status)
	}
}

func TestAdminAccessService_Sync_ServerErrorSurfacesMessage(t *testing.T) {
	svc, api := newProbe(t, true)
	api.EXPECT().Root(gomock.Any()).
		Return(admin.RootResponse{}, apperrors.HTTP("/admin", 500, "boom"))

	state := svc.Sync(context.Background(), signedIn)

	assert.False(t, state.IsAdmin)
	assert.False(t, state.IsLoading)
	assert.Equal(t, "boom", state.Error)
}

func TestAdminAccessService_Sync_EmptyErrorUsesFallback(t *testing.T) {
	svc, api := newProbe(t, true)
	api.EXPECT().Root(gomock.Any()).Return(admin.RootResponse{}, errors.New(""))

	state := svc.Sync(context.Background(), signedIn)

	assert.Equal(t, defaultAdminAccessError, state.Error)
}

func TestAdminAccessService_Sync_Ineligible(t *testing.T) {
	t.Run("signed out settles without a call", func(t *testing.T) {
		svc, _ := newProbe(t, true)
		state := svc.Sync(context.Background(), domainauth.Snapshot{Loaded: true})
		assert.Equal(t, AdminAccessState{}, state)
	})

	t.Run("no admin tab settles without a call", func(t *testing.T) {
		svc, _ := newProbe(t, false)
		state := svc.Sync(context.Background(), signedIn)
		assert.Equal(t, AdminAccessState{}, state)
	})

	t.Run("identity not loaded stays loading", func(t *testing.T) {
		svc, _ := newProbe(t, true)
		state := svc.Sync(context.Background(), domainauth.Snapshot{})
		assert.True(t, state.IsLoading)
		assert.False(t, state.IsAdmin)
	})
}

func TestAdminAccessService_Refresh(t *testing.T) {
	svc, api := newProbe(t, true)
	gomock.InOrder(
		api.EXPECT().Root(gomock.Any()).Return(admin.RootResponse{}, apperrors.HTTP("/admin", 403, "Forbidden")),
		api.EXPECT().Root(gomock.Any()).Return(admin.RootResponse{Status: "ok"}, nil),
	)

	first := svc.Sync(context.Background(), signedIn)
	require.False(t, first.IsAdmin)

	second := svc.Refresh(context.Background())
	assert.True(t, second.IsAdmin)
}

func TestAdminAccessService_DiscardsSupersededResult(t *testing.T) {
	svc, api := newProbe(t, true)

	started := make(chan struct{})
	release := make(chan struct{})
	gomock.InOrder(
		api.EXPECT().Root(gomock.Any()).DoAndReturn(func(context.Context) (admin.RootResponse, error) {
			close(started)
			<-release
			return admin.RootResponse{Status: "ok"}, nil
		}),
		api.EXPECT().Root(gomock.Any()).
			Return(admin.RootResponse{}, apperrors.HTTP("/admin", 403, "Forbidden")),
	)

	var wg sync.WaitGroup
	var slow AdminAccessState
	wg.Add(1)
	go func() {
		defer wg.Done()
		slow = svc.Sync(context.Background(), signedIn)
	}()

	<-started
	fast := svc.Refresh(context.Background())
	assert.Equal(t, AdminAccessState{}, fast)

	close(release)
	wg.Wait()

	// The slow attempt reports the latest state instead of its own result.
	assert.Equal(t, AdminAccessState{}, slow)
	assert.Equal(t, AdminAccessState{}, svc.State())
}

func TestAdminAccessService_SignOutDiscardsInFlightProbe(t *testing.T) {
	svc, api := newProbe(t, true)

	started := make(chan struct{})
	release := make(chan struct{})
	api.EXPECT().Root(gomock.Any()).DoAndReturn(func(context.Context) (admin.RootResponse, error) {
		close(started)
		<-release
		return admin.RootResponse{Status: "ok"}, nil
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		svc.Sync(context.Background(), signedIn)
	}()

	<-started
	svc.Sync(context.Background(), domainauth.Snapshot{Loaded: true})
	close(release)
	<-done

	assert.Equal(t, AdminAccessState{}, svc.State())
}
