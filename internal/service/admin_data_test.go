package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/davidyusaku-13/prima-mobile/internal/domain/admin"
	apperrors "github.com/davidyusaku-13/prima-mobile/internal/errors"
	"github.com/davidyusaku-13/prima-mobile/internal/mocks"
)

func newDataService(t *testing.T) (*AdminDataService, *mocks.MockAdminAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAdminAPI(ctrl)
	return NewAdminDataService(AdminDataServiceOptions{API: api}), api
}

func TestAdminErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"http status", apperrors.HTTP("/admin", 503, "down"), "Backend merespons status 503."},
		{"timeout", apperrors.Timeout("/admin", "Request timed out after 10s", nil), "Request timed out after 10s"},
		{"plain error", errors.New("kaput"), "kaput"},
		{"empty error", errors.New(""), unexpectedAdminDataError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AdminErrorMessage(tt.err))
		})
	}
}

func TestAdminDataService_LoadOverview_Success(t *testing.T) {
	svc, api := newDataService(t)
	api.EXPECT().Root(gomock.Any()).Return(admin.RootResponse{Status: "ok", Section: "admin"}, nil)
	api.EXPECT().Health(gomock.Any()).Return(admin.Health{Status: "ok", DB: "up"}, nil)
	api.EXPECT().Users(gomock.Any()).Return([]admin.User{{Email: "a@example.com"}}, nil)

	state, err := svc.LoadOverview(context.Background())

	require.NoError(t, err)
	assert.True(t, state.HasData)
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.Error)
	assert.Equal(t, "admin", state.Data.Root.Section)
	assert.Equal(t, "up", state.Data.Health.DB)
	assert.Len(t, state.Data.Users, 1)
}

func TestAdminDataService_LoadOverview_AnyFailureFailsAll(t *testing.T) {
	svc, api := newDataService(t)
	api.EXPECT().Root(gomock.Any()).Return(admin.RootResponse{Status: "ok"}, nil).AnyTimes()
	api.EXPECT().Health(gomock.Any()).Return(admin.Health{}, apperrors.HTTP("/admin/health", 500, "boom")).AnyTimes()
	api.EXPECT().Users(gomock.Any()).Return(nil, nil).AnyTimes()

	state, err := svc.LoadOverview(context.Background())

	require.Error(t, err)
	assert.False(t, state.HasData)
	assert.Equal(t, "Backend merespons status 500.", state.Error)
	assert.Equal(t, state, svc.OverviewState())
}

func TestAdminDataService_ReloadKeepsPreviousData(t *testing.T) {
	svc, api := newDataService(t)
	gomock.InOrder(
		api.EXPECT().Health(gomock.Any()).Return(admin.Health{Status: "ok"}, nil),
		api.EXPECT().Health(gomock.Any()).Return(admin.Health{}, apperrors.Network("/admin/health", errors.New("dial"))),
	)

	_, err := svc.LoadHealth(context.Background())
	require.NoError(t, err)

	state, err := svc.LoadHealth(context.Background())
	require.Error(t, err)
	assert.True(t, state.HasData)
	assert.Equal(t, "ok", state.Data.Status)
	assert.Equal(t, "Network request failed", state.Error)
}

func TestAdminDataService_LoadUsers_DiscardsSupersededResult(t *testing.T) {
	svc, api := newDataService(t)

	started := make(chan struct{})
	release := make(chan struct{})
	gomock.InOrder(
		api.EXPECT().Users(gomock.Any()).DoAndReturn(func(context.Context) ([]admin.User, error) {
			close(started)
			<-release
			return []admin.User{{Email: "old@example.com"}}, nil
		}),
		api.EXPECT().Users(gomock.Any()).Return([]admin.User{{Email: "new@example.com"}}, nil),
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = svc.LoadUsers(context.Background())
	}()

	<-started
	_, err := svc.LoadUsers(context.Background())
	require.NoError(t, err)
	close(release)
	<-done

	state := svc.UsersState()
	require.Len(t, state.Data, 1)
	assert.Equal(t, "new@example.com", state.Data[0].Email)
	assert.False(t, state.IsLoading)
}
