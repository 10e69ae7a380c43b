package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davidyusaku-13/prima-mobile/internal/adminapi"
	"github.com/davidyusaku-13/prima-mobile/internal/apiclient"
	"github.com/davidyusaku-13/prima-mobile/internal/ports"
)

func newHTTPAdminAccess(t *testing.T, status int, body string) *AdminAccessService {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	api := adminapi.New(apiclient.New(apiclient.Options{
		BaseURL: server.URL,
		Tokens: ports.TokenProviderFunc(func(context.Context) (string, error) {
			return "token", nil
		}),
	}))
	return NewAdminAccessService(AdminAccessServiceOptions{
		API:    api,
		Config: AdminAccessConfig{HasAdminTab: true},
	})
}

func TestAdminAccessService_SuccessIgnoresBodyShape(t *testing.T) {
	bodies := []string{
		`{"status":"ok"}`,
		`{"status":true}`,
		`[]`,
		`"ok"`,
		`{"section":{"name":"admin"}}`,
	}
	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			svc := newHTTPAdminAccess(t, http.StatusOK, body)

			state := svc.Sync(context.Background(), signedIn)

			assert.Equal(t, AdminAccessState{IsAdmin: true}, state)
		})
	}
}

func TestAdminAccessService_ForbiddenOverHTTP(t *testing.T) {
	svc := newHTTPAdminAccess(t, http.StatusForbidden, `{"message":"Forbidden"}`)

	state := svc.Sync(context.Background(), signedIn)

	assert.Equal(t, AdminAccessState{}, state)
}
