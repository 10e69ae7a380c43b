// Package adminapi exposes the three read operations of the backend admin surface.
package adminapi

import (
	"context"
	"encoding/json"

	"github.com/davidyusaku-13/prima-mobile/internal/apiclient"
	"github.com/davidyusaku-13/prima-mobile/internal/domain/admin"
	"github.com/davidyusaku-13/prima-mobile/internal/ports"
)

// Paths of the admin surface.
const (
	PathRoot   = "/admin"
	PathHealth = "/admin/health"
	PathUsers  = "/admin/users"
)

// Client implements ports.AdminAPI on top of the API client. Errors are passed
// through untouched; recognizing 401/403 as "not an admin" is the caller's decision.
type Client struct {
	http *apiclient.Client
}

var _ ports.AdminAPI = (*Client)(nil)

// New wraps an API client.
func New(api *apiclient.Client) *Client {
	return &Client{http: api}
}

// Root probes GET /admin. Any 2xx JSON body succeeds; fields that do not fit
// RootResponse are left empty.
func (c *Client) Root(ctx context.Context) (admin.RootResponse, error) {
	var raw json.RawMessage
	if err := c.http.GetJSON(ctx, PathRoot, &raw); err != nil {
		return admin.RootResponse{}, err
	}
	var root admin.RootResponse
	_ = json.Unmarshal(raw, &root)
	return root, nil
}

// Health fetches GET /admin/health.
func (c *Client) Health(ctx context.Context) (admin.Health, error) {
	return apiclient.Get[admin.Health](ctx, c.http, PathHealth)
}

// Users fetches GET /admin/users. A JSON null body yields an empty list.
func (c *Client) Users(ctx context.Context) ([]admin.User, error) {
	users, err := apiclient.Get[[]admin.User](ctx, c.http, PathUsers)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []admin.User{}
	}
	return users, nil
}
