package ports

import (
	"context"

	"github.com/davidyusaku-13/prima-mobile/internal/domain/admin"
)

// AdminAPI is the privileged probe surface of the backend.
// Errors are *errors.APIError values; callers inspect them with the errors package predicates.
type AdminAPI interface {
	// Root calls GET /admin. Success means the caller has admin access.
	Root(ctx context.Context) (admin.RootResponse, error)
	// Health calls GET /admin/health.
	Health(ctx context.Context) (admin.Health, error)
	// Users calls GET /admin/users.
	Users(ctx context.Context) ([]admin.User, error)
}
