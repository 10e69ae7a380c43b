// Package mocks provides mock implementations for testing the prima mobile client.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our port interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	t.Cleanup(ctrl.Finish)
//	api := mocks.NewMockAdminAPI(ctrl)
//	api.EXPECT().Root(gomock.Any()).Return(admin.RootResponse{}, nil)
package mocks

// Generate mock for AdminAPI interface from internal/ports package.
// This creates MockAdminAPI with methods for all AdminAPI interface methods:
// Root, Health, Users
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=admin_api_mock.go github.com/davidyusaku-13/prima-mobile/internal/ports AdminAPI

// Generate mock for TokenProvider interface from internal/ports package.
// This creates MockTokenProvider with methods for all TokenProvider interface methods:
// Token
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=token_provider_mock.go github.com/davidyusaku-13/prima-mobile/internal/ports TokenProvider

// Generate mock for IdentityProvider interface from internal/ports package.
// This creates MockIdentityProvider with methods for all IdentityProvider interface methods:
// Snapshot
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=identity_provider_mock.go github.com/davidyusaku-13/prima-mobile/internal/ports IdentityProvider

// Generate mock for PasswordSignIn interface from internal/ports package.
// This creates MockPasswordSignIn with methods for all PasswordSignIn interface methods:
// SignIn
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=password_sign_in_mock.go github.com/davidyusaku-13/prima-mobile/internal/ports PasswordSignIn
