package auth

// Package auth contains domain-level types for authentication gating.
// It is pure and free of framework/adapter concerns.

// Role represents a backend user role as reported by the admin API.
// Keep string form; values outside the constants are passed through for display.
type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
)

// Snapshot is the identity provider state read fresh for each gate evaluation.
// It is never cached beyond what the provider itself holds.
type Snapshot struct {
	Loaded   bool
	UserID   string // empty when no user is present
	SignedIn bool
}

// HasUser reports whether the snapshot carries a user identity.
func (s Snapshot) HasUser() bool { return s.UserID != "" }

// Route identifies a navigation target.
type Route string

const (
	// RouteNone means no redirect.
	RouteNone   Route = ""
	RouteSignIn Route = "/sign-in"
	RouteSignUp Route = "/sign-up"
	// RouteTabs is the main (public) tab section.
	RouteTabs Route = "/(tabs)"
	// RouteAdmin is the root of the admin section inside the tabs.
	RouteAdmin Route = "/(tabs)/admin"
)

// GateDecision is the verdict of a gate. It is a value; callers apply it whole.
// ShouldRender=false always comes with RedirectTo=RouteNone (hold).
type GateDecision struct {
	ShouldRender bool
	RedirectTo   Route
}

// Hold reports whether the protected stack must not be rendered yet.
func (d GateDecision) Hold() bool { return !d.ShouldRender }

// HasRedirect reports whether the caller should navigate away after rendering.
func (d GateDecision) HasRedirect() bool { return d.RedirectTo != RouteNone }

var (
	decisionHold   = GateDecision{}
	decisionRender = GateDecision{ShouldRender: true}
)

func renderAndRedirect(to Route) GateDecision {
	return GateDecision{ShouldRender: true, RedirectTo: to}
}

// SignInResult is the outcome of a password sign-in. Status is one of the
// Status* constants; the remaining fields are set only when it is StatusComplete.
type SignInResult struct {
	Status       string
	UserID       string
	RefreshToken string
}

// SignInError is a rejected sign-in. Message is fit for display.
type SignInError struct {
	Message string
	Err     error
}

func (e *SignInError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *SignInError) Unwrap() error { return e.Err }
