package auth

// unauthenticatedRoutes is the fixed allow-list of routes reachable while signed out.
var unauthenticatedRoutes = map[string]struct{}{
	string(RouteSignIn): {},
	string(RouteSignUp): {},
}

// IsUnauthenticatedRoute reports whether path is reachable without signing in.
func IsUnauthenticatedRoute(path string) bool {
	_, ok := unauthenticatedRoutes[path]
	return ok
}

// RootGateInput is the input tuple of RootGate.
type RootGateInput struct {
	Loaded   bool
	SignedIn bool
	Path     string
}

// RootGate decides whether the application stack may render for the current path.
// It holds while identity is loading, sends signed-out users to sign-in, and sends
// signed-in users away from the sign-in/sign-up screens.
func RootGate(in RootGateInput) GateDecision {
	if !in.Loaded {
		return decisionHold
	}

	onAuthRoute := IsUnauthenticatedRoute(in.Path)
	switch {
	case !in.SignedIn && !onAuthRoute:
		return renderAndRedirect(RouteSignIn)
	case in.SignedIn && onAuthRoute:
		return renderAndRedirect(RouteTabs)
	default:
		return decisionRender
	}
}

// AdminGateInput is the input tuple of AdminGate.
type AdminGateInput struct {
	Loaded       bool
	IsAdmin      bool
	AdminLoading bool
}

// AdminGate decides whether the admin section may render.
// Unlike RootGate it also holds while the role probe is in flight, so admin content
// never shows before the probe settles.
func AdminGate(in AdminGateInput) GateDecision {
	if !in.Loaded || in.AdminLoading {
		return decisionHold
	}
	if !in.IsAdmin {
		return renderAndRedirect(RouteTabs)
	}
	return decisionRender
}
