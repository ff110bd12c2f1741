// Package routing defines the console's navigation surface and the policy
// deciding whether a session may enter a route.
package routing

import domainauth "github.com/se1dhe/botpanel/internal/domain/auth"

// Route is a navigable path within the console.
type Route string

const (
	RouteRoot      Route = "/"
	RouteLogin     Route = "/login"
	RouteDashboard Route = "/dashboard"
	RouteBots      Route = "/bots"
	RouteUsers     Route = "/users"
)

// Valid reports whether the route is part of the navigation surface.
func (r Route) Valid() bool {
	switch r {
	case RouteRoot, RouteLogin, RouteDashboard, RouteBots, RouteUsers:
		return true
	default:
		return false
	}
}

// Capability is the access requirement a route carries.
type Capability int

const (
	// CapabilityNone allows any session.
	CapabilityNone Capability = iota
	// CapabilityAuthenticated requires a resolved, authenticated session.
	CapabilityAuthenticated
	// CapabilityAdmin requires an authenticated session with the admin role.
	CapabilityAdmin
)

// routeCapabilities is the fixed policy table mapping each route to its
// access requirement.
var routeCapabilities = map[Route]Capability{
	RouteRoot:      CapabilityAuthenticated,
	RouteLogin:     CapabilityNone,
	RouteDashboard: CapabilityAuthenticated,
	RouteBots:      CapabilityAuthenticated,
	RouteUsers:     CapabilityAdmin,
}

// RequiredCapability returns the capability a route demands. Unknown routes
// require authentication; an unmapped path must not be an open door.
func RequiredCapability(route Route) Capability {
	if capability, ok := routeCapabilities[route]; ok {
		return capability
	}
	return CapabilityAuthenticated
}

// Decision is the outcome of evaluating a navigation against the session.
type Decision int

const (
	// DecisionAllow renders the requested route.
	DecisionAllow Decision = iota
	// DecisionRedirectLogin sends the navigation to the sign-in view.
	DecisionRedirectLogin
	// DecisionRedirectDashboard sends the navigation to the default
	// authenticated view.
	DecisionRedirectDashboard
	// DecisionPending defers the navigation until the session resolves.
	// Guarded routes render a neutral loading state instead of racing to
	// a redirect that hydration may immediately reverse.
	DecisionPending
)

// String implements fmt.Stringer.
func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionRedirectDashboard:
		return "redirect-dashboard"
	case DecisionPending:
		return "pending"
	default:
		return "unknown"
	}
}

// Evaluate decides whether the session may enter the route. It is a pure
// function of its inputs and is re-run on every navigation and every session
// transition; decisions are never cached.
func Evaluate(snap domainauth.Snapshot, route Route) Decision {
	// The sign-in view is the one route with inverted guarding: an
	// authenticated session has no business there.
	if route == RouteLogin {
		if snap.IsAuthenticated() {
			return DecisionRedirectDashboard
		}
		return DecisionAllow
	}

	// The root route only forwards to the default view once allowed.
	if route == RouteRoot {
		if decision := evaluateCapability(snap, CapabilityAuthenticated); decision != DecisionAllow {
			return decision
		}
		return DecisionRedirectDashboard
	}

	return evaluateCapability(snap, RequiredCapability(route))
}

func evaluateCapability(snap domainauth.Snapshot, capability Capability) Decision {
	if capability == CapabilityNone {
		return DecisionAllow
	}

	switch snap.State {
	case domainauth.StateUnresolved:
		return DecisionPending
	case domainauth.StateUnauthenticated:
		return DecisionRedirectLogin
	}

	if !snap.IsAuthenticated() {
		return DecisionRedirectLogin
	}
	if capability == CapabilityAdmin && !snap.IsAdmin() {
		return DecisionRedirectLogin
	}
	return DecisionAllow
}
