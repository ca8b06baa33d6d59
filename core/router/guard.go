package router

import "github.com/dmitrymomot/bookstore/core/session"

// Decision is the outcome of a guard check: proceed, or redirect to a path.
type Decision struct {
	redirect string
}

// Proceed allows the navigation.
func Proceed() Decision {
	return Decision{}
}

// Redirect sends the navigation elsewhere.
func Redirect(path string) Decision {
	return Decision{redirect: path}
}

// Allowed reports whether the navigation may continue to its destination.
func (d Decision) Allowed() bool {
	return d.redirect == ""
}

// RedirectTo returns the redirect target, or an empty string when allowed.
func (d Decision) RedirectTo() string {
	return d.redirect
}

func (d Decision) String() string {
	if d.Allowed() {
		return "proceed"
	}
	return "redirect(" + d.redirect + ")"
}

// Guard decides whether sess may enter route. It has no side effects.
//
//  1. Routes requiring auth redirect to login when there is no token.
//  2. Role-gated routes redirect a session with another role to that role's
//     dashboard, or to login when the role is unrecognized.
//  3. Everything else proceeds.
func Guard(route Route, sess session.Session) Decision {
	if route.RequiresAuth && !sess.IsAuthenticated() {
		return Redirect(LoginPath)
	}
	if route.Role != "" && !sess.HasRole(route.Role) {
		// A tokenless session never reaches a dashboard, even if it carries a role.
		if !sess.IsAuthenticated() {
			return Redirect(LoginPath)
		}
		if path, ok := DashboardFor(sess.Role); ok {
			return Redirect(path)
		}
		return Redirect(LoginPath)
	}
	return Proceed()
}
