// Package router implements the bookstore's client-side route table, the
// navigation guard and a small navigator that applies it.
//
// # Guard
//
// Guard is a pure function of (Route, session.Session):
//
//	decision := router.Guard(route, sess)
//	if !decision.Allowed() {
//		// go to decision.RedirectTo()
//	}
//
// Routes that require auth send tokenless sessions to /login. Role-gated routes
// send sessions with a different role to that role's own dashboard (see
// DashboardFor) and sessions with an unrecognized role to /login.
//
// # Navigator
//
// Navigator resolves paths against a Table, loads the session from a
// session.Manager and follows guard redirects:
//
//	nav, err := router.NewNavigator(router.DefaultTable(), sessions)
//	if err != nil {
//		return err
//	}
//	loc, err := nav.Navigate(ctx, "/admin")
//	// loc.Path == "/customer" for a signed-in customer
//
// ForceNavigate is the hook the API client calls after a 401 response.
package router
