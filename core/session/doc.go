// Package session holds the client-side credential triple (token, role, user id)
// that gates navigation and outbound API requests.
//
// The triple lives in a flat key-value Store under the keys userToken, userRole
// and userId. There is no structured serialization and no client-side expiry:
// a session ends when the user logs out or when the backend rejects the token.
//
// # Manager
//
// Manager is the explicit session context passed to the router navigator and to
// the API client constructor, so neither depends on hidden global state:
//
//	store := session.NewMemoryStore()
//	sessions, err := session.NewManager(store, session.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	// After login
//	err = sessions.Save(ctx, session.Session{
//		Token:  resp.Token,
//		Role:   session.RoleCustomer,
//		UserID: resp.Customer.ID,
//	})
//
//	// Before navigation or a request
//	sess, err := sessions.Load(ctx)
//
//	// On logout or after a 401
//	err = sessions.Clear(ctx)
//
// # Stores
//
//   - MemoryStore: in-process map, safe for concurrent use.
//   - RedisStore: go-redis backed store; keys are prefixed with DefaultRedisPrefix.
//
// # Roles
//
// Only RoleAdmin and RoleCustomer are recognized. Session.HasRole requires a
// token as well as a matching role: a role without a token never grants access.
//
// # Token claims
//
// ParseClaims decodes the backend JWT without verification so clients can show
// who is signed in and when the token expires. It is never used for
// authorization decisions.
package session
