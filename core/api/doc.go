// Package api is the HTTP client for the bookstore REST backend.
//
// Every call goes through Client.Do, which attaches the session's bearer token
// and interprets the response:
//
//	sessions, _ := session.NewManager(session.NewMemoryStore())
//	nav, _ := router.NewNavigator(router.DefaultTable(), sessions)
//
//	client, err := api.New(api.Config{BaseURL: "http://localhost:8080/api"}, sessions,
//		api.WithNavigator(nav),
//		api.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//
//	resp, err := client.Books().Search(ctx, "go", nil)
//	result := api.Normalize(resp, err)
//
// # Session expiry
//
// A 401 from any endpoint clears the whole session (token, role, user id) and
// forces the navigator to /login. The *HTTPError is still returned to the
// caller. Nothing is retried.
//
// # Errors
//
//   - *HTTPError: the backend answered with a non-2xx status
//   - *NetworkError: the request was sent but no response arrived
//   - *RequestError: the request could not be built
//
// HandleError and FormatResponse turn outcomes into a Result with a stable
// {success, data, message, error, status} shape.
//
// # Endpoint groups
//
// Auth, Books, Orders, Customers, Analytics, DataStructures, Algorithms and
// Performance return thin request builders, one method per backend endpoint.
package api
