// Package cli implements the bookstore command line.
//
// Commands:
//
//	bookstore migrate-customers        upgrade legacy customer records in MongoDB
//	bookstore login <email> <password> sign in and store the session
//	bookstore logout                   sign out and wipe the session
//	bookstore whoami [--verify]        show the stored session
//	bookstore navigate <path>          resolve a route through the navigation guard
//	bookstore health                   check MongoDB and Redis
//
// Backends are built from the environment on first use (see Config,
// api.Config, mongo.Config, redis.Config and migration.Config). Tests and
// embedding programs replace them with options:
//
//	app := cli.New(
//		cli.WithSessionStore(session.NewMemoryStore()),
//		cli.WithAPIConfig(api.Config{BaseURL: srv.URL}),
//	)
//	err := app.Execute(ctx, []string{"whoami"})
package cli
