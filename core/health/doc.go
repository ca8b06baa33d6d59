// Package health runs readiness probes against the services the bookstore
// tooling depends on.
//
// Probes follow the func(context.Context) error signature exposed by the
// integration packages:
//
//	err := health.Readiness(ctx, log,
//		health.Check{Name: "mongodb", Probe: mongo.Healthcheck(client)},
//		health.Check{Name: "redis", Probe: redis.Healthcheck(rdb)},
//	)
//
// Every probe runs, even after a failure, so the caller sees the full picture.
package health
