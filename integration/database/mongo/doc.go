// Package mongo opens verified MongoDB connections for the bookstore tools.
//
// New dials the server from Config, pings the primary and only then hands the
// client back. NewWithDatabase does the same and returns the database named
// in the connection URL when no explicit name is given:
//
//	var cfg mongo.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	db, err := mongo.NewWithDatabase(ctx, cfg, "")
//	if err != nil {
//		return err
//	}
//	defer db.Client().Disconnect(context.WithoutCancel(ctx))
//
//	customers := db.Collection("customers")
//
// Settings and their defaults:
//
//	MONGODB_URI                 mongodb://localhost:27017/bookstore
//	MONGODB_CONNECT_TIMEOUT     10s
//	MONGODB_MAX_POOL_SIZE       100
//	MONGODB_MIN_POOL_SIZE       1
//	MONGODB_MAX_CONN_IDLE_TIME  300s
//	MONGODB_RETRY_WRITES        false
//	MONGODB_RETRY_READS         false
//	MONGODB_RETRY_ATTEMPTS      1
//	MONGODB_RETRY_INTERVAL      5s
//
// Connect retries and driver-level retryable operations are off by default.
// The customer migration must fail fast when the store is unreachable and
// must never replay a write on its own.
//
// Healthcheck adapts a client to the func(context.Context) error probe
// signature used by the health package.
package mongo
