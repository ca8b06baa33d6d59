// Package redis provides Redis client initialization and health checking.
//
// The bookstore CLI keeps its session (userToken, userRole, userId) in Redis so
// that consecutive invocations share one signed-in state. See
// core/session.RedisStore.
//
// # Key Features
//
//   - Connect: Creates a Redis client with exponential retry logic and connection verification
//   - Healthcheck: Returns a health check function for monitoring Redis connectivity
//
// # Configuration
//
//	type Config struct {
//		ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
//		RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
//		ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
//	}
//
// Both redis:// and rediss:// (TLS) URL schemes are accepted.
//
// # Usage Example
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal("Failed to connect to Redis:", err)
//	}
//	defer client.Close()
//
//	sessions, err := session.NewManager(session.NewRedisStore(client))
//
// # Retry Logic and Timeouts
//
// Connection establishment uses exponential backoff to handle transient network issues:
//
//   - RetryAttempts (3): Number of connection attempts before giving up
//   - RetryInterval (5s): Base interval between retry attempts
//   - ConnectTimeout (30s): Overall timeout for the entire connection process
//
// The retry logic respects context cancellation and will abort early if the context
// deadline is exceeded during the retry process.
//
// # Error Handling
//
//   - ErrFailedToParseRedisConnString: Returned when the Redis connection URL is malformed
//   - ErrRedisNotReady: Returned when Redis doesn't become ready within the timeout period
//   - ErrEmptyConnectionURL: Returned when no connection URL is provided
//   - ErrHealthcheckFailed: Returned when health check ping fails
package redis
