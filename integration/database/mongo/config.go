package mongo

import "time"

// Config holds MongoDB connection settings.
// Driver-level retryable reads and writes are off by default: a failed
// operation surfaces to the caller instead of being replayed.
type Config struct {
	ConnectionURL   string        `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017/bookstore"`
	ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`
	MinPoolSize     uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"`
	RetryWrites     bool          `env:"MONGODB_RETRY_WRITES" envDefault:"false"`
	RetryReads      bool          `env:"MONGODB_RETRY_READS" envDefault:"false"`
	RetryAttempts   int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"1"`
	RetryInterval   time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`
}
