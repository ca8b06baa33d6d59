package cli

// Config holds process-level settings for the bookstore command.
type Config struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"bookstore"`
	// LogLevel overrides the environment's default level when set.
	LogLevel string `env:"LOG_LEVEL"`
}

// IsProduction reports whether the command runs with production logging.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
