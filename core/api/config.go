package api

// Config holds API client settings loaded from the environment.
type Config struct {
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8080/api"`
}
