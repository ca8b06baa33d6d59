package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when environment variables cannot be parsed into the target struct.
var ErrParsingConfig = errors.New("failed to parse config from environment")

var (
	loadDotEnv sync.Once
	cache      sync.Map // reflect.Type -> any (struct value)
	mu         sync.Mutex
)

// Load populates cfg (a pointer to struct) from environment variables.
// The first call for a given type parses the environment; later calls copy the cached value.
// A .env file in the working directory is loaded once; a missing file is not an error.
func Load[T any](cfg *T) error {
	loadDotEnv.Do(func() {
		_ = godotenv.Load()
	})

	typ := reflect.TypeFor[T]()
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache.Store(typ, parsed)
	*cfg = parsed
	return nil
}

// MustLoad is like Load but panics on failure. Intended for program startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Reset drops every cached configuration. Subsequent Load calls re-read the environment.
func Reset() {
	cache.Range(func(key, _ any) bool {
		cache.Delete(key)
		return true
	})
}
