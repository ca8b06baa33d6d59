package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bookstore/core/config"
)

type testConfig struct {
	BaseURL string `env:"CONFIG_TEST_BASE_URL" envDefault:"http://localhost:8080/api"`
	Retries int    `env:"CONFIG_TEST_RETRIES" envDefault:"1"`
}

type requiredConfig struct {
	Secret string `env:"CONFIG_TEST_SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		config.Reset()
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "http://localhost:8080/api", cfg.BaseURL)
		assert.Equal(t, 1, cfg.Retries)
	})

	t.Run("reads environment", func(t *testing.T) {
		config.Reset()
		t.Setenv("CONFIG_TEST_BASE_URL", "https://shop.example.com/api")
		t.Setenv("CONFIG_TEST_RETRIES", "4")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "https://shop.example.com/api", cfg.BaseURL)
		assert.Equal(t, 4, cfg.Retries)
	})

	t.Run("caches per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("CONFIG_TEST_BASE_URL", "first")
		var first testConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("CONFIG_TEST_BASE_URL", "second")
		var second testConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.BaseURL)
	})

	t.Run("missing required variable", func(t *testing.T) {
		config.Reset()
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	config.Reset()
	var cfg requiredConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}
