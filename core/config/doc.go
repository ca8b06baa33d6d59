// Package config loads environment configuration into tagged structs.
//
// Every binary in the module reads its settings the same way: a struct with
// caarlos0/env tags, filled by Load. A .env file in the working directory is
// applied once, before the first parse, through godotenv.
//
//	type Config struct {
//		BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8080/api"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// MustLoad panics instead of returning the error and is meant for main.
//
// Results are cached per struct type, so repeated loads of api.Config or
// mongo.Config during one process are cheap and always agree. Reset drops the
// cache; tests use it together with t.Setenv.
package config
