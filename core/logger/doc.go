// Package logger provides structured logging utilities built on Go's standard slog package.
//
// New builds a *slog.Logger from functional options:
//
//	import "github.com/dmitrymomot/bookstore/core/logger"
//
//	// Development: text format, debug level, stdout
//	log := logger.New(logger.WithDevelopment("bookstore"))
//
//	// Production: JSON format, info level
//	log := logger.New(logger.WithProduction("bookstore"))
//
//	// Custom configuration
//	log := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithOutput(os.Stderr),
//		logger.WithAttr(slog.String("component", "migration")),
//	)
//
// Library packages accept a *slog.Logger through a WithLogger option and fall back
// to NewNope, which discards everything.
//
// # Attribute Helpers
//
// Attribute helpers return an empty slog.Attr for empty input so they can be
// passed unconditionally:
//
//	log.Info("request failed",
//		logger.Method(http.MethodGet),
//		logger.Path("/books"),
//		logger.StatusCode(500),
//		logger.Error(err), // no-op when err == nil
//	)
//
// Navigation helpers (Route, Role, Redirect) and migration helpers (State,
// DocumentID, Count) keep field names consistent across the client and the
// migration job.
package logger
