package health

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/bookstore/core/logger"
)

// DefaultProbeTimeout bounds a single probe.
const DefaultProbeTimeout = 5 * time.Second

// Check is a named dependency probe.
type Check struct {
	Name  string
	Probe func(context.Context) error
}

// Readiness runs every check and returns ErrNotReady joined with each probe failure.
func Readiness(ctx context.Context, log *slog.Logger, checks ...Check) error {
	if log == nil {
		log = logger.NewNope()
	}

	var errs []error
	for _, c := range checks {
		start := time.Now()
		err := probe(ctx, c)
		if err != nil {
			log.ErrorContext(ctx, "readiness check failed",
				logger.Component(c.Name),
				logger.Elapsed(start),
				logger.Error(err),
			)
			errs = append(errs, fmt.Errorf("%s: %w", c.Name, err))
			continue
		}
		log.DebugContext(ctx, "readiness check passed", logger.Component(c.Name), logger.Elapsed(start))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrNotReady}, errs...)...)
	}
	return nil
}

func probe(ctx context.Context, c Check) error {
	if c.Probe == nil {
		return ErrNoProbe
	}
	ctx, cancel := context.WithTimeout(ctx, DefaultProbeTimeout)
	defer cancel()
	return c.Probe(ctx)
}
