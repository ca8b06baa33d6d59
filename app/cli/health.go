package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/bookstore/core/config"
	"github.com/dmitrymomot/bookstore/core/health"
	mongodb "github.com/dmitrymomot/bookstore/integration/database/mongo"
	redisdb "github.com/dmitrymomot/bookstore/integration/database/redis"
)

func (a *App) healthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that MongoDB and Redis are reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			checks := a.checks
			if checks == nil {
				var err error
				if checks, err = a.defaultChecks(ctx); err != nil {
					return err
				}
			}
			if err := health.Readiness(ctx, a.logger, checks...); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "READY")
			return nil
		},
	}
}

// defaultChecks connects to every backend. A backend that cannot be reached
// becomes a failing probe so the report covers all of them.
func (a *App) defaultChecks(ctx context.Context) ([]health.Check, error) {
	var mcfg mongodb.Config
	if err := config.Load(&mcfg); err != nil {
		return nil, err
	}
	var rcfg redisdb.Config
	if err := config.Load(&rcfg); err != nil {
		return nil, err
	}

	checks := make([]health.Check, 0, 2)

	if client, err := mongodb.New(ctx, mcfg); err != nil {
		checks = append(checks, failing("mongodb", err))
	} else {
		a.closers = append(a.closers, func() error {
			return client.Disconnect(context.WithoutCancel(ctx))
		})
		checks = append(checks, health.Check{Name: "mongodb", Probe: mongodb.Healthcheck(client)})
	}

	if client, err := redisdb.Connect(ctx, rcfg); err != nil {
		checks = append(checks, failing("redis", err))
	} else {
		a.closers = append(a.closers, client.Close)
		checks = append(checks, health.Check{Name: "redis", Probe: redisdb.Healthcheck(client)})
	}
	return checks, nil
}

func failing(name string, err error) health.Check {
	return health.Check{Name: name, Probe: func(context.Context) error { return err }}
}
