package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/bookstore/app/migration"
	"github.com/dmitrymomot/bookstore/core/config"
	mongodb "github.com/dmitrymomot/bookstore/integration/database/mongo"
)

func (a *App) migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-customers",
		Short: "Upgrade legacy customer records in place",
		Long: `Connects to MONGODB_URI and rewrites every document in the customers
collection: missing passwords get the hashed default password, fullName is
derived from firstName and lastName, and legacy fields are removed.

A failed update stops the run. Rerun with MIGRATION_RESUME_AFTER set to the
printed id to continue after the last migrated customer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var cfg migration.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}
			conn := a.connector
			if conn == nil {
				var mcfg mongodb.Config
				if err := config.Load(&mcfg); err != nil {
					return err
				}
				conn = migration.MongoConnector{Config: mcfg}
			}

			job, err := migration.NewJobFromConfig(cfg, conn, migration.WithLogger(a.logger))
			if err != nil {
				return err
			}
			report, err := job.Run(ctx)

			fmt.Fprintf(a.out, "Scanned %d customers: %d migrated, %d already up to date\n",
				report.Scanned, report.Migrated, report.Skipped)
			if err != nil {
				if id, ok := report.LastID.(bson.ObjectID); ok {
					fmt.Fprintf(a.out, "Resume with MIGRATION_RESUME_AFTER=%s\n", id.Hex())
				}
				return err
			}

			fmt.Fprintf(a.out, "Removed fields: %s\n", strings.Join(migration.RemovedFields(), ", "))
			fmt.Fprintf(a.out, "Added fields: %s\n", strings.Join(migration.AddedFields(), ", "))
			if report.PasswordsAssigned > 0 {
				fmt.Fprintf(a.out, "%d customers received the default password and must change it after logging in\n",
					report.PasswordsAssigned)
			}
			return nil
		},
	}
}
