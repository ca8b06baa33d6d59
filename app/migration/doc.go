// Package migration upgrades legacy customer records in MongoDB in place.
//
// For every document in the customers collection the job fills in a bcrypt
// hashed default password and a derived fullName when they are missing, and
// drops the legacy address, browsingHistory, isActive and
// preferences.notifications fields. Each customer gets at most one update.
// Customers that are already in the target shape are not written to.
//
// The default password is hashed once per run, so every customer that receives
// it shares the same hash. The report warns the operator about them.
//
//	cfg := migration.Config{}
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	job, err := migration.NewJobFromConfig(cfg, migration.MongoConnector{Config: mongoCfg},
//		migration.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//	report, err := job.Run(ctx)
//
// Records are processed one at a time in ascending _id order. A failed update
// stops the run; earlier updates are kept and Report.LastID can be passed to
// WithResumeAfter (or MIGRATION_RESUME_AFTER) to continue.
package migration
