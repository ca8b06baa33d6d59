package migration

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/bookstore/core/logger"
)

// Report summarizes a migration run.
type Report struct {
	Scanned  int
	Migrated int
	Skipped  int
	// PasswordsAssigned counts customers that received the shared default password.
	PasswordsAssigned int
	// LastID is the _id of the last customer processed; pass it to WithResumeAfter to continue.
	LastID   any
	Duration time.Duration
}

// RemovedFields lists the legacy fields the migration drops.
func RemovedFields() []string {
	return []string{FieldAddress, FieldBrowsingHistory, FieldIsActive, FieldPreferencesNotifications}
}

// AddedFields lists the fields the migration fills in.
func AddedFields() []string {
	return []string{FieldPassword + " (hashed)", FieldFullName + " (firstName + lastName)"}
}

// Log writes the summary and, when default passwords were assigned, the operator warning.
func (r Report) Log(ctx context.Context, log *slog.Logger) {
	log.InfoContext(ctx, "customer migration completed",
		logger.Count("scanned", r.Scanned),
		logger.Count("migrated", r.Migrated),
		logger.Count("skipped", r.Skipped),
		logger.DocumentID(r.LastID),
		logger.Duration(r.Duration),
		slog.Any("removed_fields", RemovedFields()),
		slog.Any("added_fields", AddedFields()),
	)
	if r.PasswordsAssigned > 0 {
		log.WarnContext(ctx, "customers were given the shared default password and must reset it on next login",
			logger.Count("customers", r.PasswordsAssigned),
		)
	}
}
