package migration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/bookstore/core/logger"
)

// State is a step of the migration lifecycle.
type State int

const (
	StateDisconnected State = iota
	StateConnected
	StateMigrating
	StateReporting
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnected:
		return "connected"
	case StateMigrating:
		return "migrating"
	case StateReporting:
		return "reporting"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Job upgrades every customer record in place: connect, scan, patch, report, disconnect.
// Records are processed sequentially. There is no transaction across records.
type Job struct {
	connector       Connector
	logger          *slog.Logger
	defaultPassword string
	hashCost        int
	resumeAfter     any

	mu    sync.Mutex
	state State
	ran   bool
}

// Option configures a Job.
type Option func(*Job)

// WithLogger sets the job's logger.
func WithLogger(l *slog.Logger) Option {
	return func(j *Job) {
		if l != nil {
			j.logger = l
		}
	}
}

// WithDefaultPassword overrides DefaultPassword.
func WithDefaultPassword(password string) Option {
	return func(j *Job) {
		if password != "" {
			j.defaultPassword = password
		}
	}
}

// WithHashCost overrides DefaultHashCost. Costs below bcrypt.MinCost fall back to bcrypt.DefaultCost.
func WithHashCost(cost int) Option {
	return func(j *Job) {
		j.hashCost = cost
	}
}

// WithResumeAfter skips customers whose _id is not greater than id.
func WithResumeAfter(id any) Option {
	return func(j *Job) {
		j.resumeAfter = id
	}
}

// NewJob creates a migration job.
func NewJob(connector Connector, opts ...Option) (*Job, error) {
	if connector == nil {
		return nil, ErrNoConnector
	}
	j := &Job{
		connector:       connector,
		logger:          logger.NewNope(),
		defaultPassword: DefaultPassword,
		hashCost:        DefaultHashCost,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j, nil
}

// NewJobFromConfig creates a job from environment configuration. Options override cfg.
func NewJobFromConfig(cfg Config, connector Connector, opts ...Option) (*Job, error) {
	base := []Option{
		WithDefaultPassword(cfg.DefaultPassword),
	}
	if cfg.HashCost > 0 {
		base = append(base, WithHashCost(cfg.HashCost))
	}
	if cfg.ResumeAfter != "" {
		id, err := bson.ObjectIDFromHex(cfg.ResumeAfter)
		if err != nil {
			return nil, errors.Join(ErrInvalidResumeID, err)
		}
		base = append(base, WithResumeAfter(id))
	}
	return NewJob(connector, append(base, opts...)...)
}

// State returns the current lifecycle state.
func (j *Job) State() State {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.state
}

// Run executes the migration once. On failure the returned report still
// describes the records migrated before the failure.
func (j *Job) Run(ctx context.Context) (Report, error) {
	j.mu.Lock()
	if j.ran {
		j.mu.Unlock()
		return Report{}, ErrAlreadyRan
	}
	j.ran = true
	j.mu.Unlock()

	start := time.Now()
	report := Report{}

	customers, err := j.connector.Connect(ctx)
	if err != nil {
		j.setState(ctx, StateFailed)
		j.logger.ErrorContext(ctx, "customer store connection failed", logger.Error(err))
		return report, errors.Join(ErrConnect, err)
	}
	j.setState(ctx, StateConnected)

	// One hash for every customer without a password.
	hash, err := bcrypt.GenerateFromPassword([]byte(j.defaultPassword), j.hashCost)
	if err != nil {
		j.fail(ctx, customers, err)
		return report, errors.Join(ErrHashPassword, err)
	}
	passwordHash := string(hash)

	j.setState(ctx, StateMigrating)
	err = customers.Scan(ctx, j.resumeAfter, func(doc bson.M) error {
		report.Scanned++
		id := doc["_id"]

		patch := Plan(doc, passwordHash)
		if patch.Empty() {
			report.Skipped++
			report.LastID = id
			return nil
		}
		if err := customers.Patch(ctx, id, patch.Update()); err != nil {
			return &patchError{id: id, err: err}
		}

		report.Migrated++
		if assignsPassword(patch) {
			report.PasswordsAssigned++
		}
		report.LastID = id
		j.logger.InfoContext(ctx, "customer migrated",
			logger.DocumentID(id),
			slog.Any("email", doc["email"]),
		)
		return nil
	})
	if err != nil {
		report.Duration = time.Since(start)
		j.fail(ctx, customers, err)
		var pe *patchError
		if errors.As(err, &pe) {
			return report, errors.Join(ErrPatchRecord, pe)
		}
		return report, errors.Join(ErrScan, err)
	}

	j.setState(ctx, StateReporting)
	report.Duration = time.Since(start)
	report.Log(ctx, j.logger)

	if err := customers.Close(ctx); err != nil {
		j.logger.WarnContext(ctx, "failed to close customer store", logger.Error(err))
	}
	j.setState(ctx, StateDisconnected)
	return report, nil
}

func (j *Job) fail(ctx context.Context, customers Customers, cause error) {
	j.setState(ctx, StateFailed)
	j.logger.ErrorContext(ctx, "customer migration failed", logger.Error(cause))
	if err := customers.Close(ctx); err != nil {
		j.logger.WarnContext(ctx, "failed to close customer store", logger.Error(err))
	}
}

func (j *Job) setState(ctx context.Context, s State) {
	j.mu.Lock()
	j.state = s
	j.mu.Unlock()
	j.logger.DebugContext(ctx, "migration state", logger.State(s.String()))
}

func assignsPassword(p Patch) bool {
	for _, e := range p.Set {
		if e.Key == FieldPassword {
			return true
		}
	}
	return false
}

type patchError struct {
	id  any
	err error
}

func (e *patchError) Error() string {
	return fmt.Sprintf("customer %v: %v", e.id, e.err)
}

func (e *patchError) Unwrap() error {
	return e.err
}
