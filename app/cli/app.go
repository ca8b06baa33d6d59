package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/bookstore/app/migration"
	"github.com/dmitrymomot/bookstore/core/api"
	"github.com/dmitrymomot/bookstore/core/config"
	"github.com/dmitrymomot/bookstore/core/health"
	"github.com/dmitrymomot/bookstore/core/logger"
	"github.com/dmitrymomot/bookstore/core/router"
	"github.com/dmitrymomot/bookstore/core/session"
	redisdb "github.com/dmitrymomot/bookstore/integration/database/redis"
)

// App wires configuration, logging and backends into the bookstore commands.
// Anything not supplied through options is built from the environment on first use.
type App struct {
	out        io.Writer
	logger     *slog.Logger
	store      session.Store
	connector  migration.Connector
	httpClient *http.Client
	apiConfig  *api.Config
	checks     []health.Check

	closers []func() error
}

// Option configures an App.
type Option func(*App)

// WithOutput sets where command results are printed. Logs are not affected.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}

// WithLogger sets the logger instead of building one from Config.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// WithSessionStore replaces the Redis session store.
func WithSessionStore(s session.Store) Option {
	return func(a *App) {
		a.store = s
	}
}

// WithConnector replaces the MongoDB connector used by migrate-customers.
func WithConnector(c migration.Connector) Option {
	return func(a *App) {
		a.connector = c
	}
}

// WithHTTPClient sets the HTTP client for backend calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(a *App) {
		a.httpClient = hc
	}
}

// WithAPIConfig sets the backend configuration instead of reading it from the environment.
func WithAPIConfig(cfg api.Config) Option {
	return func(a *App) {
		a.apiConfig = &cfg
	}
}

// WithChecks replaces the readiness probes run by the health command.
func WithChecks(checks ...health.Check) Option {
	return func(a *App) {
		a.checks = checks
	}
}

// New creates an App.
func New(opts ...Option) *App {
	a := &App{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Execute runs the command line given by args and releases every opened backend.
func (a *App) Execute(ctx context.Context, args []string) error {
	cmd := a.Command()
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return errors.Join(err, a.close())
}

// Command builds the root command.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "bookstore",
		Short: "Bookstore client and maintenance tool",
		Long: `bookstore talks to the bookstore backend on behalf of a signed-in user
and runs maintenance jobs against the bookstore database.

Sessions are kept in Redis (REDIS_URL) so that successive invocations share
the same login. The backend is addressed through API_BASE_URL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.AddCommand(
		a.migrateCommand(),
		a.loginCommand(),
		a.logoutCommand(),
		a.whoamiCommand(),
		a.navigateCommand(),
		a.healthCommand(),
	)
	return root
}

func (a *App) setup(cmd *cobra.Command) error {
	if a.out == nil {
		a.out = cmd.OutOrStdout()
	}
	if a.logger != nil {
		return nil
	}
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	a.logger = newLogger(cfg, cmd.ErrOrStderr())
	return nil
}

func newLogger(cfg Config, w io.Writer) *slog.Logger {
	opts := []logger.Option{logger.WithDevelopment(cfg.ServiceName)}
	if cfg.IsProduction() {
		opts = []logger.Option{logger.WithProduction(cfg.ServiceName)}
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	return logger.New(append(opts, logger.WithOutput(w))...)
}

func (a *App) sessions(ctx context.Context) (*session.Manager, error) {
	if a.store == nil {
		var cfg redisdb.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		client, err := redisdb.Connect(ctx, cfg)
		if err != nil {
			return nil, errors.Join(ErrSessionStore, err)
		}
		a.closers = append(a.closers, client.Close)
		a.store = session.NewRedisStore(client)
	}
	return session.NewManager(a.store, session.WithLogger(a.logger))
}

type backend struct {
	sessions  *session.Manager
	navigator *router.Navigator
	api       *api.Client
}

func (a *App) backend(ctx context.Context) (*backend, error) {
	sessions, err := a.sessions(ctx)
	if err != nil {
		return nil, err
	}
	nav, err := router.NewNavigator(nil, sessions, router.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}

	if a.apiConfig == nil {
		var cfg api.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		a.apiConfig = &cfg
	}
	opts := []api.Option{api.WithLogger(a.logger), api.WithNavigator(nav)}
	if a.httpClient != nil {
		opts = append(opts, api.WithHTTPClient(a.httpClient))
	}
	client, err := api.New(*a.apiConfig, sessions, opts...)
	if err != nil {
		return nil, err
	}
	return &backend{sessions: sessions, navigator: nav, api: client}, nil
}

func (a *App) close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
