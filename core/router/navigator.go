package router

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/bookstore/core/logger"
	"github.com/dmitrymomot/bookstore/core/session"
)

// DefaultMaxRedirects bounds guard redirect chains.
const DefaultMaxRedirects = 10

// Location is where a navigation ended up.
type Location struct {
	Path string
	Name string
	// RedirectedFrom is the originally requested path when the guard redirected, empty otherwise.
	RedirectedFrom string
}

// Navigator is the client-side router: it owns the current location and runs
// the guard before every navigation.
type Navigator struct {
	table        *Table
	sessions     *session.Manager
	logger       *slog.Logger
	maxRedirects int

	mu      sync.RWMutex
	current Location
}

// NavigatorOption configures a Navigator.
type NavigatorOption func(*Navigator)

// WithLogger sets the navigator's logger.
func WithLogger(l *slog.Logger) NavigatorOption {
	return func(n *Navigator) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithMaxRedirects overrides DefaultMaxRedirects. Values below 1 are ignored.
func WithMaxRedirects(limit int) NavigatorOption {
	return func(n *Navigator) {
		if limit > 0 {
			n.maxRedirects = limit
		}
	}
}

// NewNavigator creates a navigator over table. A nil table selects DefaultTable.
func NewNavigator(table *Table, sessions *session.Manager, opts ...NavigatorOption) (*Navigator, error) {
	if sessions == nil {
		return nil, ErrNoSessions
	}
	if table == nil {
		table = DefaultTable()
	}
	n := &Navigator{
		table:        table,
		sessions:     sessions,
		logger:       logger.NewNope(),
		maxRedirects: DefaultMaxRedirects,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// Navigate moves to path, following guard redirects until one route proceeds.
// The current location is only updated on success.
func (n *Navigator) Navigate(ctx context.Context, path string) (Location, error) {
	sess, err := n.sessions.Load(ctx)
	if err != nil {
		return Location{}, err
	}

	requested := path
	for range n.maxRedirects + 1 {
		route, ok := n.table.Lookup(path)
		if !ok {
			return Location{}, fmt.Errorf("%w: %s", ErrRouteNotFound, path)
		}

		decision := Guard(route, sess)
		n.logger.DebugContext(ctx, "navigation guard",
			logger.Route(route.Path),
			logger.Role(string(sess.Role)),
			logger.Redirect(decision.RedirectTo()),
		)
		if decision.Allowed() {
			loc := Location{Path: route.Path, Name: route.Name}
			if route.Path != requested {
				loc.RedirectedFrom = requested
			}
			n.mu.Lock()
			n.current = loc
			n.mu.Unlock()
			return loc, nil
		}
		path = decision.RedirectTo()
	}
	return Location{}, fmt.Errorf("%w: from %s", ErrTooManyRedirects, requested)
}

// ForceNavigate performs a hard navigation, used after the backend rejected the session.
// The session is re-read from the store, so a wiped session lands on a public route.
func (n *Navigator) ForceNavigate(ctx context.Context, path string) error {
	n.logger.InfoContext(ctx, "forced navigation", logger.Route(path))
	_, err := n.Navigate(ctx, path)
	return err
}

// Current returns the last successful location.
func (n *Navigator) Current() Location {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.current
}
