package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/bookstore/core/logger"
)

// Manager is the explicit session context shared by the navigator and the API client.
// It reads and writes the credential triple through a Store.
type Manager struct {
	store  Store
	logger *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for session lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager creates a session manager backed by store.
func NewManager(store Store, opts ...Option) (*Manager, error) {
	if store == nil {
		return nil, ErrNoStore
	}
	m := &Manager{
		store:  store,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Load reads the current session. Missing keys yield empty fields.
func (m *Manager) Load(ctx context.Context) (Session, error) {
	token, err := m.get(ctx, KeyToken)
	if err != nil {
		return Session{}, err
	}
	role, err := m.get(ctx, KeyRole)
	if err != nil {
		return Session{}, err
	}
	userID, err := m.get(ctx, KeyUserID)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, Role: Role(role), UserID: userID}, nil
}

// Save stores all three session values, as done after a successful login.
// The token is written last. When any write fails the whole session is
// cleared, so a new token never pairs with a previous role.
func (m *Manager) Save(ctx context.Context, sess Session) error {
	if sess.Token == "" {
		return ErrMissingToken
	}
	pairs := [...]struct{ key, value string }{
		{KeyRole, string(sess.Role)},
		{KeyUserID, sess.UserID},
		{KeyToken, sess.Token},
	}
	for _, p := range pairs {
		if err := m.store.Set(ctx, p.key, p.value); err != nil {
			if clearErr := m.Clear(ctx); clearErr != nil {
				m.logger.ErrorContext(ctx, "failed to clear partial session", logger.Error(clearErr))
			}
			return errors.Join(ErrSaveSession, err)
		}
	}
	m.logger.DebugContext(ctx, "session saved",
		logger.Role(string(sess.Role)),
		logger.UserID(sess.UserID),
	)
	return nil
}

// Clear removes token, role and user id.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.store.Delete(ctx, KeyToken, KeyRole, KeyUserID); err != nil {
		return errors.Join(ErrClearSession, err)
	}
	m.logger.DebugContext(ctx, "session cleared")
	return nil
}

// IsAuthenticated reports whether a token is present. Store errors count as unauthenticated.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	token, err := m.get(ctx, KeyToken)
	return err == nil && token != ""
}

// Role returns the stored role, or an empty role if absent.
func (m *Manager) Role(ctx context.Context) (Role, error) {
	role, err := m.get(ctx, KeyRole)
	return Role(role), err
}

// UserID returns the stored user id, or an empty string if absent.
func (m *Manager) UserID(ctx context.Context) (string, error) {
	return m.get(ctx, KeyUserID)
}

// Token returns the stored bearer token, or an empty string if absent.
func (m *Manager) Token(ctx context.Context) (string, error) {
	return m.get(ctx, KeyToken)
}

func (m *Manager) get(ctx context.Context, key string) (string, error) {
	v, err := m.store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", errors.Join(ErrLoadSession, err)
	}
	return v, nil
}
