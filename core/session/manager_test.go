package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bookstore/core/session"
)

// mockStore implements session.Store for failure paths.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockStore) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *mockStore) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func newManager(t *testing.T) (*session.Manager, *session.MemoryStore) {
	t.Helper()
	store := session.NewMemoryStore()
	m, err := session.NewManager(store)
	require.NoError(t, err)
	return m, store
}

func TestNewManager(t *testing.T) {
	t.Parallel()
	m, err := session.NewManager(nil)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, session.ErrNoStore)
}

func TestManagerLoad(t *testing.T) {
	t.Parallel()

	t.Run("empty store yields empty session", func(t *testing.T) {
		t.Parallel()
		m, _ := newManager(t)
		sess, err := m.Load(t.Context())
		require.NoError(t, err)
		assert.True(t, sess.IsZero())
		assert.False(t, m.IsAuthenticated(t.Context()))
	})

	t.Run("reads values written under the shared keys", func(t *testing.T) {
		t.Parallel()
		m, store := newManager(t)
		ctx := t.Context()
		require.NoError(t, store.Set(ctx, session.KeyToken, "tok"))
		require.NoError(t, store.Set(ctx, session.KeyRole, "admin"))
		require.NoError(t, store.Set(ctx, session.KeyUserID, "42"))

		sess, err := m.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, session.Session{Token: "tok", Role: session.RoleAdmin, UserID: "42"}, sess)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		t.Parallel()
		store := &mockStore{}
		boom := errors.New("boom")
		store.On("Get", mock.Anything, session.KeyToken).Return("", boom)

		m, err := session.NewManager(store)
		require.NoError(t, err)

		_, err = m.Load(t.Context())
		assert.ErrorIs(t, err, session.ErrLoadSession)
		assert.ErrorIs(t, err, boom)
		assert.False(t, m.IsAuthenticated(t.Context()))
	})
}

func TestManagerSave(t *testing.T) {
	t.Parallel()

	t.Run("writes all three keys", func(t *testing.T) {
		t.Parallel()
		m, store := newManager(t)
		ctx := t.Context()

		require.NoError(t, m.Save(ctx, session.Session{Token: "tok", Role: session.RoleCustomer, UserID: "7"}))
		assert.Equal(t, 3, store.Len())

		role, err := m.Role(ctx)
		require.NoError(t, err)
		assert.Equal(t, session.RoleCustomer, role)

		id, err := m.UserID(ctx)
		require.NoError(t, err)
		assert.Equal(t, "7", id)

		token, err := m.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok", token)
		assert.True(t, m.IsAuthenticated(ctx))
	})

	t.Run("rejects session without token", func(t *testing.T) {
		t.Parallel()
		m, store := newManager(t)
		err := m.Save(t.Context(), session.Session{Role: session.RoleAdmin})
		assert.ErrorIs(t, err, session.ErrMissingToken)
		assert.Zero(t, store.Len())
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		t.Parallel()
		store := &mockStore{}
		boom := errors.New("boom")
		store.On("Set", mock.Anything, session.KeyRole, "").Return(boom)
		store.On("Delete", mock.Anything, []string{session.KeyToken, session.KeyRole, session.KeyUserID}).Return(nil)

		m, err := session.NewManager(store)
		require.NoError(t, err)

		err = m.Save(t.Context(), session.Session{Token: "tok"})
		assert.ErrorIs(t, err, session.ErrSaveSession)
		assert.ErrorIs(t, err, boom)
		store.AssertNotCalled(t, "Set", mock.Anything, session.KeyToken, "tok")
		store.AssertExpectations(t)
	})

	t.Run("failed save does not keep the previous role", func(t *testing.T) {
		t.Parallel()
		store := &failingStore{MemoryStore: session.NewMemoryStore()}
		m, err := session.NewManager(store)
		require.NoError(t, err)
		ctx := t.Context()

		require.NoError(t, m.Save(ctx, session.Session{Token: "admin-tok", Role: session.RoleAdmin, UserID: "1"}))

		store.failKey = session.KeyRole
		err = m.Save(ctx, session.Session{Token: "cust-tok", Role: session.RoleCustomer, UserID: "2"})
		require.ErrorIs(t, err, session.ErrSaveSession)

		sess, err := m.Load(ctx)
		require.NoError(t, err)
		assert.False(t, sess.HasRole(session.RoleAdmin))
		assert.False(t, sess.IsAuthenticated())
		assert.True(t, sess.IsZero())
	})
}

// failingStore rejects writes to failKey.
type failingStore struct {
	*session.MemoryStore
	failKey string
}

func (s *failingStore) Set(ctx context.Context, key, value string) error {
	if key == s.failKey {
		return errors.New("write rejected")
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func TestManagerClear(t *testing.T) {
	t.Parallel()

	t.Run("removes every key", func(t *testing.T) {
		t.Parallel()
		m, store := newManager(t)
		ctx := t.Context()
		require.NoError(t, m.Save(ctx, session.Session{Token: "tok", Role: session.RoleAdmin, UserID: "1"}))

		require.NoError(t, m.Clear(ctx))
		assert.Zero(t, store.Len())

		sess, err := m.Load(ctx)
		require.NoError(t, err)
		assert.True(t, sess.IsZero())
	})

	t.Run("clearing an empty session is fine", func(t *testing.T) {
		t.Parallel()
		m, _ := newManager(t)
		assert.NoError(t, m.Clear(t.Context()))
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		t.Parallel()
		store := &mockStore{}
		boom := errors.New("boom")
		store.On("Delete", mock.Anything, []string{session.KeyToken, session.KeyRole, session.KeyUserID}).Return(boom)

		m, err := session.NewManager(store)
		require.NoError(t, err)
		assert.ErrorIs(t, m.Clear(t.Context()), session.ErrClearSession)
		store.AssertExpectations(t)
	})
}
