package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/bookstore/core/session"
)

func TestRoleKnown(t *testing.T) {
	t.Parallel()
	assert.True(t, session.RoleAdmin.Known())
	assert.True(t, session.RoleCustomer.Known())
	assert.False(t, session.Role("").Known())
	assert.False(t, session.Role("superuser").Known())
}

func TestSessionIsAuthenticated(t *testing.T) {
	t.Parallel()
	assert.False(t, session.Session{}.IsAuthenticated())
	assert.False(t, session.Session{Role: session.RoleAdmin, UserID: "1"}.IsAuthenticated())
	assert.True(t, session.Session{Token: "t"}.IsAuthenticated())
}

func TestSessionHasRole(t *testing.T) {
	t.Parallel()

	t.Run("role without token grants nothing", func(t *testing.T) {
		t.Parallel()
		sess := session.Session{Role: session.RoleAdmin}
		assert.False(t, sess.HasRole(session.RoleAdmin))
	})

	t.Run("token and matching role", func(t *testing.T) {
		t.Parallel()
		sess := session.Session{Token: "t", Role: session.RoleAdmin}
		assert.True(t, sess.HasRole(session.RoleAdmin))
		assert.False(t, sess.HasRole(session.RoleCustomer))
	})
}

func TestSessionIsZero(t *testing.T) {
	t.Parallel()
	assert.True(t, session.Session{}.IsZero())
	assert.False(t, session.Session{UserID: "1"}.IsZero())
}
