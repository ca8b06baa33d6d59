package router_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bookstore/core/router"
	"github.com/dmitrymomot/bookstore/core/session"
)

func newNavigator(t *testing.T, sess session.Session, opts ...router.NavigatorOption) (*router.Navigator, *session.Manager) {
	t.Helper()
	sessions, err := session.NewManager(session.NewMemoryStore())
	require.NoError(t, err)
	if sess.Token != "" {
		require.NoError(t, sessions.Save(t.Context(), sess))
	}
	nav, err := router.NewNavigator(nil, sessions, opts...)
	require.NoError(t, err)
	return nav, sessions
}

func TestNewNavigatorRequiresSessions(t *testing.T) {
	t.Parallel()
	_, err := router.NewNavigator(nil, nil)
	assert.ErrorIs(t, err, router.ErrNoSessions)
}

func TestNavigate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sess     session.Session
		path     string
		wantPath string
		wantFrom string
	}{
		{"anonymous to public", anonymous, "/register", "/register", ""},
		{"anonymous to protected", anonymous, "/books", "/login", "/books"},
		{"root alias", anonymous, "/", "/login", "/"},
		{"customer to admin", customer, "/admin", "/customer", "/admin"},
		{"admin to customer", admin, "/customer", "/admin", "/customer"},
		{"admin to own dashboard", admin, "/admin", "/admin", ""},
		{"unknown role to dashboard", unrecognized, "/admin", "/login", "/admin"},
		{"customer to checkout", customer, "/checkout", "/checkout", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			nav, _ := newNavigator(t, tt.sess)
			loc, err := nav.Navigate(t.Context(), tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, loc.Path)
			assert.Equal(t, tt.wantFrom, loc.RedirectedFrom)
			assert.Equal(t, loc, nav.Current())
		})
	}
}

func TestNavigateUnknownRoute(t *testing.T) {
	t.Parallel()
	nav, _ := newNavigator(t, admin)
	_, err := nav.Navigate(t.Context(), "/admin")
	require.NoError(t, err)

	_, err = nav.Navigate(t.Context(), "/missing")
	assert.ErrorIs(t, err, router.ErrRouteNotFound)
	assert.Equal(t, "/admin", nav.Current().Path, "failed navigation keeps location")
}

func TestNavigateRedirectLoop(t *testing.T) {
	t.Parallel()
	// A login page that itself requires auth can never settle for anonymous users.
	table, err := router.NewTable([]router.Route{
		{Path: router.LoginPath, RequiresAuth: true},
	}, nil)
	require.NoError(t, err)

	sessions, err := session.NewManager(session.NewMemoryStore())
	require.NoError(t, err)
	nav, err := router.NewNavigator(table, sessions, router.WithMaxRedirects(3))
	require.NoError(t, err)

	_, err = nav.Navigate(t.Context(), router.LoginPath)
	assert.ErrorIs(t, err, router.ErrTooManyRedirects)
}

func TestForceNavigateAfterSessionWipe(t *testing.T) {
	t.Parallel()
	nav, sessions := newNavigator(t, customer)
	ctx := t.Context()

	loc, err := nav.Navigate(ctx, "/orders")
	require.NoError(t, err)
	assert.Equal(t, "/orders", loc.Path)

	require.NoError(t, sessions.Clear(ctx))
	require.NoError(t, nav.ForceNavigate(ctx, router.LoginPath))
	assert.Equal(t, router.LoginPath, nav.Current().Path)

	loc, err = nav.Navigate(ctx, "/orders")
	require.NoError(t, err)
	assert.Equal(t, router.LoginPath, loc.Path)
}

func TestNavigateConcurrent(t *testing.T) {
	t.Parallel()
	nav, _ := newNavigator(t, customer)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = nav.Navigate(context.Background(), "/books")
			_ = nav.Current()
		}()
	}
	wg.Wait()
	assert.Equal(t, "/books", nav.Current().Path)
}
