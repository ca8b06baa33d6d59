package router

import (
	"github.com/dmitrymomot/bookstore/core/session"
)

// Well-known paths.
const (
	LoginPath    = "/login"
	RegisterPath = "/register"
	AdminPath    = "/admin"
	CustomerPath = "/customer"
	BooksPath    = "/books"
	OrdersPath   = "/orders"
	CheckoutPath = "/checkout"
	RootPath     = "/"
)

// Route describes a navigation target and its authorization requirements.
type Route struct {
	Path         string
	Name         string
	RequiresAuth bool
	// Role, when set, restricts the route to sessions holding that role.
	Role session.Role
}

// dashboards maps each recognized role to its landing route.
var dashboards = map[session.Role]string{
	session.RoleAdmin:    AdminPath,
	session.RoleCustomer: CustomerPath,
}

// DashboardFor returns the dashboard path for role.
// The second value is false for unrecognized roles.
func DashboardFor(role session.Role) (string, bool) {
	path, ok := dashboards[role]
	return path, ok
}

// Table is an immutable set of routes keyed by path, plus redirect-only aliases.
type Table struct {
	routes  map[string]Route
	aliases map[string]string
	order   []string
}

// NewTable builds a route table. Duplicate paths return ErrDuplicateRoute,
// an empty path returns ErrInvalidRoute.
func NewTable(routes []Route, aliases map[string]string) (*Table, error) {
	t := &Table{
		routes:  make(map[string]Route, len(routes)),
		aliases: make(map[string]string, len(aliases)),
		order:   make([]string, 0, len(routes)),
	}
	for _, r := range routes {
		if r.Path == "" {
			return nil, ErrInvalidRoute
		}
		if _, exists := t.routes[r.Path]; exists {
			return nil, ErrDuplicateRoute
		}
		t.routes[r.Path] = r
		t.order = append(t.order, r.Path)
	}
	for from, to := range aliases {
		if _, ok := t.routes[to]; !ok {
			return nil, ErrInvalidRoute
		}
		t.aliases[from] = to
	}
	return t, nil
}

// DefaultTable returns the bookstore's navigation table.
func DefaultTable() *Table {
	t, err := NewTable([]Route{
		{Path: LoginPath, Name: "Login"},
		{Path: RegisterPath, Name: "Register"},
		{Path: AdminPath, Name: "AdminDashboard", RequiresAuth: true, Role: session.RoleAdmin},
		{Path: CustomerPath, Name: "CustomerDashboard", RequiresAuth: true, Role: session.RoleCustomer},
		{Path: BooksPath, Name: "BookSearch", RequiresAuth: true},
		{Path: OrdersPath, Name: "OrderHistory", RequiresAuth: true},
		{Path: CheckoutPath, Name: "Checkout", RequiresAuth: true},
	}, map[string]string{
		RootPath: LoginPath,
	})
	if err != nil {
		panic("router: invalid default table: " + err.Error())
	}
	return t
}

// Lookup resolves path, following a redirect alias if one is registered.
func (t *Table) Lookup(path string) (Route, bool) {
	if to, ok := t.aliases[path]; ok {
		path = to
	}
	r, ok := t.routes[path]
	return r, ok
}

// Routes returns the routes in registration order.
func (t *Table) Routes() []Route {
	out := make([]Route, 0, len(t.order))
	for _, p := range t.order {
		out = append(out, t.routes[p])
	}
	return out
}
