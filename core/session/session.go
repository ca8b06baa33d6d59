package session

// Role is the authorization role carried by a session.
// Values other than RoleAdmin and RoleCustomer are kept verbatim and treated as unrecognized.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Known reports whether r is one of the recognized roles.
func (r Role) Known() bool {
	return r == RoleAdmin || r == RoleCustomer
}

func (r Role) String() string {
	return string(r)
}

// Session is the client-held credential triple that gates authorization decisions.
// Absent values are empty strings.
type Session struct {
	// Token is the opaque bearer credential issued by the backend.
	Token  string
	Role   Role
	UserID string
}

// IsAuthenticated returns true if the session carries a token.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// HasRole returns true only if the session is authenticated and has the given role.
// A role without a token is meaningless and never grants access.
func (s Session) HasRole(role Role) bool {
	return s.IsAuthenticated() && s.Role == role
}

// IsZero returns true if no field is set.
func (s Session) IsZero() bool {
	return s.Token == "" && s.Role == "" && s.UserID == ""
}
