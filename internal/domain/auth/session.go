package auth

type Role string

const (
	RoleCompanyAdmin Role = "COMPANY_ADMIN"
	RoleEmployee     Role = "EMPLOYEE"
)

func (r Role) IsAdmin() bool {
	return r == RoleCompanyAdmin
}

// Session is the authenticated caller's identity, carried explicitly
// through handlers and services instead of ambient global state. The
// role and IDs come from the upstream login response body, never from
// client-decoded token claims.
type Session struct {
	UpstreamToken string
	UserID        string
	EmployeeID    string
	CompanyID     string
	Role          Role
}
