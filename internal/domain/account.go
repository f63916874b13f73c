package domain

// Portal account roles.
const (
	AccountRoleSuperAdmin = "super_admin"
	AccountRoleAdmin      = "admin"
	AccountRoleStaff      = "staff"
)

// Account is the signed-in portal operator, as returned by the backend's
// verify-otp and me endpoints and cached in the session store.
type Account struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Avatar string `json:"avatar,omitempty"`
	Role   string `json:"role"`
}
