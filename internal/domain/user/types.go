package user

import "promo-api/internal/pkg/errs"

// Role is issued by the identity provider and carried in the bearer token.
type Role string

const (
	RoleViewer   Role = "Viewer"
	RoleMarketer Role = "Marketer"
	RoleAdmin    Role = "Admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleMarketer, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", errs.ErrInvalidRole
	}
	return role, nil
}

// Identity is what the token service asserts about a caller: an opaque
// subject id, the account email, and a single role.
type Identity struct {
	Subject string
	Email   string
	Role    Role
}
