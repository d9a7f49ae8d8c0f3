package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is supplied by the identity collaborator for each request. Guests own
// their bookings; admins can act on any booking.
type Role string

const (
	RoleGuest Role = "guest"
	RoleAdmin Role = "admin"
)

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
