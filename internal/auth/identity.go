package auth

import "strings"

// Role names with special meaning for booking policy. Captains and admins
// bypass the per-court booking size and advance-window restrictions; admins
// may additionally delete any booking and manage courts and site settings.
const (
	RoleCaptain = "captain"
	RoleAdmin   = "admin"
)

// Identity is the resolved acting user for a request. The zero value is the
// anonymous identity.
type Identity struct {
	UserID        int      `json:"user_id"`
	Email         string   `json:"email"`
	Roles         []string `json:"roles"`
	Authenticated bool     `json:"authenticated"`
}

// Anonymous is the identity of an unauthenticated request.
func Anonymous() Identity {
	return Identity{}
}

func (i Identity) HasRole(name string) bool {
	for _, r := range i.Roles {
		if strings.EqualFold(r, name) {
			return true
		}
	}
	return false
}

// Privileged reports whether the identity holds a role exempt from booking
// restrictions.
func (i Identity) Privileged() bool {
	return i.HasRole(RoleCaptain) || i.HasRole(RoleAdmin)
}

func (i Identity) IsAdmin() bool {
	return i.HasRole(RoleAdmin)
}
