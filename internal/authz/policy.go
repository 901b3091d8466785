// AngelaMos | 2026
// policy.go

package authz

import (
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ValidRole reports membership in the closed role set. Roles outside the
// set never enter the system; unknown strings from storage fail here.
func ValidRole(r Role) bool {
	return r == RoleUser || r == RoleAdmin
}

// Identity is the per-request snapshot of an authenticated caller as
// loaded by the authentication middleware. It never carries the password
// hash or device tokens. Role changes made after the snapshot take
// effect on the caller's next request, and a token issued before a role
// change stays valid until its natural expiry.
type Identity struct {
	ID        string
	Name      string
	Email     string
	Username  string
	AvatarURL string
	Bio       string
	Roles     []Role
	CreatedAt time.Time
}

func (i *Identity) HasRole(role Role) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (i *Identity) IsAdmin() bool {
	return i.HasRole(RoleAdmin)
}

// CanModify is the ownership predicate for every owner-gated mutation:
// the caller must own the resource or hold the admin role. Callers with
// a failed predicate get 403, never 401.
func CanModify(caller *Identity, ownerID string) bool {
	if caller == nil {
		return false
	}
	return caller.ID == ownerID || caller.IsAdmin()
}
