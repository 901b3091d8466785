// AngelaMos | 2026
// entity.go

package user

import (
	"time"

	"github.com/angelamos/streamora/internal/authz"
	"github.com/angelamos/streamora/internal/core"
)

type User struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Email        string         `db:"email"`
	Username     *string        `db:"username"`
	PasswordHash string         `db:"password_hash"`
	AvatarURL    string         `db:"avatar_url"`
	Bio          string         `db:"bio"`
	Roles        core.TextArray `db:"roles"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Roles.Contains(string(authz.RoleAdmin))
}

// Identity projects the row into the per-request snapshot the
// authentication middleware attaches. Hash and device tokens stay behind.
func (u *User) Identity() *authz.Identity {
	roles := make([]authz.Role, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, authz.Role(r))
	}

	username := ""
	if u.Username != nil {
		username = *u.Username
	}

	return &authz.Identity{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Username:  username,
		AvatarURL: u.AvatarURL,
		Bio:       u.Bio,
		Roles:     roles,
		CreatedAt: u.CreatedAt,
	}
}
