// AngelaMos | 2026
// dto.go

package user

import (
	"time"

	"github.com/angelamos/streamora/internal/authz"
)

type UpdateProfileRequest struct {
	Name      *string `json:"name,omitempty"      validate:"omitempty,min=1,max=100"`
	Username  *string `json:"username,omitempty"  validate:"omitempty,min=3,max=30"`
	Bio       *string `json:"bio,omitempty"       validate:"omitempty,max=500"`
	AvatarURL *string `json:"avatarUrl,omitempty" validate:"omitempty,url,max=2048"`
	Password  *string `json:"password,omitempty"  validate:"omitempty,min=6,max=128"`
}

// UserResponse is the only shape a user ever leaves the API in. The
// password hash and device tokens have no field here on purpose.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Username  string    `json:"username,omitempty"`
	AvatarURL string    `json:"avatarUrl"`
	Bio       string    `json:"bio"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
}

// Summary is the compact owner/author projection joined onto videos and
// comments.
type Summary struct {
	ID        string `json:"id"        db:"id"`
	Name      string `json:"name"      db:"name"`
	Username  string `json:"username,omitempty" db:"username"`
	AvatarURL string `json:"avatarUrl" db:"avatar_url"`
}

func ToUserResponse(u *User) UserResponse {
	username := ""
	if u.Username != nil {
		username = *u.Username
	}

	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Username:  username,
		AvatarURL: u.AvatarURL,
		Bio:       u.Bio,
		Roles:     []string(u.Roles),
		CreatedAt: u.CreatedAt,
	}
}

func IdentityResponse(i *authz.Identity) UserResponse {
	roles := make([]string, 0, len(i.Roles))
	for _, r := range i.Roles {
		roles = append(roles, string(r))
	}

	return UserResponse{
		ID:        i.ID,
		Name:      i.Name,
		Email:     i.Email,
		Username:  i.Username,
		AvatarURL: i.AvatarURL,
		Bio:       i.Bio,
		Roles:     roles,
		CreatedAt: i.CreatedAt,
	}
}
