// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/angelamos/streamora/internal/authz"
	"github.com/angelamos/streamora/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name     string
	Email    string
	Username *string
	Password string
}

func (s *Service) Create(
	ctx context.Context,
	params CreateParams,
) (*User, error) {
	hash, err := core.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:           uuid.New().String(),
		Name:         params.Name,
		Email:        strings.ToLower(params.Email),
		Username:     params.Username,
		PasswordHash: hash,
		Roles:        core.TextArray{string(authz.RoleUser)},
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	// a malformed id is a missing user, not a database fault
	if uuid.Validate(id) != nil {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}

	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	return s.repo.GetByEmail(ctx, email)
}

// LoadIdentity backs the authentication middleware: resolve the token
// subject to a fresh identity snapshot.
func (s *Service) LoadIdentity(
	ctx context.Context,
	id string,
) (*authz.Identity, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return user.Identity(), nil
}

// UpdateProfile applies the caller's partial profile update. The password
// is re-hashed only when the request carries one; an absent field leaves
// the stored hash untouched.
func (s *Service) UpdateProfile(
	ctx context.Context,
	userID string,
	req UpdateProfileRequest,
) (*User, error) {
	if userID == "" {
		return nil, fmt.Errorf("update profile: %w", core.ErrUnauthorized)
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Username != nil {
		user.Username = req.Username
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.Password != nil {
		hash, hashErr := core.HashPassword(*req.Password)
		if hashErr != nil {
			return nil, hashErr
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) UpdatePasswordHash(
	ctx context.Context,
	userID, hash string,
) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	return s.repo.Update(ctx, user)
}

func (s *Service) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.repo.ExistsByEmail(ctx, email)
}

func (s *Service) UsernameExists(
	ctx context.Context,
	username string,
) (bool, error) {
	return s.repo.ExistsByUsername(ctx, username)
}

func (s *Service) RegisterDevice(
	ctx context.Context,
	userID, token string,
) error {
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return err
	}

	return s.repo.AddDeviceToken(ctx, userID, token)
}

func (s *Service) DeviceTokens(
	ctx context.Context,
	userID string,
) ([]string, error) {
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	return s.repo.GetDeviceTokens(ctx, userID)
}
