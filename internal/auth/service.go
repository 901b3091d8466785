// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/angelamos/streamora/internal/core"
	"github.com/angelamos/streamora/internal/user"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	users  *user.Service
	tokens *TokenManager
}

func NewService(users *user.Service, tokens *TokenManager) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
	}
}

// Register creates the account and immediately issues a token, so sign-up
// doubles as the first login. Duplicate email and username are reported
// as field-tagged 400s before the insert; the unique indexes still catch
// the race and map to the same errors.
func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*AuthResponse, error) {
	exists, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, core.ConflictError(
			"User with this email already exists",
			core.FieldError{
				Field:   "email",
				Message: "User with this email already exists",
			},
		)
	}

	if req.Username != nil && *req.Username != "" {
		taken, usernameErr := s.users.UsernameExists(ctx, *req.Username)
		if usernameErr != nil {
			return nil, usernameErr
		}
		if taken {
			return nil, core.ConflictError(
				"Username is already taken",
				core.FieldError{
					Field:   "username",
					Message: "Username is already taken",
				},
			)
		}
	}

	created, err := s.users.Create(ctx, user.CreateParams{
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResponse{
		User:  user.ToUserResponse(created),
		Token: token,
	}, nil
}

// Login verifies credentials and issues a token. An unknown email burns
// a dummy hash comparison so the response time does not reveal whether
// the address is registered, and both failure modes collapse into one
// error.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*AuthResponse, error) {
	account, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}

	var storedHash *string
	if account != nil {
		storedHash = &account.PasswordHash
	}

	if !core.VerifyPasswordTimingSafe(req.Password, storedHash) {
		return nil, ErrInvalidCredentials
	}

	if core.NeedsRehash(account.PasswordHash) {
		s.rehash(ctx, account.ID, req.Password)
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResponse{
		User:  user.ToUserResponse(account),
		Token: token,
	}, nil
}

// rehash upgrades a verified credential to the current cost. Best effort:
// a failure only means the next login tries again.
func (s *Service) rehash(ctx context.Context, userID, password string) {
	hash, err := core.HashPassword(password)
	if err != nil {
		slog.Warn("password rehash failed", "user_id", userID, "error", err)
		return
	}

	if err := s.users.UpdatePasswordHash(ctx, userID, hash); err != nil {
		slog.Warn("password rehash failed", "user_id", userID, "error", err)
	}
}
