// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/streamora/internal/config"
	"github.com/angelamos/streamora/internal/core"
	"github.com/angelamos/streamora/internal/user"
)

type fakeUserRepo struct {
	users map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	for _, existing := range f.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return core.ConflictError(
				"User with this email already exists",
				core.FieldError{
					Field:   "email",
					Message: "User with this email already exists",
				},
			)
		}
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(
	ctx context.Context,
	id string,
) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(
	ctx context.Context,
	email string,
) (*user.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
}

func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return fmt.Errorf("update user: %w", core.ErrNotFound)
	}
	u.UpdatedAt = time.Now()
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) ExistsByUsername(
	ctx context.Context,
	username string,
) (bool, error) {
	for _, u := range f.users {
		if u.Username != nil && *u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) AddDeviceToken(
	ctx context.Context,
	userID, token string,
) error {
	return nil
}

func (f *fakeUserRepo) GetDeviceTokens(
	ctx context.Context,
	userID string,
) ([]string, error) {
	return nil, nil
}

func newTestService(t *testing.T) (*Service, *fakeUserRepo) {
	t.Helper()

	repo := newFakeUserRepo()
	users := user.NewService(repo)

	tokens, err := NewTokenManager(config.JWTConfig{
		Secret:      "0123456789abcdef0123456789abcdef",
		TokenExpire: time.Hour,
		Issuer:      "streamora",
		Audience:    "streamora-api",
	})
	require.NoError(t, err)

	return NewService(users, tokens), repo
}

func TestRegister(t *testing.T) {
	svc, repo := newTestService(t)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Ada",
		Email:    "Ada@Example.com",
		Password: "strong password",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Ada", resp.User.Name)
	assert.Equal(t, "ada@example.com", resp.User.Email, "email lowercased")
	assert.Equal(t, []string{"user"}, resp.User.Roles)

	stored := repo.users[resp.User.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "strong password", stored.PasswordHash)
	assert.True(t, core.VerifyPassword("strong password", stored.PasswordHash))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "strong password",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{
		Name:     "Imposter",
		Email:    "ADA@example.com",
		Password: "another password",
	})
	require.Error(t, err)

	var appErr *core.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "User with this email already exists", appErr.Message)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "email", appErr.Fields[0].Field)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	username := "ada_l"
	_, err := svc.Register(ctx, RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "strong password",
		Username: &username,
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{
		Name:     "Other",
		Email:    "other@example.com",
		Password: "strong password",
		Username: &username,
	})
	require.Error(t, err)

	var appErr *core.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Username is already taken", appErr.Message)
}

func TestRegister_NoUsernameNeverCollides(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{
		Name:     "First",
		Email:    "first@example.com",
		Password: "strong password",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{
		Name:     "Second",
		Email:    "second@example.com",
		Password: "strong password",
	})
	assert.NoError(t, err)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "strong password",
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, LoginRequest{
		Email:    "ada@example.com",
		Password: "strong password",
	})
	require.NoError(t, err)

	assert.Equal(t, registered.User.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "strong password",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_TokenResolvesToUser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "strong password",
	})
	require.NoError(t, err)

	subject, err := svc.tokens.VerifySubject(ctx, registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, subject)
}
