// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/streamora/internal/core"
)

type fakeRepo struct {
	users   map[string]*User
	devices map[string][]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:   make(map[string]*User),
		devices: make(map[string][]string),
	}
}

func (f *fakeRepo) Create(ctx context.Context, u *User) error {
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.users[u.ID] = u
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	copied := *u
	return &copied, nil
}

func (f *fakeRepo) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
}

func (f *fakeRepo) Update(ctx context.Context, u *User) error {
	if _, ok := f.users[u.ID]; !ok {
		return fmt.Errorf("update user: %w", core.ErrNotFound)
	}
	u.UpdatedAt = time.Now()
	copied := *u
	f.users[u.ID] = &copied
	return nil
}

func (f *fakeRepo) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeRepo) ExistsByUsername(
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

func (f *fakeRepo) AddDeviceToken(
	ctx context.Context,
	userID, token string,
) error {
	for _, existing := range f.devices[userID] {
		if existing == token {
			return nil
		}
	}
	f.devices[userID] = append(f.devices[userID], token)
	return nil
}

func (f *fakeRepo) GetDeviceTokens(
	ctx context.Context,
	userID string,
) ([]string, error) {
	return f.devices[userID], nil
}

func seedUser(t *testing.T, svc *Service) *User {
	t.Helper()

	created, err := svc.Create(context.Background(), CreateParams{
		Name:     "Ada",
		Email:    "ADA@Example.com",
		Password: "original password",
	})
	require.NoError(t, err)
	return created
}

func TestCreate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	created := seedUser(t, svc)

	assert.Equal(t, "ada@example.com", created.Email)
	assert.Equal(t, core.TextArray{"user"}, created.Roles)
	assert.True(t,
		core.VerifyPassword("original password", created.PasswordHash))
}

func TestUpdateProfile_WithoutPasswordKeepsHash(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	created := seedUser(t, svc)

	name := "Ada Lovelace"
	bio := "first programmer"
	updated, err := svc.UpdateProfile(
		context.Background(),
		created.ID,
		UpdateProfileRequest{Name: &name, Bio: &bio},
	)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", updated.Name)
	assert.Equal(t, "first programmer", updated.Bio)
	assert.Equal(t, created.PasswordHash, updated.PasswordHash)
}

func TestUpdateProfile_WithPasswordRehashes(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	created := seedUser(t, svc)

	newPassword := "replacement password"
	updated, err := svc.UpdateProfile(
		context.Background(),
		created.ID,
		UpdateProfileRequest{Password: &newPassword},
	)
	require.NoError(t, err)

	assert.NotEqual(t, created.PasswordHash, updated.PasswordHash)
	assert.True(t,
		core.VerifyPassword("replacement password", updated.PasswordHash))
	assert.False(t,
		core.VerifyPassword("original password", updated.PasswordHash))
}

func TestUpdateProfile_Unauthenticated(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.UpdateProfile(
		context.Background(), "", UpdateProfileRequest{})
	assert.ErrorIs(t, err, core.ErrUnauthorized)
}

func TestGetByID_MalformedID(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	// even a row stored under a malformed key stays unreachable:
	// the id is rejected before the repository sees it
	repo.users["not-a-uuid"] = &User{ID: "not-a-uuid", Name: "Ghost"}

	for _, id := range []string{"not-a-uuid", "me", ""} {
		_, err := svc.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, core.ErrNotFound, "id %q", id)
	}
}

func TestLoadIdentity(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	created := seedUser(t, svc)

	identity, err := svc.LoadIdentity(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, identity.ID)
	assert.Equal(t, "ada@example.com", identity.Email)
	assert.False(t, identity.IsAdmin())
}

func TestLoadIdentity_Missing(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.LoadIdentity(context.Background(), "ghost")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestDeviceTokens_MissingUser(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.DeviceTokens(context.Background(), "ghost")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestRegisterDevice(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	created := seedUser(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.RegisterDevice(ctx, created.ID, "token-a"))
	require.NoError(t, svc.RegisterDevice(ctx, created.ID, "token-a"))

	tokens, err := svc.DeviceTokens(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"token-a"}, tokens)
}

func TestIdentityExcludesSecrets(t *testing.T) {
	u := &User{
		ID:           "u1",
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$secret",
		Roles:        core.TextArray{"user", "admin"},
	}

	identity := u.Identity()
	assert.True(t, identity.IsAdmin())

	resp := ToUserResponse(u)
	encoded := fmt.Sprintf("%+v", resp)
	assert.NotContains(t, encoded, "$2a$10$secret")
}
