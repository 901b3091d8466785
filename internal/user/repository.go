// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/angelamos/streamora/internal/core"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	AddDeviceToken(ctx context.Context, userID, token string) error
	GetDeviceTokens(ctx context.Context, userID string) ([]string, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const userColumns = `id, name, email, username, password_hash,
       avatar_url, bio, roles, created_at, updated_at`

func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, name, email, username, password_hash,
		                   avatar_url, bio, roles)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, user, query,
		user.ID,
		user.Name,
		user.Email,
		user.Username,
		user.PasswordHash,
		user.AvatarURL,
		user.Bio,
		user.Roles,
	)
	if err != nil {
		if constraint, ok := duplicateConstraint(err); ok {
			return duplicateFieldError(constraint)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM users WHERE id = $1`,
		userColumns,
	)

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM users WHERE LOWER(email) = LOWER($1)`,
		userColumns,
	)

	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

func (r *repository) Update(ctx context.Context, user *User) error {
	query := `
		UPDATE users
		SET name = $2, username = $3, password_hash = $4,
		    avatar_url = $5, bio = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &user.UpdatedAt, query,
		user.ID,
		user.Name,
		user.Username,
		user.PasswordHash,
		user.AvatarURL,
		user.Bio,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update user: %w", core.ErrNotFound)
	}
	if err != nil {
		if constraint, ok := duplicateConstraint(err); ok {
			return duplicateFieldError(constraint)
		}
		return fmt.Errorf("update user: %w", err)
	}

	return nil
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	query := `SELECT EXISTS(
		SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}

	return exists, nil
}

func (r *repository) ExistsByUsername(
	ctx context.Context,
	username string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, username); err != nil {
		return false, fmt.Errorf("check username exists: %w", err)
	}

	return exists, nil
}

// AddDeviceToken is idempotent: the primary key makes a re-registration
// of the same token a no-op.
func (r *repository) AddDeviceToken(
	ctx context.Context,
	userID, token string,
) error {
	query := `
		INSERT INTO device_tokens (user_id, token)
		VALUES ($1, $2)
		ON CONFLICT (user_id, token) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, userID, token); err != nil {
		return fmt.Errorf("add device token: %w", err)
	}

	return nil
}

func (r *repository) GetDeviceTokens(
	ctx context.Context,
	userID string,
) ([]string, error) {
	query := `
		SELECT token FROM device_tokens
		WHERE user_id = $1
		ORDER BY created_at`

	var tokens []string
	if err := r.db.SelectContext(ctx, &tokens, query, userID); err != nil {
		return nil, fmt.Errorf("get device tokens: %w", err)
	}

	return tokens, nil
}

func duplicateConstraint(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// duplicateFieldError maps a unique-index violation to the field-tagged
// 400 the API promises, keyed by constraint name.
func duplicateFieldError(constraint string) error {
	switch {
	case strings.Contains(constraint, "email"):
		return core.ConflictError(
			"User with this email already exists",
			core.FieldError{
				Field:   "email",
				Message: "User with this email already exists",
			},
		)
	case strings.Contains(constraint, "username"):
		return core.ConflictError(
			"Username is already taken",
			core.FieldError{
				Field:   "username",
				Message: "Username is already taken",
			},
		)
	default:
		return fmt.Errorf("unique constraint %q: %w",
			constraint, core.ErrDuplicateKey)
	}
}
