// AngelaMos | 2026
// token.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/angelamos/streamora/internal/config"
	"github.com/angelamos/streamora/internal/core"
)

// TokenManager signs and verifies bearer tokens with a single symmetric
// secret. The secret never leaves this type after construction.
type TokenManager struct {
	key    jwk.Key
	config config.JWTConfig
}

func NewTokenManager(cfg config.JWTConfig) (*TokenManager, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	key, err := jwk.Import([]byte(cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("import signing key: %w", err)
	}

	if setErr := key.Set(jwk.AlgorithmKey, jwa.HS256()); setErr != nil {
		return nil, fmt.Errorf("set algorithm: %w", setErr)
	}

	return &TokenManager{
		key:    key,
		config: cfg,
	}, nil
}

func (m *TokenManager) Issue(subjectID string) (string, error) {
	now := time.Now()

	token, err := jwt.NewBuilder().
		JwtID(uuid.New().String()).
		Issuer(m.config.Issuer).
		Audience([]string{m.config.Audience}).
		Subject(subjectID).
		IssuedAt(now).
		NotBefore(now).
		Expiration(now.Add(m.config.TokenExpire)).
		Build()
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), m.key))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return string(signed), nil
}

// VerifySubject checks the signature and registered claims and returns
// the subject user ID. Expiry and tampering surface as distinct
// sentinels so callers can log the difference, even though the HTTP
// boundary reports both the same way.
func (m *TokenManager) VerifySubject(
	ctx context.Context,
	tokenString string,
) (string, error) {
	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256(), m.key),
		jwt.WithValidate(true),
		jwt.WithIssuer(m.config.Issuer),
		jwt.WithAudience(m.config.Audience),
	)
	if err != nil {
		if errors.Is(err, jwt.TokenExpiredError()) {
			return "", fmt.Errorf("verify token: %w", core.ErrTokenExpired)
		}
		return "", fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	subject, ok := token.Subject()
	if !ok || subject == "" {
		return "", fmt.Errorf(
			"verify token: missing subject: %w",
			core.ErrTokenInvalid,
		)
	}

	return subject, nil
}
