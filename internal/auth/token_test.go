// AngelaMos | 2026
// token_test.go

package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/streamora/internal/config"
	"github.com/angelamos/streamora/internal/core"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:      "0123456789abcdef0123456789abcdef",
		TokenExpire: time.Hour,
		Issuer:      "streamora",
		Audience:    "streamora-api",
	}
}

func TestNewTokenManager_RequiresSecret(t *testing.T) {
	_, err := NewTokenManager(config.JWTConfig{})
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	token, err := manager.Issue("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := manager.VerifySubject(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", subject)
}

func TestVerifySubject_TamperedToken(t *testing.T) {
	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	token, err := manager.Issue("user-42")
	require.NoError(t, err)

	// flip a character in the signature segment
	tampered := token[:len(token)-2] + "xx"

	_, err = manager.VerifySubject(context.Background(), tampered)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrTokenInvalid))
	assert.False(t, errors.Is(err, core.ErrTokenExpired))
}

func TestVerifySubject_Garbage(t *testing.T) {
	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	for _, input := range []string{"", "garbage", "a.b.c"} {
		_, err := manager.VerifySubject(context.Background(), input)
		assert.ErrorIs(t, err, core.ErrTokenInvalid, "input %q", input)
	}
}

func TestVerifySubject_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.TokenExpire = -time.Minute

	manager, err := NewTokenManager(cfg)
	require.NoError(t, err)

	token, err := manager.Issue("user-42")
	require.NoError(t, err)

	_, err = manager.VerifySubject(context.Background(), token)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestVerifySubject_WrongSecret(t *testing.T) {
	issuerCfg := testJWTConfig()
	manager, err := NewTokenManager(issuerCfg)
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.Secret = strings.Repeat("x", 32)
	other, err := NewTokenManager(otherCfg)
	require.NoError(t, err)

	token, err := manager.Issue("user-42")
	require.NoError(t, err)

	_, err = other.VerifySubject(context.Background(), token)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestVerifySubject_WrongIssuer(t *testing.T) {
	issuerCfg := testJWTConfig()
	issuerCfg.Issuer = "someone-else"
	manager, err := NewTokenManager(issuerCfg)
	require.NoError(t, err)

	token, err := manager.Issue("user-42")
	require.NoError(t, err)

	verifier, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	_, err = verifier.VerifySubject(context.Background(), token)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
	assert.NotErrorIs(t, err, core.ErrTokenExpired)
}

func TestVerifySubject_WrongAudience(t *testing.T) {
	issuerCfg := testJWTConfig()
	issuerCfg.Audience = "someone-else-api"
	manager, err := NewTokenManager(issuerCfg)
	require.NoError(t, err)

	token, err := manager.Issue("user-42")
	require.NoError(t, err)

	verifier, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	_, err = verifier.VerifySubject(context.Background(), token)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
	assert.NotErrorIs(t, err, core.ErrTokenExpired)
}
