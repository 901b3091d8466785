// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/streamora/internal/authz"
	"github.com/angelamos/streamora/internal/core"
)

type fakeVerifier struct {
	subject string
	err     error
}

func (f *fakeVerifier) VerifySubject(
	ctx context.Context,
	token string,
) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.subject, nil
}

type fakeLoader struct {
	identity *authz.Identity
	err      error
	calls    int
}

func (f *fakeLoader) LoadIdentity(
	ctx context.Context,
	id string,
) (*authz.Identity, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.identity, nil
}

func testIdentity(roles ...authz.Role) *authz.Identity {
	if len(roles) == 0 {
		roles = []authz.Role{authz.RoleUser}
	}
	return &authz.Identity{
		ID:    "user-1",
		Name:  "Ada",
		Email: "ada@example.com",
		Roles: roles,
	}
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body.Message
}

func runAuthenticated(
	verifier *fakeVerifier,
	loader *fakeLoader,
	header string,
) (*httptest.ResponseRecorder, *authz.Identity) {
	var seen *authz.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetIdentity(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}

	rec := httptest.NewRecorder()
	Authenticator(verifier, loader)(next).ServeHTTP(rec, req)
	return rec, seen
}

func TestAuthenticator_NoToken(t *testing.T) {
	rec, seen := runAuthenticated(&fakeVerifier{}, &fakeLoader{}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Not authorized, no token provided", errorMessage(t, rec))
	assert.Nil(t, seen)
}

func TestAuthenticator_MalformedHeader(t *testing.T) {
	for _, header := range []string{"Basic abc", "Bearer", "sometoken"} {
		rec, seen := runAuthenticated(&fakeVerifier{}, &fakeLoader{}, header)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.Equal(t,
			"Not authorized, no token provided",
			errorMessage(t, rec))
		assert.Nil(t, seen)
	}
}

func TestAuthenticator_InvalidToken(t *testing.T) {
	verifier := &fakeVerifier{
		err: fmt.Errorf("verify token: %w", core.ErrTokenInvalid),
	}
	loader := &fakeLoader{}

	rec, seen := runAuthenticated(verifier, loader, "Bearer bad-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Not authorized, invalid token", errorMessage(t, rec))
	assert.Nil(t, seen)
	assert.Zero(t, loader.calls)
}

func TestAuthenticator_ExpiredTokenSameMessage(t *testing.T) {
	verifier := &fakeVerifier{
		err: fmt.Errorf("verify token: %w", core.ErrTokenExpired),
	}

	rec, _ := runAuthenticated(verifier, &fakeLoader{}, "Bearer old-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Not authorized, invalid token", errorMessage(t, rec))
}

func TestAuthenticator_UserMissing(t *testing.T) {
	verifier := &fakeVerifier{subject: "user-1"}
	loader := &fakeLoader{
		err: fmt.Errorf("get user: %w", core.ErrNotFound),
	}

	rec, seen := runAuthenticated(verifier, loader, "Bearer good-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "User not found", errorMessage(t, rec))
	assert.Nil(t, seen)
}

func TestAuthenticator_Success(t *testing.T) {
	verifier := &fakeVerifier{subject: "user-1"}
	loader := &fakeLoader{identity: testIdentity()}

	rec, seen := runAuthenticated(verifier, loader, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "user-1", seen.ID)
	assert.Equal(t, 1, loader.calls)
}

func TestAuthenticator_BearerCaseInsensitive(t *testing.T) {
	verifier := &fakeVerifier{subject: "user-1"}
	loader := &fakeLoader{identity: testIdentity()}

	rec, seen := runAuthenticated(verifier, loader, "bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, seen)
}

func TestOptionalAuth_AnonymousContinues(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Nil(t, GetIdentity(r.Context()))
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/videos/1", nil)
	rec := httptest.NewRecorder()

	OptionalAuth(&fakeVerifier{}, &fakeLoader{})(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptionalAuth_BadTokenStaysAnonymous(t *testing.T) {
	verifier := &fakeVerifier{
		err: fmt.Errorf("verify token: %w", core.ErrTokenInvalid),
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Nil(t, GetIdentity(r.Context()))
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/videos/1", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rec := httptest.NewRecorder()

	OptionalAuth(verifier, &fakeLoader{})(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptionalAuth_ValidTokenAttaches(t *testing.T) {
	verifier := &fakeVerifier{subject: "user-1"}
	loader := &fakeLoader{identity: testIdentity()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NotNil(t, GetIdentity(r.Context()))
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/videos/1", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()

	OptionalAuth(verifier, loader)(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin_Forbidden(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	req := httptest.NewRequest(http.MethodPost, "/notifications/send", nil)
	ctx := context.WithValue(
		req.Context(), identityKey, testIdentity(authz.RoleUser))
	rec := httptest.NewRecorder()

	RequireAdmin(next).ServeHTTP(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Not authorized as admin", errorMessage(t, rec))
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/notifications/send", nil)
	ctx := context.WithValue(
		req.Context(),
		identityKey,
		testIdentity(authz.RoleUser, authz.RoleAdmin),
	)
	rec := httptest.NewRecorder()

	RequireAdmin(next).ServeHTTP(rec, req.WithContext(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin_Unauthenticated(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	req := httptest.NewRequest(http.MethodPost, "/notifications/send", nil)
	rec := httptest.NewRecorder()

	RequireAdmin(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Bearer abc123", "abc123"},
		{"bearer abc123", "abc123"},
		{"BEARER abc123", "abc123"},
		{"Basic abc123", ""},
		{"Bearer", ""},
		{"Bearer  spaced ", "spaced"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		assert.Equal(t, tt.want, ExtractToken(req), "header %q", tt.header)
	}
}
