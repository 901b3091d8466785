// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/angelamos/streamora/internal/authz"
	"github.com/angelamos/streamora/internal/core"
)

const identityKey contextKey = "identity"

type TokenVerifier interface {
	VerifySubject(ctx context.Context, token string) (string, error)
}

type IdentityLoader interface {
	LoadIdentity(ctx context.Context, id string) (*authz.Identity, error)
}

// Authenticator gates protected routes: extract bearer token, verify it,
// resolve the subject against the user store, attach the identity to the
// request context. Each failure terminates the request with a 401 and
// attaches nothing. Expired and malformed tokens share one message so
// responses do not reveal which of the two it was.
func Authenticator(
	verifier TokenVerifier,
	loader IdentityLoader,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)

			if token == "" {
				core.Unauthorized(w, "Not authorized, no token provided")
				return
			}

			subjectID, err := verifier.VerifySubject(r.Context(), token)
			if err != nil {
				core.Unauthorized(w, "Not authorized, invalid token")
				return
			}

			identity, err := loader.LoadIdentity(r.Context(), subjectID)
			if err != nil {
				if errors.Is(err, core.ErrNotFound) {
					core.Unauthorized(w, "User not found")
					return
				}
				core.InternalServerError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth resolves an identity when a valid token happens to be
// present and silently continues anonymous otherwise. Public routes use
// it to personalize responses (like state on a video page).
func OptionalAuth(
	verifier TokenVerifier,
	loader IdentityLoader,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := ExtractToken(r); token != "" {
				subjectID, err := verifier.VerifySubject(r.Context(), token)
				if err == nil {
					identity, loadErr := loader.LoadIdentity(
						r.Context(),
						subjectID,
					)
					if loadErr == nil {
						ctx := context.WithValue(
							r.Context(),
							identityKey,
							identity,
						)
						r = r.WithContext(ctx)
					}
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin runs after Authenticator on admin-only routes; callers
// without the admin role are authenticated but forbidden.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := GetIdentity(r.Context())

		if identity == nil {
			core.Unauthorized(w, "Not authorized, no token provided")
			return
		}

		if !identity.IsAdmin() {
			core.Forbidden(w, "Not authorized as admin")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func GetIdentity(ctx context.Context) *authz.Identity {
	if identity, ok := ctx.Value(identityKey).(*authz.Identity); ok {
		return identity
	}
	return nil
}

func GetUserID(ctx context.Context) string {
	if identity := GetIdentity(ctx); identity != nil {
		return identity.ID
	}
	return ""
}
