package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/moviedeck/moviedeck/internal/domain"
	internal_errors "github.com/moviedeck/moviedeck/internal/errors"
	"github.com/moviedeck/moviedeck/internal/utils"
)

// Key to store the resolved user in the request context
type key int

const userKey key = 0

// TokenVerifier checks a bearer token and returns its subject.
type TokenVerifier interface {
	Subject(tokenString string) (domain.UserId, error)
}

// UserStore resolves a token subject to a stored user.
type UserStore interface {
	UserById(id domain.UserId) (domain.User, error)
}

// Auth guards protected routes. Three failure variants, all 401: no token,
// token invalid (malformed/expired/bad signature), and stale token (the
// subject no longer resolves to a stored user).
type Auth struct {
	jwt   TokenVerifier
	users UserStore
}

func NewAuth(jwt TokenVerifier, users UserStore) *Auth {
	return &Auth{jwt, users}
}

func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || token == "" {
				utils.WriteError(w, internal_errors.Unauthorized("Not authorized, no token"))
				return
			}

			userId, err := a.jwt.Subject(token)
			if err != nil {
				utils.WriteError(w, err)
				return
			}

			user, err := a.users.UserById(userId)
			if err != nil {
				if internal_errors.IsNotFound(err) {
					utils.WriteError(w, internal_errors.Unauthorized("No user found with this token"))
					return
				}
				utils.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, &user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext retrieves the user attached by NeedAuth. Handlers behind
// the middleware pass the result explicitly into services; nothing below
// the handler layer reads the request context.
func UserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(userKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
