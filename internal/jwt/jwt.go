package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/moviedeck/moviedeck/internal/domain"
	internal_errors "github.com/moviedeck/moviedeck/internal/errors"
	"github.com/moviedeck/moviedeck/internal/logger"
)

// TokenService issues and verifies the bearer tokens used by the API.
// Tokens are self-contained: there is no server-side revocation, a token
// stays valid until its expiry.
type TokenService interface {
	NewToken(userId domain.UserId) (string, error)
	Subject(tokenString string) (domain.UserId, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) *Jwt {
	return &Jwt{secretKey, ttl}
}

// NewToken signs a token whose subject is the user id, valid for the
// configured lifetime from now.
func (j *Jwt) NewToken(userId domain.UserId) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userId,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", fmt.Errorf("can't create token: %w", err)
	}

	return tokenString, nil
}

// Subject verifies signature and expiry and returns the embedded user id.
// Every failure mode collapses to a 401 StatusError; callers only
// distinguish "no token" from "bad token".
func (j *Jwt) Subject(tokenString string) (domain.UserId, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return "", internal_errors.Unauthorized("Not authorized, token failed")
	}
	if !token.Valid || claims.Subject == "" {
		return "", internal_errors.Unauthorized("Not authorized, token failed")
	}

	return claims.Subject, nil
}
