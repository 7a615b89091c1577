package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/crypto/bcrypt"

	"github.com/moviedeck/moviedeck/internal/domain"
	"github.com/moviedeck/moviedeck/internal/errors"
	"github.com/moviedeck/moviedeck/internal/logger"
)

// bcryptCost is fixed: registration is rare enough that the extra work
// factor over the library default is affordable.
const bcryptCost = 12

type AuthService interface {
	Register(name, email, password string) (string, domain.User, error)
	Login(email, password string) (string, domain.User, error)
	CurrentUser(id domain.UserId) (domain.User, error)
}

type UserStorage interface {
	SaveUser(user domain.User) (domain.User, error)
	UserByEmail(email string) (domain.User, error)
	UserById(id domain.UserId) (domain.User, error)
}

type Jwt interface {
	NewToken(userId domain.UserId) (string, error)
}

type Auth struct {
	storage   UserStorage
	jwt       Jwt
	sanitizer *bluemonday.Policy
}

func NewAuth(storage UserStorage, jwt Jwt) *Auth {
	return &Auth{
		storage:   storage,
		jwt:       jwt,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Register creates a new account and logs it in immediately. Emails are
// normalized to lowercase so uniqueness is case-insensitive.
func (a *Auth) Register(name, email, password string) (string, domain.User, error) {
	name = strings.TrimSpace(a.sanitizer.Sanitize(name))
	if len(name) < 2 || len(name) > 50 {
		return "", domain.User{}, errors.BadRequest("Name must be between 2 and 50 characters")
	}
	email = strings.ToLower(strings.TrimSpace(email))

	_, err := a.storage.UserByEmail(email)
	if err == nil {
		return "", domain.User{}, errors.BadRequest("User already exists with this email")
	}
	if !errors.IsNotFound(err) {
		return "", domain.User{}, err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return "", domain.User{}, err
	}

	user, err := a.storage.SaveUser(domain.User{
		Id:       uuid.NewString(),
		Name:     name,
		Email:    email,
		PassHash: string(passHash),
	})
	if err != nil {
		return "", domain.User{}, err
	}

	token, err := a.jwt.NewToken(user.Id)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return "", domain.User{}, err
	}

	return token, user, nil
}

// Login checks credentials and returns a fresh token. Unknown email and
// wrong password produce the same response so callers can't probe which
// emails are registered.
func (a *Auth) Login(email, password string) (string, domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := a.storage.UserByEmail(email)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", domain.User{}, errors.Unauthorized("Invalid credentials")
		}
		return "", domain.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(password)); err != nil {
		return "", domain.User{}, errors.Unauthorized("Invalid credentials")
	}

	token, err := a.jwt.NewToken(user.Id)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return "", domain.User{}, err
	}

	return token, user, nil
}

// CurrentUser resolves the already-authenticated caller's record. Fails
// with 404 if the account vanished after the token was issued.
func (a *Auth) CurrentUser(id domain.UserId) (domain.User, error) {
	return a.storage.UserById(id)
}
