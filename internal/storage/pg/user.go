package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"

	"github.com/moviedeck/moviedeck/internal/domain"
	internal_errors "github.com/moviedeck/moviedeck/internal/errors"
)

// uniqueViolation is the Postgres error code raised when an insert breaks
// a unique constraint (here: the lowercased email index).
const uniqueViolation = "23505"

// =========================================================================
// Public methods (satisfy the service.UserStorage interface)
// =========================================================================

// SaveUser inserts a new user record. The caller supplies the id; emails are
// expected to be lowercased by the service layer before they get here.
func (s *Storage) SaveUser(user domain.User) (domain.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var saved domain.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		saved, err = s.saveUser(tx, user)
		return err
	})
	return saved, err
}

// UserByEmail fetches a user by email (exact match on the stored
// lowercased value).
func (s *Storage) UserByEmail(email string) (domain.User, error) {
	return s.userWhere(s.db, "email = $1", email)
}

// UserById fetches a user by its id.
func (s *Storage) UserById(id domain.UserId) (domain.User, error) {
	return s.userWhere(s.db, "id = $1", id)
}

// =========================================================================
// Internal methods (transaction-agnostic core logic)
// =========================================================================

func (s *Storage) saveUser(q Querier, user domain.User) (domain.User, error) {
	err := q.QueryRow(
		"INSERT INTO users(id, name, email, password_hash) VALUES($1, $2, $3, $4) RETURNING created_at, updated_at",
		user.Id, user.Name, user.Email, user.PassHash,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return domain.User{}, &internal_errors.StatusError{
				Message:    "User already exists with this email",
				StatusCode: http.StatusBadRequest,
			}
		}
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return user, nil
}

func (s *Storage) userWhere(q Querier, where string, arg interface{}) (domain.User, error) {
	var user domain.User
	err := q.QueryRow(
		"SELECT id, name, email, password_hash, created_at, updated_at FROM users WHERE "+where, arg,
	).Scan(&user.Id, &user.Name, &user.Email, &user.PassHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}
