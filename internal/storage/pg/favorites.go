package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/moviedeck/moviedeck/internal/domain"
)

// =========================================================================
// Public methods (satisfy the service.FavoritesStorage interface)
// =========================================================================

// AddFavorite inserts a favorites row for the user and returns the updated
// set. The composite primary key makes a repeated add a no-op.
func (s *Storage) AddFavorite(userId domain.UserId, movieId domain.MovieId) ([]domain.MovieId, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var favorites []domain.MovieId
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.Exec(
			"INSERT INTO favorites(user_id, movie_id) VALUES($1, $2) ON CONFLICT DO NOTHING",
			userId, movieId,
		)
		if err != nil {
			return fmt.Errorf("failed to insert favorite: %w", err)
		}
		favorites, err = s.favorites(tx, userId)
		return err
	})
	return favorites, err
}

// RemoveFavorite deletes the favorites row if present and returns the
// updated set. Removing an absent id succeeds.
func (s *Storage) RemoveFavorite(userId domain.UserId, movieId domain.MovieId) ([]domain.MovieId, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var favorites []domain.MovieId
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.Exec(
			"DELETE FROM favorites WHERE user_id = $1 AND movie_id = $2",
			userId, movieId,
		)
		if err != nil {
			return fmt.Errorf("failed to delete favorite: %w", err)
		}
		favorites, err = s.favorites(tx, userId)
		return err
	})
	return favorites, err
}

// Favorites returns the user's current favorites set.
func (s *Storage) Favorites(userId domain.UserId) ([]domain.MovieId, error) {
	return s.favorites(s.db, userId)
}

// =========================================================================
// Internal methods (transaction-agnostic core logic)
// =========================================================================

func (s *Storage) favorites(q Querier, userId domain.UserId) ([]domain.MovieId, error) {
	rows, err := q.Query(
		"SELECT movie_id FROM favorites WHERE user_id = $1 ORDER BY added_at",
		userId,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	favorites := []domain.MovieId{}
	for rows.Next() {
		var movieId domain.MovieId
		if err := rows.Scan(&movieId); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, movieId)
	}
	return favorites, rows.Err()
}
