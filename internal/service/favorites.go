package service

import (
	"github.com/moviedeck/moviedeck/internal/domain"
	"github.com/moviedeck/moviedeck/internal/errors"
)

type FavoritesService interface {
	Add(userId domain.UserId, movieId domain.MovieId) ([]domain.MovieId, error)
	Remove(userId domain.UserId, movieId domain.MovieId) ([]domain.MovieId, error)
	List(userId domain.UserId) ([]domain.MovieId, error)
}

type FavoritesStorage interface {
	AddFavorite(userId domain.UserId, movieId domain.MovieId) ([]domain.MovieId, error)
	RemoveFavorite(userId domain.UserId, movieId domain.MovieId) ([]domain.MovieId, error)
	Favorites(userId domain.UserId) ([]domain.MovieId, error)
}

// Favorites mutates per-user favorites sets. Both mutations are idempotent:
// the storage layer keys rows by (user, movie), so repeating an Add or
// removing an absent id changes nothing and still succeeds.
type Favorites struct {
	storage FavoritesStorage
}

func NewFavorites(storage FavoritesStorage) *Favorites {
	return &Favorites{storage}
}

func (f *Favorites) Add(userId domain.UserId, movieId domain.MovieId) ([]domain.MovieId, error) {
	if movieId == "" {
		return nil, errors.BadRequest("Movie IMDb ID is required.")
	}
	return f.storage.AddFavorite(userId, movieId)
}

func (f *Favorites) Remove(userId domain.UserId, movieId domain.MovieId) ([]domain.MovieId, error) {
	if movieId == "" {
		return nil, errors.BadRequest("Movie IMDb ID is required.")
	}
	return f.storage.RemoveFavorite(userId, movieId)
}

func (f *Favorites) List(userId domain.UserId) ([]domain.MovieId, error) {
	return f.storage.Favorites(userId)
}
