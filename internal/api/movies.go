package api

import "github.com/moviedeck/moviedeck/internal/domain"

type FavoritesResponse struct {
	Success   bool             `json:"success"`
	Favorites []domain.MovieId `json:"favorites"`
}

type SearchResponse struct {
	Success      bool           `json:"success"`
	Movies       []domain.Movie `json:"movies"`
	TotalResults int            `json:"totalResults"`
	Message      string         `json:"message,omitempty"`
}

type MovieResponse struct {
	Success bool          `json:"success"`
	Movie   *domain.Movie `json:"movie"`
}

type FavoriteDetailsResponse struct {
	Success bool           `json:"success"`
	Movies  []domain.Movie `json:"movies"`
}
