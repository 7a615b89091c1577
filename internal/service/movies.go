package service

import (
	"context"
	"errors"
	"strings"

	"github.com/moviedeck/moviedeck/internal/domain"
	internal_errors "github.com/moviedeck/moviedeck/internal/errors"
	"github.com/moviedeck/moviedeck/internal/logger"
	"github.com/moviedeck/moviedeck/internal/omdb"
)

type MoviesService interface {
	Search(ctx context.Context, query string, page int) (SearchResult, error)
	Details(ctx context.Context, imdbID domain.MovieId) (domain.Movie, error)
	FavoriteDetails(ctx context.Context, userId domain.UserId) ([]domain.Movie, error)
}

// Catalog is the external movie API the service proxies to.
type Catalog interface {
	Search(ctx context.Context, query string, page int) ([]domain.Movie, int, error)
	ByID(ctx context.Context, imdbID domain.MovieId) (domain.Movie, error)
}

type SearchResult struct {
	Movies       []domain.Movie
	TotalResults int
	Message      string
}

// Movies is a pass-through to the external catalog plus the favorites
// details join. No caching, no retries.
type Movies struct {
	catalog   Catalog
	favorites FavoritesStorage
}

func NewMovies(catalog Catalog, favorites FavoritesStorage) *Movies {
	return &Movies{catalog, favorites}
}

func (m *Movies) Search(ctx context.Context, query string, page int) (SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return SearchResult{}, internal_errors.BadRequest("Search query cannot be empty.")
	}
	if page < 1 {
		page = 1
	}

	movies, total, err := m.catalog.Search(ctx, query, page)
	if errors.Is(err, omdb.ErrNoResults) {
		return SearchResult{Movies: []domain.Movie{}, Message: "No movies found for your search."}, nil
	}
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{Movies: movies, TotalResults: total}, nil
}

func (m *Movies) Details(ctx context.Context, imdbID domain.MovieId) (domain.Movie, error) {
	if imdbID == "" {
		return domain.Movie{}, internal_errors.BadRequest("Movie IMDb ID is required.")
	}
	return m.catalog.ByID(ctx, imdbID)
}

// FavoriteDetails resolves the user's favorites set to full catalog
// records. Ids the catalog no longer knows are skipped rather than failing
// the whole page.
func (m *Movies) FavoriteDetails(ctx context.Context, userId domain.UserId) ([]domain.Movie, error) {
	ids, err := m.favorites.Favorites(userId)
	if err != nil {
		return nil, err
	}

	movies := make([]domain.Movie, 0, len(ids))
	for _, id := range ids {
		movie, err := m.catalog.ByID(ctx, id)
		if err != nil {
			if internal_errors.IsNotFound(err) {
				logger.Log.Warn("favorite no longer in catalog", "movie_id", id)
				continue
			}
			return nil, err
		}
		movies = append(movies, movie)
	}
	return movies, nil
}
