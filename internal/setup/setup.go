package setup

import (
	"github.com/moviedeck/moviedeck/internal/config"
	"github.com/moviedeck/moviedeck/internal/handler"
	"github.com/moviedeck/moviedeck/internal/jwt"
	"github.com/moviedeck/moviedeck/internal/middleware"
	"github.com/moviedeck/moviedeck/internal/omdb"
	"github.com/moviedeck/moviedeck/internal/service"
	"github.com/moviedeck/moviedeck/internal/storage/pg"
)

// Dependencies holds all initialized application dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Jwt            jwt.TokenService
}

// SetupDependencies wires the application together.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	tokenService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	catalog := omdb.New(cfg.Public.OmdbBaseURL, cfg.OmdbApiKey())

	auth := service.NewAuth(storage, tokenService)
	favorites := service.NewFavorites(storage)
	movies := service.NewMovies(catalog, storage)

	h := handler.New(auth, favorites, movies, storage)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(tokenService, storage),
		Jwt:            tokenService,
	}, nil
}
