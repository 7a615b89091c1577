package handler

import (
	"context"

	"github.com/moviedeck/moviedeck/internal/service"
)

// HealthChecker reports downstream readiness (the database).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth      service.AuthService
	favorites service.FavoritesService
	movies    service.MoviesService
	health    HealthChecker
}

func New(auth service.AuthService, favorites service.FavoritesService, movies service.MoviesService, health HealthChecker) *Handler {
	return &Handler{auth, favorites, movies, health}
}
