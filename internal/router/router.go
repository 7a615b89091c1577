package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/moviedeck/moviedeck/internal/api"
	"github.com/moviedeck/moviedeck/internal/middleware/metrics"
	"github.com/moviedeck/moviedeck/internal/setup"
	"github.com/moviedeck/moviedeck/internal/utils"
)

// New creates and configures the chi router with all the routes.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)

	origins := deps.Config.Public.CorsOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	h := deps.Handler
	needAuth := deps.AuthMiddleware.NeedAuth()

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(needAuth)
			r.Get("/me", h.Me)
			r.Post("/logout", h.Logout)
		})
	})

	r.Route("/movies", func(r chi.Router) {
		r.Get("/search", h.SearchMovies)
		r.Get("/details/{imdbID}", h.MovieDetails)

		r.Route("/users/favorites", func(r chi.Router) {
			r.Use(needAuth)
			r.Get("/", h.ListFavorites)
			r.Get("/details", h.FavoriteDetails)
			r.Post("/{movieId}", h.AddFavorite)
			r.Delete("/{movieId}", h.RemoveFavorite)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusNotFound, api.ErrorResponse{Message: "Route not found"})
	})

	return r
}
