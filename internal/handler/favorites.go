package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moviedeck/moviedeck/internal/api"
	"github.com/moviedeck/moviedeck/internal/domain"
	internal_errors "github.com/moviedeck/moviedeck/internal/errors"
	"github.com/moviedeck/moviedeck/internal/middleware"
	"github.com/moviedeck/moviedeck/internal/utils"
)

func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	h.mutateFavorites(w, r, h.favorites.Add)
}

func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	h.mutateFavorites(w, r, h.favorites.Remove)
}

func (h *Handler) mutateFavorites(w http.ResponseWriter, r *http.Request, op func(domain.UserId, domain.MovieId) ([]domain.MovieId, error)) {
	caller := middleware.UserFromContext(r)
	if caller == nil {
		utils.WriteError(w, internal_errors.Unauthorized("Not authorized, no token"))
		return
	}
	movieId := chi.URLParam(r, "movieId")

	favorites, err := op(caller.Id, movieId)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.FavoritesResponse{Success: true, Favorites: favorites})
}

func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFromContext(r)
	if caller == nil {
		utils.WriteError(w, internal_errors.Unauthorized("Not authorized, no token"))
		return
	}

	favorites, err := h.favorites.List(caller.Id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.FavoritesResponse{Success: true, Favorites: favorites})
}
