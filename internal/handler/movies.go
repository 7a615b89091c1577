package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/moviedeck/moviedeck/internal/api"
	internal_errors "github.com/moviedeck/moviedeck/internal/errors"
	"github.com/moviedeck/moviedeck/internal/middleware"
	"github.com/moviedeck/moviedeck/internal/utils"
)

func (h *Handler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		page = 1
	}

	result, err := h.movies.Search(r.Context(), query, page)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.SearchResponse{
		Success:      true,
		Movies:       result.Movies,
		TotalResults: result.TotalResults,
		Message:      result.Message,
	})
}

func (h *Handler) MovieDetails(w http.ResponseWriter, r *http.Request) {
	imdbID := chi.URLParam(r, "imdbID")

	movie, err := h.movies.Details(r.Context(), imdbID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.MovieResponse{Success: true, Movie: &movie})
}

func (h *Handler) FavoriteDetails(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFromContext(r)
	if caller == nil {
		utils.WriteError(w, internal_errors.Unauthorized("Not authorized, no token"))
		return
	}

	movies, err := h.movies.FavoriteDetails(r.Context(), caller.Id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.FavoriteDetailsResponse{Success: true, Movies: movies})
}
