package handler

import (
	"net/http"

	"github.com/moviedeck/moviedeck/internal/api"
	internal_errors "github.com/moviedeck/moviedeck/internal/errors"
	"github.com/moviedeck/moviedeck/internal/middleware"
	"github.com/moviedeck/moviedeck/internal/utils"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	token, user, err := h.auth.Register(body.Name, body.Email, body.Password)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	view := user.View()
	utils.WriteJSON(w, http.StatusCreated, api.AuthResponse{
		Success: true,
		Message: "User registered successfully",
		Token:   token,
		User:    &view,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	token, user, err := h.auth.Login(body.Email, body.Password)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	view := user.View()
	utils.WriteJSON(w, http.StatusOK, api.AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    &view,
	})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFromContext(r)
	if caller == nil {
		utils.WriteError(w, internal_errors.Unauthorized("Not authorized, no token"))
		return
	}

	user, err := h.auth.CurrentUser(caller.Id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	view := user.View()
	utils.WriteJSON(w, http.StatusOK, api.UserResponse{Success: true, User: &view})
}

// Logout is a stateless acknowledgement. The token stays valid until its
// natural expiry; clients discard it.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, api.MessageResponse{
		Success: true,
		Message: "User logged out successfully",
	})
}
