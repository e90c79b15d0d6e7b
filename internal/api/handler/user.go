package handler

import (
	"net/http"

	"github.com/hangar7/flightlog/internal/api/apierr"
	apimiddleware "github.com/hangar7/flightlog/internal/api/middleware"
	"github.com/hangar7/flightlog/internal/api/request"
	"github.com/hangar7/flightlog/internal/api/response"
)

// Register handles POST /api/v1/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	session, err := h.auth.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.logger.Info("user registered", "username", session.Username)

	response.JSON(w, http.StatusCreated, response.AuthResponseFromSession(session))
}

// Login handles POST /api/v1/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	session, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.logger.Info("user logged in", "username", session.Username)

	response.JSON(w, http.StatusOK, response.AuthResponseFromSession(session))
}

// Logout handles POST /api/v1/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	session := apimiddleware.MustGetSession(r.Context())
	h.auth.InvalidateSession(session.Token)
	response.NoContent(w)
}

// GetMe handles GET /api/v1/me
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	session := apimiddleware.MustGetSession(r.Context())

	user, err := h.auth.GetUser(r.Context(), session.Token)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserFromModel(user))
}
