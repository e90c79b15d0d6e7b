package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hangar7/flightlog/internal/api/apierr"
	"github.com/hangar7/flightlog/internal/services/auth"
	"github.com/hangar7/flightlog/internal/services/logbook"
)

// Handler holds the API handlers and their service dependencies
type Handler struct {
	logger  *slog.Logger
	logbook *logbook.Controller
	auth    *auth.Service
}

// New creates a new Handler
func New(logger *slog.Logger, lb *logbook.Controller, authService *auth.Service) *Handler {
	return &Handler{
		logger:  logger,
		logbook: lb,
		auth:    authService,
	}
}

// decodeJSON decodes a JSON request body into v
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apierr.NewInvalidRequestError("Invalid JSON body")
	}
	return nil
}

// pathID extracts an int64 path variable
func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apierr.NewInvalidRequestError("Invalid " + name)
	}
	return id, nil
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
