package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hangar7/flightlog/internal/api/handler"
	apimiddleware "github.com/hangar7/flightlog/internal/api/middleware"
	"github.com/hangar7/flightlog/internal/middleware"
	"github.com/hangar7/flightlog/internal/services/auth"
	"github.com/hangar7/flightlog/internal/services/logbook"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	AuthService       *auth.Service
	LogbookController *logbook.Controller
}

// NewRouter creates a new API router with all routes configured.
// Every data route sits behind the auth middleware; only registration,
// login and the health check are open.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	h := handler.New(cfg.Logger, cfg.LogbookController, cfg.AuthService)

	authMiddleware := apimiddleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Account routes (no auth required)
	api.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/login", h.Login).Methods(http.MethodPost)

	// Protected account routes
	account := api.NewRoute().Subrouter()
	account.Use(authMiddleware)
	account.HandleFunc("/logout", h.Logout).Methods(http.MethodPost)
	account.HandleFunc("/me", h.GetMe).Methods(http.MethodGet)

	// Aircraft routes (all require auth)
	aircraft := api.PathPrefix("/aircraft").Subrouter()
	aircraft.Use(authMiddleware)
	aircraft.HandleFunc("", h.CreateAircraft).Methods(http.MethodPost)
	aircraft.HandleFunc("", h.ListAircraft).Methods(http.MethodGet)
	aircraft.HandleFunc("/{aircraftID}", h.GetAircraft).Methods(http.MethodGet)
	aircraft.HandleFunc("/{aircraftID}", h.DeleteAircraft).Methods(http.MethodDelete)
	aircraft.HandleFunc("/{aircraftID}/flights", h.ListAircraftFlights).Methods(http.MethodGet)
	aircraft.HandleFunc("/{aircraftID}/flights", h.AddFlight).Methods(http.MethodPost)

	// Flight routes (all require auth)
	flights := api.PathPrefix("/flights").Subrouter()
	flights.Use(authMiddleware)
	flights.HandleFunc("", h.ListAllFlights).Methods(http.MethodGet)
	flights.HandleFunc("/{flightID}", h.GetFlight).Methods(http.MethodGet)
	flights.HandleFunc("/{flightID}", h.EditFlight).Methods(http.MethodPut)
	flights.HandleFunc("/{flightID}", h.DeleteFlight).Methods(http.MethodDelete)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	return r
}
