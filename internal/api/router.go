package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/tourneyview/internal/api/apierr"
	"github.com/mcoot/tourneyview/internal/api/handler"
	"github.com/mcoot/tourneyview/internal/api/middleware"
	"github.com/mcoot/tourneyview/internal/api/response"
	"github.com/mcoot/tourneyview/internal/services/dashboard"
	"github.com/mcoot/tourneyview/internal/services/viewctl"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger     *slog.Logger
	Controller *viewctl.Controller
	Dashboard  *dashboard.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	// IDs are path-escaped by clients, so route on the escaped path
	r := mux.NewRouter().UseEncodedPath()

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.Controller)
	tournamentHandler := handler.NewTournamentHandler(cfg.Controller, cfg.Dashboard)

	// Create middleware
	adminMiddleware := middleware.RequireAdmin(cfg.Controller)
	requestIDMiddleware := middleware.RequestID()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(requestIDMiddleware)
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)
	api.NotFoundHandler = http.HandlerFunc(notFoundHandler)

	// Session routes (no admin required)
	api.HandleFunc("/session", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/session/login", sessionHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/session/logout", sessionHandler.Logout).Methods(http.MethodPost)
	api.HandleFunc("/session/view", sessionHandler.SetView).Methods(http.MethodPut)

	// Tournament reads are public
	api.HandleFunc("/tournament", tournamentHandler.Get).Methods(http.MethodGet)

	// Tournament writes require the admin session
	admin := api.NewRoute().Subrouter()
	admin.Use(adminMiddleware)
	admin.HandleFunc("/tournament", tournamentHandler.Replace).Methods(http.MethodPut)
	admin.HandleFunc("/tournament", tournamentHandler.Patch).Methods(http.MethodPatch)
	admin.HandleFunc("/tournament/players", tournamentHandler.AddPlayer).Methods(http.MethodPost)
	admin.HandleFunc("/tournament/players/{id}", tournamentHandler.RemovePlayer).Methods(http.MethodDelete)
	admin.HandleFunc("/tournament/matches", tournamentHandler.AddMatch).Methods(http.MethodPost)
	admin.HandleFunc("/tournament/matches/{id}/result", tournamentHandler.RecordResult).Methods(http.MethodPost)
	admin.HandleFunc("/tournament/reset", tournamentHandler.Reset).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	apierr.WriteError(w, apierr.NewNotFoundError())
}
