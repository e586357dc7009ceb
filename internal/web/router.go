package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/tourneyview/internal/services/dashboard"
	"github.com/mcoot/tourneyview/internal/services/viewctl"
	"github.com/mcoot/tourneyview/internal/web/handler"
	"github.com/mcoot/tourneyview/internal/web/middleware"
	"github.com/mcoot/tourneyview/internal/web/sse"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger     *slog.Logger
	Controller *viewctl.Controller
	Dashboard  *dashboard.Service
	Hub        *sse.Hub
	StaticDir  string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	// IDs are path-escaped by clients, so route on the escaped path
	r := mux.NewRouter().UseEncodedPath()

	// Create middleware
	requestIDMiddleware := middleware.RequestID()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	adminMiddleware := middleware.RequireAdmin(cfg.Controller)

	// Apply global middleware to all routes
	r.Use(requestIDMiddleware)
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	viewHandler := handler.NewViewHandler(cfg.Controller)
	sessionHandler := handler.NewSessionHandler(cfg.Controller, cfg.Logger)
	dashboardHandler := handler.NewDashboardHandler(cfg.Dashboard, cfg.Logger)
	eventsHandler := handler.NewEventsHandler(cfg.Hub)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	r.HandleFunc("/events", eventsHandler.Stream).Methods(http.MethodGet)

	// Session routes
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.HandleFunc("/", viewHandler.Home).Methods(http.MethodGet)
	public.HandleFunc("/navigate", sessionHandler.Navigate).Methods(http.MethodPost)
	public.HandleFunc("/login", sessionHandler.Login).Methods(http.MethodPost)
	public.HandleFunc("/logout", sessionHandler.Logout).Methods(http.MethodPost)

	// Admin routes (require login)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(flashMiddleware)
	admin.Use(adminMiddleware)
	admin.HandleFunc("/tournament", dashboardHandler.UpdateTournament).Methods(http.MethodPost)
	admin.HandleFunc("/players", dashboardHandler.AddPlayer).Methods(http.MethodPost)
	admin.HandleFunc("/players/{id}/remove", dashboardHandler.RemovePlayer).Methods(http.MethodPost)
	admin.HandleFunc("/matches", dashboardHandler.AddMatch).Methods(http.MethodPost)
	admin.HandleFunc("/matches/{id}/result", dashboardHandler.RecordResult).Methods(http.MethodPost)
	admin.HandleFunc("/reset", dashboardHandler.Reset).Methods(http.MethodPost)

	return r
}
