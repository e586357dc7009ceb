package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/tourneyview/internal/model"
	"github.com/mcoot/tourneyview/internal/services/dashboard"
	"github.com/mcoot/tourneyview/internal/web/middleware"
)

// DashboardHandler handles the admin dashboard forms. Every action
// redirects back to / with a flash describing the outcome.
type DashboardHandler struct {
	dashboard *dashboard.Service
	logger    *slog.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service *dashboard.Service, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboard: service,
		logger:    logger,
	}
}

// UpdateTournament saves the name and status form
func (h *DashboardHandler) UpdateTournament(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	name := r.FormValue("name")
	settings := dashboard.Settings{Name: &name}
	if raw := r.FormValue("status"); raw != "" {
		status, err := model.ParseStatus(raw)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		settings.Status = &status
	}

	_, err := h.dashboard.UpdateSettings(r.Context(), settings)
	h.done(w, r, err, "Tournament updated")
}

// AddPlayer enters a new player
func (h *DashboardHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	_, err := h.dashboard.AddPlayer(r.Context(), name)
	h.done(w, r, err, "Added "+name)
}

// RemovePlayer removes a player and their matches
func (h *DashboardHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(pathVar(r, "id"))
	_, err := h.dashboard.RemovePlayer(r.Context(), id)
	h.done(w, r, err, "Player removed")
}

// AddMatch schedules a match
func (h *DashboardHandler) AddMatch(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	round, err := strconv.Atoi(strings.TrimSpace(r.FormValue("round")))
	if err != nil {
		h.fail(w, r, model.ErrInvalidRound)
		return
	}

	_, err = h.dashboard.AddMatch(r.Context(), round,
		model.PlayerID(r.FormValue("player_a")),
		model.PlayerID(r.FormValue("player_b")))
	h.done(w, r, err, "Match scheduled")
}

// RecordResult sets or clears a match winner
func (h *DashboardHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	id := model.MatchID(pathVar(r, "id"))
	_, err := h.dashboard.RecordResult(r.Context(), id, model.PlayerID(r.FormValue("winner")))
	h.done(w, r, err, "Result recorded")
}

// Reset restores the seed tournament
func (h *DashboardHandler) Reset(w http.ResponseWriter, r *http.Request) {
	_, err := h.dashboard.Reset(r.Context())
	h.done(w, r, err, "Tournament reset")
}

func (h *DashboardHandler) done(w http.ResponseWriter, r *http.Request, err error, success string) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	middleware.SetFlash(w, "success", success)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *DashboardHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	msg := editErrorMessage(err)
	if msg == "" {
		h.logger.Error("dashboard edit failed", slog.String("error", err.Error()))
		msg = "Something went wrong"
	}
	middleware.SetFlash(w, "error", msg)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return false
	}
	return true
}

// editErrorMessage converts known edit errors to user-facing text
func editErrorMessage(err error) string {
	switch {
	case errors.Is(err, dashboard.ErrNotAdmin):
		return "Admin login required"
	case errors.Is(err, model.ErrNameRequired):
		return "Name is required"
	case errors.Is(err, model.ErrInvalidStatus):
		return "Unknown tournament status"
	case errors.Is(err, model.ErrPlayerNotFound):
		return "Player not found"
	case errors.Is(err, model.ErrMatchNotFound):
		return "Match not found"
	case errors.Is(err, model.ErrSamePlayer):
		return "A player cannot play themselves"
	case errors.Is(err, model.ErrInvalidRound):
		return "Round must be a positive number"
	case errors.Is(err, model.ErrInvalidWinner):
		return "Winner must be one of the match players"
	default:
		return ""
	}
}

// pathVar returns a route variable with its path escaping undone
func pathVar(r *http.Request, name string) string {
	raw := mux.Vars(r)[name]
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
