package handler

import (
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/mcoot/tourneyview/internal/api/request"
	"github.com/mcoot/tourneyview/internal/api/response"
	"github.com/mcoot/tourneyview/internal/model"
	"github.com/mcoot/tourneyview/internal/services/dashboard"
	"github.com/mcoot/tourneyview/internal/services/viewctl"
)

// TournamentHandler handles tournament endpoints
type TournamentHandler struct {
	controller *viewctl.Controller
	dashboard  *dashboard.Service
}

// NewTournamentHandler creates a new tournament handler
func NewTournamentHandler(controller *viewctl.Controller, service *dashboard.Service) *TournamentHandler {
	return &TournamentHandler{
		controller: controller,
		dashboard:  service,
	}
}

// Get handles GET /api/v1/tournament
func (h *TournamentHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.TournamentFromModel(h.controller.Tournament()))
}

// Replace handles PUT /api/v1/tournament
func (h *TournamentHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req request.ReplaceTournamentRequest
	if err := decodeJSON(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	t, err := tournamentFromRequest(req)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.respond(w)(h.dashboard.Replace(r.Context(), t))
}

// Patch handles PATCH /api/v1/tournament
func (h *TournamentHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req request.PatchTournamentRequest
	if err := decodeJSON(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}
	if req.Name == nil && req.Status == nil {
		WriteError(w, NewInvalidRequestError("name or status is required"))
		return
	}

	settings := dashboard.Settings{Name: req.Name}
	if req.Status != nil {
		status, err := model.ParseStatus(*req.Status)
		if err != nil {
			WriteError(w, err)
			return
		}
		settings.Status = &status
	}

	h.respond(w)(h.dashboard.UpdateSettings(r.Context(), settings))
}

// AddPlayer handles POST /api/v1/tournament/players
func (h *TournamentHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerRequest
	if err := decodeJSON(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	t, err := h.dashboard.AddPlayer(r.Context(), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.TournamentFromModel(t))
}

// RemovePlayer handles DELETE /api/v1/tournament/players/{id}
func (h *TournamentHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(pathVar(r, "id"))
	h.respond(w)(h.dashboard.RemovePlayer(r.Context(), id))
}

// AddMatch handles POST /api/v1/tournament/matches
func (h *TournamentHandler) AddMatch(w http.ResponseWriter, r *http.Request) {
	var req request.AddMatchRequest
	if err := decodeJSON(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	t, err := h.dashboard.AddMatch(r.Context(), req.Round, model.PlayerID(req.PlayerA), model.PlayerID(req.PlayerB))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.TournamentFromModel(t))
}

// RecordResult handles POST /api/v1/tournament/matches/{id}/result
func (h *TournamentHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	var req request.RecordResultRequest
	if err := decodeJSON(r, &req, true); err != nil {
		WriteError(w, err)
		return
	}

	id := model.MatchID(pathVar(r, "id"))
	h.respond(w)(h.dashboard.RecordResult(r.Context(), id, model.PlayerID(req.Winner)))
}

// Reset handles POST /api/v1/tournament/reset
func (h *TournamentHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.respond(w)(h.dashboard.Reset(r.Context()))
}

// respond writes the edited tournament or the edit error
func (h *TournamentHandler) respond(w http.ResponseWriter) func(model.Tournament, error) {
	return func(t model.Tournament, err error) {
		if err != nil {
			WriteError(w, err)
			return
		}
		response.JSON(w, http.StatusOK, response.TournamentFromModel(t))
	}
}

// tournamentFromRequest builds the replacement value; ids must be present
// and match players must be entered in the tournament
func tournamentFromRequest(req request.ReplaceTournamentRequest) (model.Tournament, error) {
	t := model.Tournament{
		Name:    req.Name,
		Players: make([]model.Player, 0, len(req.Players)),
		Matches: make([]model.Match, 0, len(req.Matches)),
	}
	if req.Status != "" {
		status, err := model.ParseStatus(req.Status)
		if err != nil {
			return model.Tournament{}, err
		}
		t.Status = status
	}

	for _, p := range req.Players {
		if p.ID == "" || p.Name == "" {
			return model.Tournament{}, NewInvalidRequestError("every player needs an id and a name")
		}
		if _, dup := t.FindPlayer(model.PlayerID(p.ID)); dup {
			return model.Tournament{}, NewInvalidRequestError("duplicate player id " + p.ID)
		}
		t.Players = append(t.Players, model.Player{ID: model.PlayerID(p.ID), Name: p.Name})
	}

	for _, m := range req.Matches {
		if m.ID == "" {
			return model.Tournament{}, NewInvalidRequestError("every match needs an id")
		}
		match := model.Match{
			ID:      model.MatchID(m.ID),
			Round:   m.Round,
			PlayerA: model.PlayerID(m.PlayerA),
			PlayerB: model.PlayerID(m.PlayerB),
			Winner:  model.PlayerID(m.Winner),
		}
		switch {
		case match.Round < 1:
			return model.Tournament{}, model.ErrInvalidRound
		case match.PlayerA == match.PlayerB:
			return model.Tournament{}, model.ErrSamePlayer
		case match.Winner != "" && !match.Involves(match.Winner):
			return model.Tournament{}, model.ErrInvalidWinner
		}
		for _, id := range []model.PlayerID{match.PlayerA, match.PlayerB} {
			if _, ok := t.FindPlayer(id); !ok {
				return model.Tournament{}, model.ErrPlayerNotFound
			}
		}
		t.Matches = append(t.Matches, match)
	}

	return t, nil
}

// pathVar returns a route variable with its path escaping undone
func pathVar(r *http.Request, name string) string {
	raw := mux.Vars(r)[name]
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
