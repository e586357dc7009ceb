package response

import (
	"time"

	"github.com/mcoot/tourneyview/internal/model"
	"github.com/mcoot/tourneyview/internal/services/viewctl"
)

// Session represents the view controller state in API responses
type Session struct {
	IsAdminLoggedIn bool   `json:"is_admin_logged_in"`
	CurrentView     string `json:"current_view"`
	Loading         bool   `json:"loading"`
	Screen          string `json:"screen"`
}

// SessionFromState converts controller state, deriving the screen
func SessionFromState(s viewctl.State) Session {
	return Session{
		IsAdminLoggedIn: s.IsAdminLoggedIn,
		CurrentView:     string(s.CurrentView),
		Loading:         s.Loading,
		Screen:          string(viewctl.Screen(s)),
	}
}

// Player represents a player in API responses
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Match represents a match in API responses
type Match struct {
	ID         string `json:"id"`
	Round      int    `json:"round"`
	PlayerA    string `json:"player_a"`
	PlayerB    string `json:"player_b"`
	Winner     string `json:"winner,omitempty"`
	IsComplete bool   `json:"is_complete"`
}

// Standing represents one row of the standings table
type Standing struct {
	Player Player `json:"player"`
	Played int    `json:"played"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

// Tournament is the response for tournament endpoints
type Tournament struct {
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	Players   []Player   `json:"players"`
	Matches   []Match    `json:"matches"`
	Standings []Standing `json:"standings"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// TournamentFromModel converts a model.Tournament, including standings
func TournamentFromModel(t model.Tournament) Tournament {
	resp := Tournament{
		Name:      t.Name,
		Status:    string(t.Status),
		Players:   make([]Player, 0, len(t.Players)),
		Matches:   make([]Match, 0, len(t.Matches)),
		Standings: []Standing{},
	}
	for _, p := range t.Players {
		resp.Players = append(resp.Players, playerFromModel(p))
	}
	for _, m := range t.Matches {
		resp.Matches = append(resp.Matches, Match{
			ID:         string(m.ID),
			Round:      m.Round,
			PlayerA:    string(m.PlayerA),
			PlayerB:    string(m.PlayerB),
			Winner:     string(m.Winner),
			IsComplete: m.IsComplete(),
		})
	}
	for _, s := range t.Standings() {
		resp.Standings = append(resp.Standings, Standing{
			Player: playerFromModel(s.Player),
			Played: s.Played,
			Wins:   s.Wins,
			Losses: s.Losses,
		})
	}
	if !t.UpdatedAt.IsZero() {
		updated := t.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}

func playerFromModel(p model.Player) Player {
	return Player{ID: string(p.ID), Name: p.Name}
}

// Health is the response for the health endpoint
type Health struct {
	Status string `json:"status"`
}
