package model

import (
	"slices"
	"strings"
	"time"
)

// TournamentStatus is the lifecycle stage shown in the header badge
type TournamentStatus string

const (
	StatusUpcoming TournamentStatus = "Upcoming"
	StatusOngoing  TournamentStatus = "Ongoing"
	StatusFinished TournamentStatus = "Finished"
)

// AllStatuses lists the statuses in lifecycle order
var AllStatuses = []TournamentStatus{StatusUpcoming, StatusOngoing, StatusFinished}

// ParseStatus matches a status case-insensitively
func ParseStatus(s string) (TournamentStatus, error) {
	for _, st := range AllStatuses {
		if strings.EqualFold(string(st), strings.TrimSpace(s)) {
			return st, nil
		}
	}
	return "", ErrInvalidStatus
}

// PlayerID identifies a tournament entrant
type PlayerID string

// MatchID identifies a single pairing
type MatchID string

// Player is a tournament entrant
type Player struct {
	ID   PlayerID `json:"id"`
	Name string   `json:"name"`
}

// Match is a pairing between two players within a round.
// Winner is empty until a result is recorded.
type Match struct {
	ID      MatchID  `json:"id"`
	Round   int      `json:"round"`
	PlayerA PlayerID `json:"playerA"`
	PlayerB PlayerID `json:"playerB"`
	Winner  PlayerID `json:"winner,omitempty"`
}

// IsComplete reports whether a winner has been recorded
func (m Match) IsComplete() bool {
	return m.Winner != ""
}

// Involves reports whether the player takes part in the match
func (m Match) Involves(id PlayerID) bool {
	return m.PlayerA == id || m.PlayerB == id
}

// Tournament is the record shared between the admin dashboard and the player view
type Tournament struct {
	Name      string           `json:"name"`
	Status    TournamentStatus `json:"status"`
	Players   []Player         `json:"players"`
	Matches   []Match          `json:"matches"`
	UpdatedAt time.Time        `json:"updatedAt,omitzero"`
}

// DefaultTournament returns the seed tournament used when nothing is persisted
func DefaultTournament() Tournament {
	return Tournament{
		Name:   "Community Cup",
		Status: StatusUpcoming,
		Players: []Player{
			{ID: "p1", Name: "Alice"},
			{ID: "p2", Name: "Bob"},
			{ID: "p3", Name: "Carol"},
			{ID: "p4", Name: "Dave"},
		},
		Matches: []Match{},
	}
}

// Valid reports whether t has a name and a known status. Anything less
// is treated as corrupt when loaded from storage.
func (t Tournament) Valid() bool {
	return strings.TrimSpace(t.Name) != "" && slices.Contains(AllStatuses, t.Status)
}

// Clone returns a deep copy so callers cannot mutate shared slices
func (t Tournament) Clone() Tournament {
	c := t
	c.Players = slices.Clone(t.Players)
	c.Matches = slices.Clone(t.Matches)
	if c.Players == nil {
		c.Players = []Player{}
	}
	if c.Matches == nil {
		c.Matches = []Match{}
	}
	return c
}

// FindPlayer returns the player with the given ID
func (t Tournament) FindPlayer(id PlayerID) (Player, bool) {
	for _, p := range t.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// PlayerName returns the display name for an ID, or the ID itself if unknown
func (t Tournament) PlayerName(id PlayerID) string {
	if p, ok := t.FindPlayer(id); ok {
		return p.Name
	}
	return string(id)
}

// MatchIndex returns the index of the match or -1
func (t Tournament) MatchIndex(id MatchID) int {
	return slices.IndexFunc(t.Matches, func(m Match) bool { return m.ID == id })
}

// Rounds returns the distinct round numbers in ascending order
func (t Tournament) Rounds() []int {
	var rounds []int
	for _, m := range t.Matches {
		if !slices.Contains(rounds, m.Round) {
			rounds = append(rounds, m.Round)
		}
	}
	slices.Sort(rounds)
	return rounds
}

// MatchesInRound returns the matches of one round in insertion order
func (t Tournament) MatchesInRound(round int) []Match {
	var out []Match
	for _, m := range t.Matches {
		if m.Round == round {
			out = append(out, m)
		}
	}
	return out
}
