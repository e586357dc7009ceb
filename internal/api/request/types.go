package request

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SetViewRequest is the request body for changing the current view
type SetViewRequest struct {
	View string `json:"view"`
}

// Player is a player entry in a full tournament replace
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Match is a match entry in a full tournament replace
type Match struct {
	ID      string `json:"id"`
	Round   int    `json:"round"`
	PlayerA string `json:"player_a"`
	PlayerB string `json:"player_b"`
	Winner  string `json:"winner,omitempty"`
}

// ReplaceTournamentRequest is the request body for PUT /tournament
type ReplaceTournamentRequest struct {
	Name    string   `json:"name"`
	Status  string   `json:"status"`
	Players []Player `json:"players"`
	Matches []Match  `json:"matches"`
}

// PatchTournamentRequest is the request body for PATCH /tournament
type PatchTournamentRequest struct {
	Name   *string `json:"name,omitempty"`
	Status *string `json:"status,omitempty"`
}

// AddPlayerRequest is the request body for adding a player
type AddPlayerRequest struct {
	Name string `json:"name"`
}

// AddMatchRequest is the request body for scheduling a match
type AddMatchRequest struct {
	Round   int    `json:"round"`
	PlayerA string `json:"player_a"`
	PlayerB string `json:"player_b"`
}

// RecordResultRequest is the request body for recording a winner.
// An empty winner clears the result.
type RecordResultRequest struct {
	Winner string `json:"winner"`
}
