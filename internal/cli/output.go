package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Session:
		o.printSession(v)
	case Tournament:
		o.printTournament(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Session response type (matches API)
type Session struct {
	IsAdminLoggedIn bool   `json:"is_admin_logged_in"`
	CurrentView     string `json:"current_view"`
	Loading         bool   `json:"loading"`
	Screen          string `json:"screen"`
}

// Player response type
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Match response type
type Match struct {
	ID         string `json:"id"`
	Round      int    `json:"round"`
	PlayerA    string `json:"player_a"`
	PlayerB    string `json:"player_b"`
	Winner     string `json:"winner,omitempty"`
	IsComplete bool   `json:"is_complete"`
}

// Standing response type
type Standing struct {
	Player Player `json:"player"`
	Played int    `json:"played"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

// Tournament response type
type Tournament struct {
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	Players   []Player   `json:"players"`
	Matches   []Match    `json:"matches"`
	Standings []Standing `json:"standings"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printSession(s Session) {
	loggedIn := "no"
	if s.IsAdminLoggedIn {
		loggedIn = "yes"
	}
	_, _ = fmt.Fprintf(o.w, "Admin logged in: %s\n", loggedIn)
	_, _ = fmt.Fprintf(o.w, "View: %s\n", s.CurrentView)
	_, _ = fmt.Fprintf(o.w, "Screen: %s\n", s.Screen)
}

func (o *Output) printTournament(t Tournament) {
	_, _ = fmt.Fprintf(o.w, "Tournament: %s\n", t.Name)
	_, _ = fmt.Fprintf(o.w, "Status: %s\n", t.Status)
	if t.UpdatedAt != nil {
		_, _ = fmt.Fprintf(o.w, "Updated: %s\n", t.UpdatedAt.Format(time.RFC3339))
	}

	names := make(map[string]string, len(t.Players))
	for _, p := range t.Players {
		names[p.ID] = p.Name
	}
	name := func(id string) string {
		if n, ok := names[id]; ok {
			return n
		}
		return id
	}

	_, _ = fmt.Fprintf(o.w, "\nStandings (%d players):\n", len(t.Standings))
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "  #\tPLAYER\tID\tP\tW\tL")
	for i, s := range t.Standings {
		_, _ = fmt.Fprintf(tw, "  %d\t%s\t%s\t%d\t%d\t%d\n", i+1, s.Player.Name, s.Player.ID, s.Played, s.Wins, s.Losses)
	}
	_ = tw.Flush()

	if len(t.Matches) == 0 {
		_, _ = fmt.Fprintln(o.w, "\nNo matches scheduled")
		return
	}

	byRound := make(map[int][]Match)
	for _, m := range t.Matches {
		byRound[m.Round] = append(byRound[m.Round], m)
	}
	rounds := make([]int, 0, len(byRound))
	for r := range byRound {
		rounds = append(rounds, r)
	}
	sort.Ints(rounds)

	for _, r := range rounds {
		_, _ = fmt.Fprintf(o.w, "\nRound %d:\n", r)
		for _, m := range byRound[r] {
			result := "pending"
			if m.IsComplete {
				result = "winner " + name(m.Winner)
			}
			_, _ = fmt.Fprintf(o.w, "  [%s] %s vs %s - %s\n", m.ID, name(m.PlayerA), name(m.PlayerB), result)
		}
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.w, "Status: %s\n", strings.ToUpper(h.Status))
}
