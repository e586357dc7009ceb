package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/tourneyview/internal/model"
	"github.com/mcoot/tourneyview/internal/web/templates/layout"
)

// page builds a component whose body is produced into a strings.Builder
func page(data layout.PageData, body func(b *strings.Builder)) templ.Component {
	return layout.Base(data, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		body(&b)
		_, err := io.WriteString(w, b.String())
		return err
	}))
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// Loading renders the placeholder shown before initialisation completes
func Loading(data layout.PageData) templ.Component {
	return page(data, func(b *strings.Builder) {
		b.WriteString("<div class=\"loading\">Loading Application...</div>\n")
	})
}

// LoginData holds data for the admin login screen
type LoginData struct {
	layout.PageData
	Username string
	Error    string
}

// Login renders the admin login form
func Login(data LoginData) templ.Component {
	return page(data.PageData, func(b *strings.Builder) {
		b.WriteString("<section class=\"admin-login\">\n<h1>Admin Login</h1>\n")
		if data.Error != "" {
			fmt.Fprintf(b, "<div class=\"login-error\" role=\"alert\">%s</div>\n", esc(data.Error))
		}
		b.WriteString("<form method=\"post\" action=\"/login\">\n")
		fmt.Fprintf(b, "<label>Username <input type=\"text\" name=\"username\" value=\"%s\" autocomplete=\"username\" required></label>\n", esc(data.Username))
		b.WriteString("<label>Password <input type=\"password\" name=\"password\" autocomplete=\"current-password\" required></label>\n")
		b.WriteString("<button type=\"submit\">Login</button>\n</form>\n</section>\n")
	})
}

// TournamentData is shared by the dashboard and player screens
type TournamentData struct {
	layout.PageData
	Tournament model.Tournament
	Standings  []model.Standing
}

// PlayerView renders the read-only tournament: standings then matches by round
func PlayerView(data TournamentData) templ.Component {
	return page(data.PageData, func(b *strings.Builder) {
		t := data.Tournament
		b.WriteString("<section class=\"player-view\">\n")
		fmt.Fprintf(b, "<h1>%s</h1>\n", esc(t.Name))
		writeStandings(b, data.Standings)
		writeMatches(b, t, nil)
		b.WriteString("</section>\n")
	})
}

func writeStandings(b *strings.Builder, standings []model.Standing) {
	b.WriteString("<h2>Standings</h2>\n")
	if len(standings) == 0 {
		b.WriteString("<p class=\"empty\">No players yet.</p>\n")
		return
	}
	b.WriteString("<table class=\"standings\">\n<thead><tr><th>#</th><th>Player</th><th>Played</th><th>Wins</th><th>Losses</th></tr></thead>\n<tbody>\n")
	for i, s := range standings {
		fmt.Fprintf(b, "<tr data-player-id=\"%s\"><td>%d</td><td class=\"player-name\">%s</td><td>%d</td><td>%d</td><td>%d</td></tr>\n",
			esc(string(s.Player.ID)), i+1, esc(s.Player.Name), s.Played, s.Wins, s.Losses)
	}
	b.WriteString("</tbody>\n</table>\n")
}

// writeMatches lists matches grouped by round; extra renders per-match admin controls
func writeMatches(b *strings.Builder, t model.Tournament, extra func(b *strings.Builder, m model.Match)) {
	b.WriteString("<h2>Matches</h2>\n")
	rounds := t.Rounds()
	if len(rounds) == 0 {
		b.WriteString("<p class=\"empty\">No matches scheduled.</p>\n")
		return
	}
	for _, round := range rounds {
		fmt.Fprintf(b, "<div class=\"round\" data-round=\"%d\">\n<h3>Round %d</h3>\n<ul class=\"matches\">\n", round, round)
		for _, m := range t.MatchesInRound(round) {
			fmt.Fprintf(b, "<li class=\"match\" data-match-id=\"%s\">", esc(string(m.ID)))
			fmt.Fprintf(b, "<span class=\"players\">%s vs %s</span>",
				esc(t.PlayerName(m.PlayerA)), esc(t.PlayerName(m.PlayerB)))
			if m.IsComplete() {
				fmt.Fprintf(b, " <span class=\"winner\">Winner: %s</span>", esc(t.PlayerName(m.Winner)))
			} else {
				b.WriteString(" <span class=\"pending\">Pending</span>")
			}
			if extra != nil {
				extra(b, m)
			}
			b.WriteString("</li>\n")
		}
		b.WriteString("</ul>\n</div>\n")
	}
}
