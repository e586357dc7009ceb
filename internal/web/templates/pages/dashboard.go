package pages

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/tourneyview/internal/model"
)

// Dashboard renders the admin editing screen
func Dashboard(data TournamentData) templ.Component {
	return page(data.PageData, func(b *strings.Builder) {
		t := data.Tournament
		b.WriteString("<section class=\"admin-dashboard\">\n<h1>Admin Dashboard</h1>\n")

		writeTournamentForm(b, t)
		writePlayers(b, t)
		writeMatchForm(b, t)
		writeMatches(b, t, func(b *strings.Builder, m model.Match) {
			writeResultForm(b, t, m)
		})
		writeStandings(b, data.Standings)

		b.WriteString("<form method=\"post\" action=\"/admin/reset\" class=\"reset\">\n")
		b.WriteString("<button type=\"submit\">Reset tournament</button>\n</form>\n")
		b.WriteString("</section>\n")
	})
}

func writeTournamentForm(b *strings.Builder, t model.Tournament) {
	b.WriteString("<form method=\"post\" action=\"/admin/tournament\" class=\"tournament-settings\">\n")
	fmt.Fprintf(b, "<label>Name <input type=\"text\" name=\"name\" value=\"%s\" required></label>\n", esc(t.Name))
	b.WriteString("<label>Status <select name=\"status\">\n")
	for _, s := range model.AllStatuses {
		selected := ""
		if s == t.Status {
			selected = " selected"
		}
		fmt.Fprintf(b, "<option value=\"%s\"%s>%s</option>\n", esc(string(s)), selected, esc(string(s)))
	}
	b.WriteString("</select></label>\n<button type=\"submit\">Save</button>\n</form>\n")
}

func writePlayers(b *strings.Builder, t model.Tournament) {
	b.WriteString("<h2>Players</h2>\n<ul class=\"players\">\n")
	for _, p := range t.Players {
		fmt.Fprintf(b, "<li data-player-id=\"%s\">%s ", esc(string(p.ID)), esc(p.Name))
		fmt.Fprintf(b, "<form method=\"post\" action=\"/admin/players/%s/remove\" class=\"inline\">", esc(url.PathEscape(string(p.ID))))
		b.WriteString("<button type=\"submit\">Remove</button></form></li>\n")
	}
	b.WriteString("</ul>\n")
	b.WriteString("<form method=\"post\" action=\"/admin/players\" class=\"add-player\">\n")
	b.WriteString("<label>New player <input type=\"text\" name=\"name\" required></label>\n")
	b.WriteString("<button type=\"submit\">Add player</button>\n</form>\n")
}

func writePlayerOptions(b *strings.Builder, t model.Tournament) {
	for _, p := range t.Players {
		fmt.Fprintf(b, "<option value=\"%s\">%s</option>\n", esc(string(p.ID)), esc(p.Name))
	}
}

func writeMatchForm(b *strings.Builder, t model.Tournament) {
	if len(t.Players) < 2 {
		return
	}
	nextRound := 1
	if rounds := t.Rounds(); len(rounds) > 0 {
		nextRound = rounds[len(rounds)-1]
	}
	b.WriteString("<h2>Schedule match</h2>\n")
	b.WriteString("<form method=\"post\" action=\"/admin/matches\" class=\"add-match\">\n")
	fmt.Fprintf(b, "<label>Round <input type=\"number\" name=\"round\" min=\"1\" value=\"%d\" required></label>\n", nextRound)
	b.WriteString("<label>Player A <select name=\"player_a\">\n")
	writePlayerOptions(b, t)
	b.WriteString("</select></label>\n<label>Player B <select name=\"player_b\">\n")
	writePlayerOptions(b, t)
	b.WriteString("</select></label>\n<button type=\"submit\">Add match</button>\n</form>\n")
}

func writeResultForm(b *strings.Builder, t model.Tournament, m model.Match) {
	fmt.Fprintf(b, " <form method=\"post\" action=\"/admin/matches/%s/result\" class=\"inline result\">", esc(url.PathEscape(string(m.ID))))
	b.WriteString("<select name=\"winner\">")
	b.WriteString("<option value=\"\">No result</option>")
	for _, id := range []model.PlayerID{m.PlayerA, m.PlayerB} {
		selected := ""
		if id == m.Winner {
			selected = " selected"
		}
		fmt.Fprintf(b, "<option value=\"%s\"%s>%s</option>", esc(string(id)), selected, esc(t.PlayerName(id)))
	}
	b.WriteString("</select><button type=\"submit\">Record</button></form>")
}
