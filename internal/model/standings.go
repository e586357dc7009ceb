package model

import (
	"cmp"
	"slices"
)

// Standing is one row of the player-facing leaderboard
type Standing struct {
	Player Player `json:"player"`
	Played int    `json:"played"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

// Standings tallies completed matches per player.
// Ordered by wins descending, then name ascending.
func (t Tournament) Standings() []Standing {
	rows := make([]Standing, len(t.Players))
	index := make(map[PlayerID]int, len(t.Players))
	for i, p := range t.Players {
		rows[i] = Standing{Player: p}
		index[p.ID] = i
	}

	for _, m := range t.Matches {
		if !m.IsComplete() {
			continue
		}
		for _, id := range []PlayerID{m.PlayerA, m.PlayerB} {
			i, ok := index[id]
			if !ok {
				continue
			}
			rows[i].Played++
			if m.Winner == id {
				rows[i].Wins++
			} else {
				rows[i].Losses++
			}
		}
	}

	slices.SortStableFunc(rows, func(a, b Standing) int {
		if c := cmp.Compare(b.Wins, a.Wins); c != 0 {
			return c
		}
		return cmp.Compare(a.Player.Name, b.Player.Name)
	})
	return rows
}
