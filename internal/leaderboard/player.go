// Package leaderboard holds the cached player lists and the ranking
// queries the bot's commands are built on.
package leaderboard

import (
	"fmt"
	"sort"

	"github.com/RogerGabeller-ml/advent-of-code-bot/internal/aoc"
)

// Player is one leaderboard member for one event year.
type Player struct {
	Name       string
	Score      int
	Stars      int
	LastStarTS int64
	Days       map[string]Completion
	ID         int64
}

// Completion holds the star timestamps a player earned for a single
// day. Star2 implies Star1 upstream; that invariant is not re-checked
// here.
type Completion struct {
	Star1 *Star
	Star2 *Star
}

type Star struct {
	TS int64
}

// NewPlayers converts raw member entries into Players in the default
// ordering: score descending, then stars descending, then earlier
// last-star timestamp first. Anonymous members get a deterministic
// placeholder name derived from their member ID.
func NewPlayers(members []aoc.Member) []Player {
	players := make([]Player, 0, len(members))

	for _, m := range members {
		p := Player{
			Name:       m.Name,
			Score:      m.LocalScore,
			Stars:      m.Stars,
			LastStarTS: m.LastStarTS,
			Days:       make(map[string]Completion, len(m.CompletionDayLevel)),
			ID:         m.ID,
		}
		if p.Name == "" {
			p.Name = fmt.Sprintf("anon #%d", m.ID)
		}

		for day, stars := range m.CompletionDayLevel {
			var c Completion
			if s, ok := stars["1"]; ok {
				c.Star1 = &Star{TS: s.GetStarTS}
			}
			if s, ok := stars["2"]; ok {
				c.Star2 = &Star{TS: s.GetStarTS}
			}
			p.Days[day] = c
		}

		players = append(players, p)
	}

	sort.SliceStable(players, func(i, j int) bool {
		a, b := players[i], players[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Stars != b.Stars {
			return a.Stars > b.Stars
		}
		return a.LastStarTS < b.LastStarTS
	})

	return players
}
