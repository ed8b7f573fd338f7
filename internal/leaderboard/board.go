package leaderboard

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	errs "github.com/RogerGabeller-ml/advent-of-code-bot/errors"
)

// eventTZ is the event's reference time zone; puzzles unlock at
// midnight US Eastern Standard Time.
var eventTZ = time.FixedZone("EST", -5*60*60)

// unlockGrace shifts "today" so that, until a new puzzle unlocks, the
// previous day is still considered current.
const unlockGrace = 5 * time.Hour

// Row is one ranked entry in a rendered view.
type Row struct {
	Rank  int
	Name  string
	Score int
	Stars int
	TS    int64
}

// Service computes the bot's ranked views over the cached player
// lists.
type Service struct {
	cache *Cache
	clock clockwork.Clock
	year  int
}

func NewService(cache *Cache, clock clockwork.Clock, currentYear int) *Service {
	return &Service{
		cache: cache,
		clock: clock,
		year:  currentYear,
	}
}

// CurrentYear is the configured event year, used when a command omits
// the year argument.
func (s *Service) CurrentYear() int {
	return s.year
}

// DefaultDay is the day whose puzzle most recently unlocked, so just
// before a new unlock the previous day's boards are still shown.
func (s *Service) DefaultDay() string {
	return strconv.Itoa(s.clock.Now().Add(-unlockGrace).Day())
}

// Overall returns the top limit rows of the default ordering. Players
// with no stars are listed only during the reveal window at the start
// of the event, before anyone is meaningfully ranked. A limit below 1
// is a no-op.
func (s *Service) Overall(ctx context.Context, limit, year int) ([]Row, error) {
	if limit < 1 {
		return nil, nil
	}

	players, err := s.cache.Players(ctx, year)
	if err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return nil, errs.ErrNoLeaderboard
	}
	if limit < len(players) {
		players = players[:limit]
	}

	revealEnd := time.Date(year, time.December, 2, 0, 0, 0, 0, eventTZ).Add(unlockGrace)
	reveal := s.clock.Now().Before(revealEnd)

	var rows []Row
	for i, p := range players {
		if p.Stars == 0 && !reveal {
			continue
		}
		rows = append(rows, Row{
			Rank:  i + 1,
			Name:  p.Name,
			Score: p.Score,
			Stars: p.Stars,
			TS:    p.LastStarTS,
		})
	}
	if len(rows) == 0 {
		return nil, errs.ErrNoStars
	}

	return rows, nil
}

// PlayerRank returns the named player's standing in the full default
// ordering. The match is case-insensitive; with duplicate names the
// first occurrence in list order wins.
func (s *Service) PlayerRank(ctx context.Context, name string, year int) (Row, error) {
	players, err := s.cache.Players(ctx, year)
	if err != nil {
		return Row{}, err
	}

	for i, p := range players {
		if strings.EqualFold(p.Name, name) {
			return Row{
				Rank:  i + 1,
				Name:  p.Name,
				Score: p.Score,
				Stars: p.Stars,
				TS:    p.LastStarTS,
			}, nil
		}
	}

	return Row{}, errs.ErrPlayerNotFound
}

// KeenestBean selects the player who was first to reach the current
// year's highest star count. On equal timestamps the first player in
// list order wins (implementation-defined; upstream leaves it open).
// The returned rank is the player's overall standing, not 1.
func (s *Service) KeenestBean(ctx context.Context) (Row, error) {
	players, err := s.cache.Players(ctx, s.year)
	if err != nil {
		return Row{}, err
	}
	if len(players) == 0 {
		return Row{}, errs.ErrNoLeaderboard
	}

	maxStars := 0
	for _, p := range players {
		if p.Stars > maxStars {
			maxStars = p.Stars
		}
	}

	best := -1
	for i, p := range players {
		if p.Stars != maxStars {
			continue
		}
		if best < 0 || p.LastStarTS < players[best].LastStarTS {
			best = i
		}
	}

	p := players[best]
	return Row{
		Rank:  best + 1,
		Name:  p.Name,
		Score: p.Score,
		Stars: p.Stars,
		TS:    p.LastStarTS,
	}, nil
}

// Daily ranks the players who completed the given day. Each star index
// is ranked separately by timestamp, and a player scores
// (N - rank) per star earned, with N the year's total player count.
// Equal totals are broken in favor of whoever finished the day
// earlier.
func (s *Service) Daily(ctx context.Context, day string, year int) ([]Row, error) {
	players, err := s.cache.Players(ctx, year)
	if err != nil {
		return nil, err
	}

	type achievement struct {
		name string
		ts   int64
	}
	var first, second []achievement
	for _, p := range players {
		c, ok := p.Days[day]
		if !ok {
			continue
		}
		if c.Star1 != nil {
			first = append(first, achievement{name: p.Name, ts: c.Star1.TS})
		}
		if c.Star2 != nil {
			second = append(second, achievement{name: p.Name, ts: c.Star2.TS})
		}
	}
	if len(first) == 0 && len(second) == 0 {
		return nil, errs.ErrNoScores
	}

	sort.SliceStable(first, func(i, j int) bool { return first[i].ts < first[j].ts })
	sort.SliceStable(second, func(i, j int) bool { return second[i].ts < second[j].ts })

	n := len(players)
	rows := make([]Row, 0, len(first))
	index := make(map[string]int, len(first))
	for i, a := range first {
		index[a.name] = len(rows)
		rows = append(rows, Row{Name: a.name, Score: n - i, Stars: 1, TS: a.ts})
	}
	for i, a := range second {
		j, ok := index[a.name]
		if !ok {
			// Star 2 without star 1 should not happen upstream.
			rows = append(rows, Row{Name: a.name, Score: n - i, Stars: 2, TS: a.ts})
			continue
		}
		rows[j].Score += n - i
		rows[j].Stars = 2
		rows[j].TS = a.ts
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		return rows[i].TS < rows[j].TS
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}

	return rows, nil
}

// StarTimeline lists every star earned on the given day in
// chronological order, one row per (player, star). A row's score is
// its placement weight: the earliest star of the day scores highest
// over the combined star-1 and star-2 pool. The stars column carries
// the star index.
func (s *Service) StarTimeline(ctx context.Context, day string, year int) ([]Row, error) {
	players, err := s.cache.Players(ctx, year)
	if err != nil {
		return nil, err
	}

	type starEvent struct {
		name string
		ts   int64
		star int
	}
	var events []starEvent
	for _, p := range players {
		c, ok := p.Days[day]
		if !ok {
			continue
		}
		if c.Star1 != nil {
			events = append(events, starEvent{name: p.Name, ts: c.Star1.TS, star: 1})
		}
		if c.Star2 != nil {
			events = append(events, starEvent{name: p.Name, ts: c.Star2.TS, star: 2})
		}
	}
	if len(events) == 0 {
		return nil, errs.ErrNoScores
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].ts < events[j].ts })

	rows := make([]Row, len(events))
	for i, e := range events {
		rows[i] = Row{
			Rank:  i + 1,
			Name:  e.name,
			Score: len(events) - i,
			Stars: e.star,
			TS:    e.ts,
		}
	}

	return rows, nil
}
