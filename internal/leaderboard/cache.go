package leaderboard

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/RogerGabeller-ml/advent-of-code-bot/internal/aoc"
)

// PollInterval is the minimum time between upstream fetches for the
// same year. Advent of Code asks that their API is not polled more
// often than once every 15 minutes.
const PollInterval = 15 * time.Minute

// FetchFunc retrieves the raw member entries for a year.
type FetchFunc func(ctx context.Context, year int) ([]aoc.Member, error)

// Cache holds one normalized player list per year and refreshes it
// through the fetch func once the entry is older than the poll
// interval. An empty list (leaderboard absent upstream) is cached like
// any other result.
type Cache struct {
	fetch    FetchFunc
	clock    clockwork.Clock
	interval time.Duration

	mu    sync.Mutex
	years map[int]*yearEntry
}

type yearEntry struct {
	// mu makes check-age, fetch, and replace one critical section so
	// concurrent handlers cannot double-fetch the same year.
	mu        sync.Mutex
	fetchedAt time.Time
	players   []Player
	primed    bool
}

func NewCache(fetch FetchFunc, clock clockwork.Clock) *Cache {
	return &Cache{
		fetch:    fetch,
		clock:    clock,
		interval: PollInterval,
		years:    make(map[int]*yearEntry),
	}
}

// Players returns the cached player list for the year, refetching it
// first when the cached entry is missing or older than the poll
// interval. A fetch failure leaves the previous entry in place.
func (c *Cache) Players(ctx context.Context, year int) ([]Player, error) {
	c.mu.Lock()
	e, ok := c.years[year]
	if !ok {
		e = &yearEntry{}
		c.years[year] = e
	}
	c.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	now := c.clock.Now()
	if e.primed && now.Sub(e.fetchedAt) <= c.interval {
		return e.players, nil
	}

	members, err := c.fetch(ctx, year)
	if err != nil {
		return nil, err
	}

	e.fetchedAt = now
	e.players = NewPlayers(members)
	e.primed = true

	return e.players, nil
}
