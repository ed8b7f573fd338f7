package leaderboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RogerGabeller-ml/advent-of-code-bot/internal/aoc"
)

type countingFetch struct {
	calls   int
	members []aoc.Member
	err     error
}

func (f *countingFetch) fetch(ctx context.Context, year int) ([]aoc.Member, error) {
	f.calls++
	return f.members, f.err
}

func TestCachePlayers(t *testing.T) {
	t.Run("it fetches exactly once within the poll interval", func(t *testing.T) {
		fetch := &countingFetch{members: []aoc.Member{{ID: 1, Name: "poe", Stars: 1}}}
		clock := clockwork.NewFakeClock()
		cache := NewCache(fetch.fetch, clock)

		first, err := cache.Players(context.Background(), 2022)
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			again, err := cache.Players(context.Background(), 2022)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}

		assert.Equal(t, 1, fetch.calls)
	})

	t.Run("it serves the cache at exactly the interval boundary", func(t *testing.T) {
		fetch := &countingFetch{}
		clock := clockwork.NewFakeClock()
		cache := NewCache(fetch.fetch, clock)

		_, err := cache.Players(context.Background(), 2022)
		require.NoError(t, err)

		clock.Advance(PollInterval)
		_, err = cache.Players(context.Background(), 2022)
		require.NoError(t, err)
		assert.Equal(t, 1, fetch.calls)
	})

	t.Run("it refetches once the entry goes stale", func(t *testing.T) {
		fetch := &countingFetch{}
		clock := clockwork.NewFakeClock()
		cache := NewCache(fetch.fetch, clock)

		_, err := cache.Players(context.Background(), 2022)
		require.NoError(t, err)

		clock.Advance(PollInterval + time.Second)
		_, err = cache.Players(context.Background(), 2022)
		require.NoError(t, err)
		assert.Equal(t, 2, fetch.calls)
	})

	t.Run("it caches an absent leaderboard as an empty list", func(t *testing.T) {
		fetch := &countingFetch{members: nil}
		clock := clockwork.NewFakeClock()
		cache := NewCache(fetch.fetch, clock)

		players, err := cache.Players(context.Background(), 2015)
		require.NoError(t, err)
		assert.Empty(t, players)

		_, err = cache.Players(context.Background(), 2015)
		require.NoError(t, err)
		assert.Equal(t, 1, fetch.calls)
	})

	t.Run("it keeps per-year entries independent", func(t *testing.T) {
		fetch := &countingFetch{}
		clock := clockwork.NewFakeClock()
		cache := NewCache(fetch.fetch, clock)

		_, err := cache.Players(context.Background(), 2021)
		require.NoError(t, err)
		_, err = cache.Players(context.Background(), 2022)
		require.NoError(t, err)

		assert.Equal(t, 2, fetch.calls)
	})

	t.Run("it propagates fetch failures and retries next call", func(t *testing.T) {
		boom := errors.New("upstream is unhappy")
		fetch := &countingFetch{err: boom}
		clock := clockwork.NewFakeClock()
		cache := NewCache(fetch.fetch, clock)

		_, err := cache.Players(context.Background(), 2022)
		assert.ErrorIs(t, err, boom)

		fetch.err = nil
		_, err = cache.Players(context.Background(), 2022)
		require.NoError(t, err)
		assert.Equal(t, 2, fetch.calls)
	})
}
