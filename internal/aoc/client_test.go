package aoc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const leaderboardJSON = `{
	"event": "2022",
	"owner_id": 12345,
	"members": {
		"2": {
			"id": 2,
			"name": "",
			"local_score": 10,
			"stars": 2,
			"last_star_ts": 200,
			"completion_day_level": {
				"1": {
					"1": {"get_star_ts": 100},
					"2": {"get_star_ts": 200}
				}
			}
		},
		"1": {
			"id": 1,
			"name": "poe the potato pirate",
			"local_score": 26,
			"stars": 1,
			"last_star_ts": 150,
			"completion_day_level": {
				"1": {
					"1": {"get_star_ts": 150}
				}
			}
		}
	}
}`

func TestLeaderboard(t *testing.T) {
	t.Run("it attaches the session cookie and user agent", func(t *testing.T) {
		var gotCookie, gotAgent string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie("session"); err == nil {
				gotCookie = c.Value
			}
			gotAgent = r.UserAgent()
			_, _ = w.Write([]byte(leaderboardJSON))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "12345", "sekrit")
		_, err := client.Leaderboard(context.Background(), 2022)
		require.NoError(t, err)

		assert.Equal(t, "sekrit", gotCookie)
		assert.Equal(t, userAgent, gotAgent)
	})

	t.Run("it decodes members into a stable order", func(t *testing.T) {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_, _ = w.Write([]byte(leaderboardJSON))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "12345", "sekrit")
		members, err := client.Leaderboard(context.Background(), 2022)
		require.NoError(t, err)

		assert.Equal(t, "/2022/leaderboard/private/view/12345.json", gotPath)
		require.Len(t, members, 2)
		assert.Equal(t, "poe the potato pirate", members[0].Name)
		assert.Equal(t, int64(2), members[1].ID)
		require.Contains(t, members[1].CompletionDayLevel, "1")
		assert.Equal(t, int64(200), members[1].CompletionDayLevel["1"]["2"].GetStarTS)
	})

	t.Run("it treats a 404 as an empty leaderboard", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "12345", "sekrit")
		members, err := client.Leaderboard(context.Background(), 2015)
		require.NoError(t, err)
		assert.Empty(t, members)
	})

	t.Run("it surfaces any other HTTP failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "12345", "sekrit")
		_, err := client.Leaderboard(context.Background(), 2022)
		assert.Error(t, err)
	})

	t.Run("it surfaces a malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>please log in</html>"))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "12345", "sekrit")
		_, err := client.Leaderboard(context.Background(), 2022)
		assert.Error(t, err)
	})
}
