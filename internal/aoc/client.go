// Package aoc is a minimal client for the Advent of Code private
// leaderboard JSON endpoint.
package aoc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
)

// BaseURL is the production Advent of Code endpoint.
const BaseURL = "https://adventofcode.com"

// userAgent identifies this bot to the Advent of Code maintainers, per
// their API etiquette.
const userAgent = "github.com/RogerGabeller-ml/advent-of-code-bot"

// Member is one leaderboard member as serialized by the upstream API.
type Member struct {
	ID                 int64                                `json:"id"`
	Name               string                               `json:"name"`
	LocalScore         int                                  `json:"local_score"`
	Stars              int                                  `json:"stars"`
	LastStarTS         int64                                `json:"last_star_ts"`
	CompletionDayLevel map[string]map[string]StarCompletion `json:"completion_day_level"`
}

// StarCompletion records when a member earned one star of one day's
// puzzle.
type StarCompletion struct {
	GetStarTS int64 `json:"get_star_ts"`
}

type leaderboardResponse struct {
	Event   string            `json:"event"`
	OwnerID int64             `json:"owner_id"`
	Members map[string]Member `json:"members"`
}

type Client struct {
	client        http.Client
	baseURL       string
	leaderboardID string
	session       string
}

func NewClient(baseURL, leaderboardID, sessionCookie string) *Client {
	return &Client{
		baseURL:       baseURL,
		leaderboardID: leaderboardID,
		session:       sessionCookie,
	}
}

// Leaderboard fetches the raw member entries for the given year. A 404
// means the leaderboard does not exist yet for that year and yields an
// empty result; any other failure is returned as an error.
//
// Advent of Code asks that this endpoint is polled at most once every
// 15 minutes; rate limiting is the caller's responsibility.
func (c *Client) Leaderboard(ctx context.Context, year int) ([]Member, error) {
	url := fmt.Sprintf("%s/%d/leaderboard/private/view/%s.json", c.baseURL, year, c.leaderboardID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: c.session})
	req.Header.Set("User-Agent", userAgent)

	rsp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer rsp.Body.Close()

	if rsp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if rsp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("leaderboard request failed: %s", rsp.Status)
	}

	var lb leaderboardResponse
	if err := json.NewDecoder(rsp.Body).Decode(&lb); err != nil {
		return nil, fmt.Errorf("failed to decode leaderboard: %w", err)
	}

	members := make([]Member, 0, len(lb.Members))
	for _, m := range lb.Members {
		members = append(members, m)
	}

	// The members arrive as a JSON object, so impose a stable order
	// before handing them to the caller.
	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })

	return members, nil
}
