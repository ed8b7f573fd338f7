package errors

import (
	"errors"
)

var (
	// ErrNoLeaderboard indicates the upstream has no leaderboard for the
	// requested year.
	ErrNoLeaderboard = errors.New("no leaderboard for that year")

	// ErrNoStars indicates the leaderboard exists but every row was
	// filtered out because no one has earned a star yet.
	ErrNoStars = errors.New("no stars earned yet")

	// ErrNoScores indicates no player has a completion for the requested
	// day.
	ErrNoScores = errors.New("no scores for that day")

	ErrPlayerNotFound = errors.New("player not found")
)
