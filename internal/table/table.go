// Package table renders ranked rows as fixed-width text blocks sized
// to fit inside a single chat message.
package table

import (
	"fmt"
	"time"

	"github.com/RogerGabeller-ml/advent-of-code-bot/internal/leaderboard"
)

// MaxBlockLen is the Discord message limit less the six backticks a
// code block costs.
const MaxBlockLen = 2000 - 6

// Render formats the rows as aligned lines and packs them, preceded by
// the title, into blocks of at most MaxBlockLen characters. The final
// block is always emitted, even when empty.
func Render(title string, rows []leaderboard.Row) []string {
	return render(title, rows, MaxBlockLen)
}

func render(title string, rows []leaderboard.Row, budget int) []string {
	var blocks []string

	block := title
	for _, line := range Lines(rows) {
		if len(block)+len(line) > budget {
			blocks = append(blocks, block)
			block = ""
		}
		block += line
	}

	return append(blocks, block)
}

// Lines formats one line per row, padding the name, points, and stars
// columns to the widest value in the batch.
func Lines(rows []leaderboard.Row) []string {
	var namePad, pointsPad, starsPad int
	for _, r := range rows {
		namePad = max(namePad, len(r.Name))
		pointsPad = max(pointsPad, len(fmt.Sprint(r.Score)))
		starsPad = max(starsPad, len(fmt.Sprint(r.Stars)))
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%2d) %-*s (%*d) %*d* (%s)\n",
			r.Rank, namePad, r.Name, pointsPad, r.Score, starsPad, r.Stars, starTime(r.TS)))
	}

	return lines
}

func starTime(ts int64) string {
	return time.Unix(ts, 0).Format("15:04 02/01")
}
