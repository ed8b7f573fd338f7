package command

import (
	"bufio"
	"errors"
	"strconv"
	"strings"
)

var (
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidArgument = errors.New("invalid argument")
)

// DefaultLimit is how many leaderboard rows are shown when the count
// argument is omitted.
const DefaultLimit = 20

// LeaderboardArgs carries the arguments to the leaderboard command. A
// Year of zero means the configured current year.
type LeaderboardArgs struct {
	Limit int
	Year  int
}

func (args *LeaderboardArgs) ParseArg(s string) error {
	scanner := bufio.NewScanner(strings.NewReader(s))
	scanner.Split(bufio.ScanWords)

	args.Limit = DefaultLimit
	if scanner.Scan() {
		limit, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return ErrInvalidArgument
		}
		args.Limit = limit
	}
	if scanner.Scan() {
		year, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return ErrInvalidArgument
		}
		args.Year = year
	}

	return scanner.Err()
}

// RankArgs carries the arguments to the rank command.
type RankArgs struct {
	Name string
	Year int
}

func (args *RankArgs) ParseArg(s string) error {
	scanner := bufio.NewScanner(strings.NewReader(s))
	scanner.Split(bufio.ScanWords)

	if ok := scanner.Scan(); !ok {
		if err := scanner.Err(); err != nil {
			return err
		}
		return ErrMissingArgument
	}
	args.Name = scanner.Text()

	if scanner.Scan() {
		year, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return ErrInvalidArgument
		}
		args.Year = year
	}

	return scanner.Err()
}

// KeenArgs carries no arguments; the keen command always works on the
// current year.
type KeenArgs struct{}

func (args *KeenArgs) ParseArg(s string) error {
	return nil
}

// DayArgs carries a day and year pair. An empty Day means the day
// whose puzzle most recently unlocked, resolved at call time.
type DayArgs struct {
	Day  string
	Year int
}

func (args *DayArgs) ParseArg(s string) error {
	scanner := bufio.NewScanner(strings.NewReader(s))
	scanner.Split(bufio.ScanWords)

	if scanner.Scan() {
		args.Day = scanner.Text()
	}
	if scanner.Scan() {
		year, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return ErrInvalidArgument
		}
		args.Year = year
	}

	return scanner.Err()
}

type DailyArgs struct {
	DayArgs
}

type StarsArgs struct {
	DayArgs
}
