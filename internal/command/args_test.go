package command

import (
	"errors"
	"testing"
)

func TestParseLeaderboardArgs(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLimit int
		wantYear  int
		wantErr   error
	}{
		{name: "defaults", input: "", wantLimit: DefaultLimit},
		{name: "limit only", input: " 10", wantLimit: 10},
		{name: "limit and year", input: " 5 2020", wantLimit: 5, wantYear: 2020},
		{name: "zero limit is allowed", input: " 0", wantLimit: 0},
		{name: "negative limit is allowed", input: " -3", wantLimit: -3},
		{name: "limit must be a number", input: " ten", wantErr: ErrInvalidArgument},
		{name: "year must be a number", input: " 10 twenty", wantErr: ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var args LeaderboardArgs

			err := args.ParseArg(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want err %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr != nil {
				return
			}

			if args.Limit != tt.wantLimit {
				t.Errorf("want limit %d, got %d", tt.wantLimit, args.Limit)
			}
			if args.Year != tt.wantYear {
				t.Errorf("want year %d, got %d", tt.wantYear, args.Year)
			}
		})
	}
}

func TestParseRankArgs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantYear int
		wantErr  error
	}{
		{name: "name only", input: " potato", wantName: "potato"},
		{name: "name and year", input: " potato 2021", wantName: "potato", wantYear: 2021},
		{name: "name is required", input: "", wantErr: ErrMissingArgument},
		{name: "year must be a number", input: " potato year", wantErr: ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var args RankArgs

			err := args.ParseArg(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want err %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr != nil {
				return
			}

			if args.Name != tt.wantName {
				t.Errorf("want name %q, got %q", tt.wantName, args.Name)
			}
			if args.Year != tt.wantYear {
				t.Errorf("want year %d, got %d", tt.wantYear, args.Year)
			}
		})
	}
}

func TestParseDayArgs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantDay  string
		wantYear int
		wantErr  error
	}{
		{name: "defaults", input: "", wantDay: ""},
		{name: "day only", input: " 4", wantDay: "4"},
		{name: "day and year", input: " 4 2020", wantDay: "4", wantYear: 2020},
		{name: "year must be a number", input: " 4 twenty", wantErr: ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var args DailyArgs

			err := args.ParseArg(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want err %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr != nil {
				return
			}

			if args.Day != tt.wantDay {
				t.Errorf("want day %q, got %q", tt.wantDay, args.Day)
			}
			if args.Year != tt.wantYear {
				t.Errorf("want year %d, got %d", tt.wantYear, args.Year)
			}
		})
	}
}
