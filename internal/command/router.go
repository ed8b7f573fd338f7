package command

import "regexp"

type ArgParser interface {
	ParseArg(s string) error
}

type ArgConstructor func() ArgParser

type Router struct {
	prefix   string
	handlers map[*regexp.Regexp]ArgConstructor
}

func NewRouter(prefix string) *Router {
	r := Router{
		prefix:   prefix,
		handlers: make(map[*regexp.Regexp]ArgConstructor),
	}

	handlers := map[string]ArgConstructor{
		"leaderboard": func() ArgParser { return new(LeaderboardArgs) },
		"rank":        func() ArgParser { return new(RankArgs) },
		"keen":        func() ArgParser { return new(KeenArgs) },
		"daily":       func() ArgParser { return new(DailyArgs) },
		"stars":       func() ArgParser { return new(StarsArgs) },
	}

	// install handlers
	// a command must start with the prefix immediately followed by its name
	head := `^` + regexp.QuoteMeta(r.prefix)
	for cmd, ctor := range handlers {
		r.handlers[regexp.MustCompile(head+cmd+`\b`)] = ctor
	}

	return &r
}

// Route matches a message against the installed commands, returning
// the command's arg parser and the message with the command stripped.
// Messages that match no command return a nil parser and are ignored
// by the caller.
func (r *Router) Route(s string) (args ArgParser, remainder string) {
	for matcher, action := range r.handlers {
		if matched := matcher.ReplaceAllString(s, ""); matched != s {
			return action(), matched
		}
	}

	return nil, s
}
