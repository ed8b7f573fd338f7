package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	errs "github.com/RogerGabeller-ml/advent-of-code-bot/errors"
	"github.com/RogerGabeller-ml/advent-of-code-bot/internal/command"
	"github.com/RogerGabeller-ml/advent-of-code-bot/internal/discord"
	"github.com/RogerGabeller-ml/advent-of-code-bot/internal/leaderboard"
	"github.com/RogerGabeller-ml/advent-of-code-bot/internal/table"
)

var log = logrus.StandardLogger().WithFields(logrus.Fields{
	"component": "bot",
})

const fetchFailedMessage = "Whoops, I couldn't reach Advent of Code, please try again in a bit"

type Boards interface {
	Overall(ctx context.Context, limit, year int) ([]leaderboard.Row, error)
	PlayerRank(ctx context.Context, name string, year int) (leaderboard.Row, error)
	KeenestBean(ctx context.Context) (leaderboard.Row, error)
	Daily(ctx context.Context, day string, year int) ([]leaderboard.Row, error)
	StarTimeline(ctx context.Context, day string, year int) ([]leaderboard.Row, error)
	CurrentYear() int
	DefaultDay() string
}

type Discord interface {
	SendMessageToChannel(channelID string, msg string) error
}

type CommandRouter interface {
	Route(s string) (args command.ArgParser, remainder string)
}

type Bot struct {
	boards  Boards
	discord Discord
	router  CommandRouter

	// channel gates commands: only channels whose name contains this
	// substring are served.
	channel string
}

func New(boards Boards, discord Discord, router CommandRouter, channelName string) *Bot {
	return &Bot{
		boards:  boards,
		discord: discord,
		router:  router,
		channel: channelName,
	}
}

func (b *Bot) Listen(ctx context.Context, messages <-chan discord.Message) error {
	log.Info("ready to process Discord messages")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}

			cmd, remainder := b.router.Route(msg.Content)
			if cmd == nil {
				continue
			}
			if !strings.Contains(msg.ChannelName, b.channel) {
				continue
			}

			switch c := cmd.(type) {
			case *command.LeaderboardArgs:
				b.handleLeaderboard(ctx, c, msg, remainder)

			case *command.RankArgs:
				b.handleRank(ctx, c, msg, remainder)

			case *command.KeenArgs:
				b.handleKeen(ctx, msg)

			case *command.DailyArgs:
				b.handleDaily(ctx, c, msg, remainder)

			case *command.StarsArgs:
				b.handleStars(ctx, c, msg, remainder)
			}
		}
	}
}

func (b *Bot) handleLeaderboard(ctx context.Context, args *command.LeaderboardArgs, msg discord.Message, content string) {
	logger := log.WithFields(logrus.Fields{
		"channel_id": msg.ChannelID,
		"content":    content,
		"handler":    "leaderboard",
	})

	err := args.ParseArg(content)
	if errors.Is(err, command.ErrInvalidArgument) {
		b.send(logger, msg.ChannelID, "The number of players and the year must be numbers")
		return
	}
	if err != nil {
		logger.WithError(err).Error("unexpected error from arg parser")
		return
	}
	if args.Limit < 1 {
		return
	}

	year := b.year(args.Year)
	rows, err := b.boards.Overall(ctx, args.Limit, year)
	switch {
	case errors.Is(err, errs.ErrNoLeaderboard):
		b.send(logger, msg.ChannelID, codeBlock(fmt.Sprintf("Could not find a leaderboard for %d", year)))
		return
	case errors.Is(err, errs.ErrNoStars):
		b.send(logger, msg.ChannelID, codeBlock(fmt.Sprintf("No one has completed any stars yet for %d", year)))
		return
	case err != nil:
		logger.WithError(err).Error("leaderboard lookup failed")
		b.send(logger, msg.ChannelID, fetchFailedMessage)
		return
	}

	b.sendBlocks(logger, msg.ChannelID, table.Render(fmt.Sprintf("Leaderboard for %d:\n", year), rows))
}

func (b *Bot) handleRank(ctx context.Context, args *command.RankArgs, msg discord.Message, content string) {
	logger := log.WithFields(logrus.Fields{
		"channel_id": msg.ChannelID,
		"content":    content,
		"handler":    "rank",
	})

	err := args.ParseArg(content)
	if errors.Is(err, command.ErrMissingArgument) || errors.Is(err, command.ErrInvalidArgument) {
		b.send(logger, msg.ChannelID, "Tell me whose rank you want, like `!rank <player> [year]`")
		return
	}
	if err != nil {
		logger.WithError(err).Error("unexpected error from arg parser")
		return
	}

	row, err := b.boards.PlayerRank(ctx, args.Name, b.year(args.Year))
	switch {
	case errors.Is(err, errs.ErrPlayerNotFound):
		b.send(logger, msg.ChannelID, "Whoops, it looks like I can't find that player, are you sure they're playing?")
		return
	case err != nil:
		logger.WithError(err).Error("rank lookup failed")
		b.send(logger, msg.ChannelID, fetchFailedMessage)
		return
	}

	b.sendBlocks(logger, msg.ChannelID, table.Render("", []leaderboard.Row{row}))
}

func (b *Bot) handleKeen(ctx context.Context, msg discord.Message) {
	logger := log.WithFields(logrus.Fields{
		"channel_id": msg.ChannelID,
		"handler":    "keen",
	})

	row, err := b.boards.KeenestBean(ctx)
	switch {
	case errors.Is(err, errs.ErrNoLeaderboard):
		b.send(logger, msg.ChannelID, codeBlock(fmt.Sprintf("Could not find a leaderboard for %d", b.boards.CurrentYear())))
		return
	case err != nil:
		logger.WithError(err).Error("keenest bean lookup failed")
		b.send(logger, msg.ChannelID, fetchFailedMessage)
		return
	}

	b.sendBlocks(logger, msg.ChannelID, table.Render("Today's keenest bean is:\n", []leaderboard.Row{row}))
}

func (b *Bot) handleDaily(ctx context.Context, args *command.DailyArgs, msg discord.Message, content string) {
	logger := log.WithFields(logrus.Fields{
		"channel_id": msg.ChannelID,
		"content":    content,
		"handler":    "daily",
	})

	err := args.ParseArg(content)
	if errors.Is(err, command.ErrInvalidArgument) {
		b.send(logger, msg.ChannelID, "The year must be a number")
		return
	}
	if err != nil {
		logger.WithError(err).Error("unexpected error from arg parser")
		return
	}

	day := args.Day
	if day == "" {
		day = b.boards.DefaultDay()
	}

	year := b.year(args.Year)
	rows, err := b.boards.Daily(ctx, day, year)
	switch {
	case errors.Is(err, errs.ErrNoScores):
		b.send(logger, msg.ChannelID, codeBlock("No Scores for this day yet"))
		return
	case err != nil:
		logger.WithError(err).Error("daily leaderboard lookup failed")
		b.send(logger, msg.ChannelID, fetchFailedMessage)
		return
	}

	b.sendBlocks(logger, msg.ChannelID, table.Render(fmt.Sprintf("Leaderboard for %d, day %s:\n", year, day), rows))
}

func (b *Bot) handleStars(ctx context.Context, args *command.StarsArgs, msg discord.Message, content string) {
	logger := log.WithFields(logrus.Fields{
		"channel_id": msg.ChannelID,
		"content":    content,
		"handler":    "stars",
	})

	err := args.ParseArg(content)
	if errors.Is(err, command.ErrInvalidArgument) {
		b.send(logger, msg.ChannelID, "The year must be a number")
		return
	}
	if err != nil {
		logger.WithError(err).Error("unexpected error from arg parser")
		return
	}

	day := args.Day
	if day == "" {
		day = b.boards.DefaultDay()
	}

	year := b.year(args.Year)
	rows, err := b.boards.StarTimeline(ctx, day, year)
	switch {
	case errors.Is(err, errs.ErrNoScores):
		b.send(logger, msg.ChannelID, codeBlock("No Scores for this day yet"))
		return
	case err != nil:
		logger.WithError(err).Error("star timeline lookup failed")
		b.send(logger, msg.ChannelID, fetchFailedMessage)
		return
	}

	b.sendBlocks(logger, msg.ChannelID, table.Render(fmt.Sprintf("Stars for day %s, %d:\n", day, year), rows))
}

func (b *Bot) year(year int) int {
	if year == 0 {
		return b.boards.CurrentYear()
	}
	return year
}

func (b *Bot) send(logger *logrus.Entry, channelID, msg string) {
	if err := b.discord.SendMessageToChannel(channelID, msg); err != nil {
		logger.WithError(err).Error("failed to send message to Discord channel")
	}
}

func (b *Bot) sendBlocks(logger *logrus.Entry, channelID string, blocks []string) {
	for _, block := range blocks {
		b.send(logger, channelID, codeBlock(block))
	}
}

func codeBlock(s string) string {
	return "```" + s + "```"
}
