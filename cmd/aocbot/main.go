package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-co-op/gocron/v2"
	dotenv "github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"

	"github.com/RogerGabeller-ml/advent-of-code-bot/internal/aoc"
	"github.com/RogerGabeller-ml/advent-of-code-bot/internal/bot"
	"github.com/RogerGabeller-ml/advent-of-code-bot/internal/command"
	"github.com/RogerGabeller-ml/advent-of-code-bot/internal/discord"
	"github.com/RogerGabeller-ml/advent-of-code-bot/internal/env"
	"github.com/RogerGabeller-ml/advent-of-code-bot/internal/leaderboard"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT)
	defer cancel()

	if err := run(ctx); err != nil {
		log.WithError(err).Error("shutting down")
	}
}

func run(ctx context.Context) error {
	if err := dotenv.Load(); err != nil {
		log.WithError(err).Warn("no .env file loaded")
	}

	leaderboardID, err := env.Get("AOC_LEADERBOARD_ID", os.Getenv)
	if err != nil {
		return fmt.Errorf("AOC_LEADERBOARD_ID: %w", err)
	}
	sessionCookie, err := env.Get("AOC_SESSION_COOKIE", os.Getenv)
	if err != nil {
		return fmt.Errorf("AOC_SESSION_COOKIE: %w", err)
	}
	currentYear, err := env.GetInt("AOCBOT_CURRENT_YEAR", os.Getenv)
	if err != nil {
		return fmt.Errorf("AOCBOT_CURRENT_YEAR: %w", err)
	}
	channelName, err := env.Get("AOCBOT_CHANNEL_NAME", os.Getenv)
	if err != nil {
		return fmt.Errorf("AOCBOT_CHANNEL_NAME: %w", err)
	}
	token, err := discord.TokenFromEnv()
	if err != nil {
		return fmt.Errorf("AOCBOT_DISCORD_TOKEN: %w", err)
	}

	clock := clockwork.NewRealClock()
	client := aoc.NewClient(aoc.BaseURL, leaderboardID, sessionCookie)
	cache := leaderboard.NewCache(client.Leaderboard, clock)
	boards := leaderboard.NewService(cache, clock, currentYear)

	session, cleanup, err := discord.NewSession(discord.NewDialer(token))
	if err != nil {
		return err
	}
	defer cleanup()
	log.Info("connected to Discord")

	if port, err := env.Get("AOCBOT_HEALTH_PORT", os.Getenv); err == nil {
		go healthMonitor(session, port)
	}

	if refresh, _ := env.Get("AOCBOT_AUTO_REFRESH", os.Getenv); refresh == "on" || refresh == "yes" {
		scheduler, err := gocron.NewScheduler(gocron.WithClock(clock))
		if err != nil {
			return err
		}
		_, err = scheduler.NewJob(
			gocron.DurationJob(leaderboard.PollInterval),
			gocron.NewTask(func() {
				// Cache-gated, so the upstream still sees at most one
				// fetch per poll interval.
				if _, err := cache.Players(ctx, currentYear); err != nil {
					log.WithError(err).Error("background leaderboard refresh failed")
				}
			}),
		)
		if err != nil {
			return err
		}
		scheduler.Start()
		defer func() { _ = scheduler.Shutdown() }()
		log.Info("background leaderboard refresh enabled")
	}

	b := bot.New(boards, session, command.NewRouter("!"), channelName)
	return b.Listen(ctx, session.Messages())
}
