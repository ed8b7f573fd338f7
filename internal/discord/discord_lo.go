package discord

import (
	"github.com/RogerGabeller-ml/advent-of-code-bot/internal/env"
)

func tokenFromEnv(f func(key string) (val string)) (Token, error) {
	token, err := env.Get("AOCBOT_DISCORD_TOKEN", f)
	if err != nil {
		return "", err
	}

	return Token(token), err
}
