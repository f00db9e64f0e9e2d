// Package telegram contains Telegram bot infrastructure
package telegram

import (
	"fmt"

	tgbot "github.com/go-telegram/bot"
	"github.com/rs/zerolog"
)

// Bot wraps the Telegram bot for infrastructure layer
type Bot struct {
	bot    *tgbot.Bot
	logger zerolog.Logger
}

// NewBot creates a new Telegram bot wrapper.
// The relay only sends messages, so getMe is skipped and no update
// polling is started.
func NewBot(token string, logger zerolog.Logger) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram token is required")
	}

	opts := []tgbot.Option{
		tgbot.WithSkipGetMe(),
	}

	bot, err := tgbot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	logger.Info().Msg("Telegram bot created successfully")

	return &Bot{
		bot:    bot,
		logger: logger,
	}, nil
}

// Raw returns the underlying telegram bot for send operations
func (b *Bot) Raw() *tgbot.Bot {
	return b.bot
}
