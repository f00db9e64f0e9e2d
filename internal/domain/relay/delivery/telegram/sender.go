// Package telegram contains the Telegram media sender
package telegram

import (
	"context"
	"io"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/zikky0001-droid/YT-DL/internal/domain/relay/deps"
)

// Sender sends media into chats through the Telegram Bot API.
// Implements deps.MediaSender.
type Sender struct {
	bot           *tgbot.Bot
	sendTimeout   time.Duration
	uploadTimeout time.Duration
	logger        zerolog.Logger
}

// NewSender creates a new Telegram media sender. Uploads get a longer
// timeout than remote-URL sends since the file bytes travel with the call.
func NewSender(bot *tgbot.Bot, sendTimeout, uploadTimeout time.Duration, logger zerolog.Logger) *Sender {
	return &Sender{
		bot:           bot,
		sendTimeout:   sendTimeout,
		uploadTimeout: uploadTimeout,
		logger:        logger.With().Str("component", "telegram-sender").Logger(),
	}
}

var _ deps.MediaSender = (*Sender)(nil)

// SendRemote sends the media URL by reference; Telegram fetches it server-side
func (s *Sender) SendRemote(ctx context.Context, chatID, mediaURL string, video bool, caption string) (interface{}, error) {
	msgCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	var (
		msg *models.Message
		err error
	)

	if video {
		msg, err = s.bot.SendVideo(msgCtx, &tgbot.SendVideoParams{
			ChatID:  chatID,
			Video:   &models.InputFileString{Data: mediaURL},
			Caption: caption,
		})
	} else {
		msg, err = s.bot.SendDocument(msgCtx, &tgbot.SendDocumentParams{
			ChatID:   chatID,
			Document: &models.InputFileString{Data: mediaURL},
			Caption:  caption,
		})
	}

	if err != nil {
		s.logger.Info().
			Str("chat_id", chatID).
			Bool("video", video).
			Err(err).
			Msg("Remote-URL send not accepted")
		return nil, err
	}

	s.logger.Info().
		Str("chat_id", chatID).
		Bool("video", video).
		Msg("Remote-URL send accepted")

	return msg, nil
}

// SendUpload sends the media as multipart bytes read from data
func (s *Sender) SendUpload(ctx context.Context, chatID, filename string, data io.Reader, video bool, caption string) (interface{}, error) {
	msgCtx, cancel := context.WithTimeout(ctx, s.uploadTimeout)
	defer cancel()

	var (
		msg *models.Message
		err error
	)

	if video {
		msg, err = s.bot.SendVideo(msgCtx, &tgbot.SendVideoParams{
			ChatID:  chatID,
			Video:   &models.InputFileUpload{Filename: filename, Data: data},
			Caption: caption,
		})
	} else {
		msg, err = s.bot.SendDocument(msgCtx, &tgbot.SendDocumentParams{
			ChatID:   chatID,
			Document: &models.InputFileUpload{Filename: filename, Data: data},
			Caption:  caption,
		})
	}

	if err != nil {
		s.logger.Error().
			Str("chat_id", chatID).
			Bool("video", video).
			Err(err).
			Msg("Upload send failed")
		return nil, err
	}

	s.logger.Info().
		Str("chat_id", chatID).
		Bool("video", video).
		Str("filename", filename).
		Msg("Upload send completed")

	return msg, nil
}
