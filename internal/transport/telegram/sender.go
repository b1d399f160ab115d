package telegram

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/nepse-digest/internal/modules/digest/domain"
	"github.com/samber/oops"
)

// Client is the part of the Bot API the sender uses. *bot.Bot implements it.
type Client interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// Sender posts message chunks to one chat
type Sender struct {
	client Client
	chatID string
}

// New creates a new Telegram sender
func New(client Client, chatID string) *Sender {
	return &Sender{
		client: client,
		chatID: chatID,
	}
}

// NewBot creates a Bot API client without calling getMe, so nothing is
// requested until the first message is sent.
func NewBot(token, apiURL string) (*bot.Bot, error) {
	opts := []bot.Option{
		bot.WithSkipGetMe(),
	}
	if apiURL != "" {
		opts = append(opts, bot.WithServerURL(apiURL))
	}

	b, err := bot.New(token, opts...)
	if err != nil {
		return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
	}
	return b, nil
}

// Send posts chunks in order as HTML with link previews disabled.
// A failed chunk is logged and the remaining chunks are still sent.
func (s *Sender) Send(ctx context.Context, chunks []string) domain.SendReport {
	var report domain.SendReport
	disablePreview := true

	for i, part := range chunks {
		_, err := s.client.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    s.chatID,
			Text:      part,
			ParseMode: models.ParseModeHTML,
			LinkPreviewOptions: &models.LinkPreviewOptions{
				IsDisabled: &disablePreview,
			},
		})
		if err != nil {
			slog.Error("Failed to send part", "part", i+1, "total", len(chunks), "chat_id", s.chatID, "error", err)
			report.Failed++
			continue
		}

		slog.Info("Sent part", "part", i+1, "total", len(chunks))
		report.Sent++
	}

	return report
}
