// Package publish delivers rendered newsletters to a Telegram channel.
package publish

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/fieldside/loanwatch/internal/platform/observability"
)

// telegramMessageLimit is the hard cap Telegram enforces per message.
const telegramMessageLimit = 4096

// Sender is the subset of the bot API the publisher uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Publisher posts newsletter markdown to a channel, splitting long
// issues across multiple messages.
type Publisher struct {
	bot    Sender
	chatID int64
	logger zerolog.Logger
}

func New(botToken string, chatID int64, logger zerolog.Logger) (*Publisher, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	return NewWithSender(bot, chatID, logger), nil
}

func NewWithSender(bot Sender, chatID int64, logger zerolog.Logger) *Publisher {
	return &Publisher{
		bot:    bot,
		chatID: chatID,
		logger: logger.With().Str("component", "publisher").Logger(),
	}
}

// Publish sends the markdown as one or more messages. Delivery stops at
// the first failed chunk so a retry never reposts the whole issue out of
// order.
func (p *Publisher) Publish(ctx context.Context, markdown string) error {
	chunks := SplitMessage(markdown, telegramMessageLimit)

	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return err
		}

		msg := tgbotapi.NewMessage(p.chatID, chunk)
		msg.ParseMode = tgbotapi.ModeMarkdown
		msg.DisableWebPagePreview = true

		if _, err := p.bot.Send(msg); err != nil {
			observability.Publishes.WithLabelValues(observability.OutcomeError).Inc()

			return fmt.Errorf("send chunk %d/%d: %w", i+1, len(chunks), err)
		}
	}

	observability.Publishes.WithLabelValues(observability.OutcomeOK).Inc()
	p.logger.Info().Int("chunks", len(chunks)).Msg("newsletter published")

	return nil
}
