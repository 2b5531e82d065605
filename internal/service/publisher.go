package service

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Publisher публикует готовый текст объявления во внешний канал
type Publisher interface {
	Publish(ctx context.Context, channelID string, text string) error
}

// TelegramPublisher отправляет объявления в Telegram-канал.
// Текст должен быть уже экранирован под MarkdownV2.
type TelegramPublisher struct {
	bot *bot.Bot
}

func NewTelegramPublisher(b *bot.Bot) *TelegramPublisher {
	return &TelegramPublisher{bot: b}
}

// Publish отправляет текст в канал. channelID — "@channel" или числовой chat id текстом
func (p *TelegramPublisher) Publish(ctx context.Context, channelID string, text string) error {
	_, err := p.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    channelID,
		Text:      text,
		ParseMode: models.ParseModeMarkdown,
	})
	if err != nil {
		return fmt.Errorf("send to channel: %w", err)
	}

	return nil
}
