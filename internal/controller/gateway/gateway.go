package gateway

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Messenger — транспортный шлюз для диалоговой логики.
// Обработчики зависят от него, а не от *bot.Bot напрямую,
// поэтому машина состояний тестируется без Telegram.
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string, markup models.ReplyMarkup) error
	EditMessageText(ctx context.Context, chatID int64, messageID int, text string, markup models.ReplyMarkup) error
	EditMessageReplyMarkup(ctx context.Context, chatID int64, messageID int, markup models.ReplyMarkup) error
	AnswerCallbackQuery(ctx context.Context, callbackID string, text string, showAlert bool) error
}

// Telegram реализует Messenger поверх go-telegram/bot
type Telegram struct {
	bot *bot.Bot
}

func NewTelegram(b *bot.Bot) *Telegram {
	return &Telegram{bot: b}
}

func (t *Telegram) SendMessage(ctx context.Context, chatID int64, text string, markup models.ReplyMarkup) error {
	_, err := t.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: markup,
	})
	return err
}

func (t *Telegram) EditMessageText(ctx context.Context, chatID int64, messageID int, text string, markup models.ReplyMarkup) error {
	_, err := t.bot.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      chatID,
		MessageID:   messageID,
		Text:        text,
		ReplyMarkup: markup,
	})
	return err
}

func (t *Telegram) EditMessageReplyMarkup(ctx context.Context, chatID int64, messageID int, markup models.ReplyMarkup) error {
	_, err := t.bot.EditMessageReplyMarkup(ctx, &bot.EditMessageReplyMarkupParams{
		ChatID:      chatID,
		MessageID:   messageID,
		ReplyMarkup: markup,
	})
	return err
}

func (t *Telegram) AnswerCallbackQuery(ctx context.Context, callbackID string, text string, showAlert bool) error {
	_, err := t.bot.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       showAlert,
	})
	return err
}
