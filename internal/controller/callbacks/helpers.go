package callbacks

import (
	"context"

	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// answer подтверждает callback query, чтобы у клиента пропал спиннер
func (h *Handler) answer(ctx context.Context, callbackID string, text string) {
	if err := h.gateway.AnswerCallbackQuery(ctx, callbackID, text, false); err != nil {
		h.logger.Warn("Failed to answer callback", zap.Error(err))
	}
}

// send отправляет сообщение и логирует ошибку транспорта
func (h *Handler) send(ctx context.Context, chatID int64, text string, markup models.ReplyMarkup) {
	if err := h.gateway.SendMessage(ctx, chatID, text, markup); err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

// editText редактирует текст сообщения и логирует ошибку транспорта
func (h *Handler) editText(ctx context.Context, msg *models.Message, text string, markup models.ReplyMarkup) {
	if err := h.gateway.EditMessageText(ctx, msg.Chat.ID, msg.ID, text, markup); err != nil {
		h.logger.Error("Failed to edit message",
			zap.Int64("chat_id", msg.Chat.ID),
			zap.Int("message_id", msg.ID),
			zap.Error(err))
	}
}

// messageFromCallback извлекает сообщение из callback query
func messageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}
