package handlers

import (
	"context"

	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// send отправляет сообщение и логирует ошибку транспорта.
// Ошибка отправки не меняет состояние диалога.
func (h *Handlers) send(ctx context.Context, chatID int64, text string, markup models.ReplyMarkup) {
	if err := h.gateway.SendMessage(ctx, chatID, text, markup); err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}
