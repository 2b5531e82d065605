package callbacks

import (
	"context"
	"errors"

	"github.com/Freeeeeet/flightads_bot/internal/controller/keyboard"
	"github.com/Freeeeeet/flightads_bot/internal/controller/state"
	"github.com/Freeeeeet/flightads_bot/internal/formatting"
	"github.com/Freeeeeet/flightads_bot/internal/service"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// handleConfirmation обрабатывает ответ пользователя на предпросмотр объявления
func (h *Handler) handleConfirmation(ctx context.Context, callback *models.CallbackQuery) {
	telegramID := callback.From.ID
	h.answer(ctx, callback.ID, "")

	if h.states.GetState(telegramID) != state.StateConfirmation {
		h.logger.Debug("Confirm callback outside of confirmation, ignoring",
			zap.Int64("telegram_id", telegramID))
		return
	}

	msg := messageFromCallback(callback)
	if msg == nil {
		h.logger.Error("Failed to get message from callback",
			zap.Int64("telegram_id", telegramID))
		return
	}

	if callback.Data == keyboard.ConfirmNo {
		h.states.Clear(telegramID)

		h.logger.Info("Ad declined at preview",
			zap.Int64("telegram_id", telegramID))

		h.editText(ctx, msg, h.messages.CancelledNoSend, nil)
		return
	}

	// Автора резолвим в момент подтверждения: если username сменился
	// между предпросмотром и подтверждением, публикуется актуальный
	session := h.states.Get(telegramID)
	author := formatting.AuthorName(callback.From.Username, callback.From.ID)

	ad, err := h.adService.Publish(ctx, session.Fields(author))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStorage), errors.Is(err, service.ErrPublish):
			// Сессию не трогаем: данные не потеряны, подтверждение можно повторить
			h.logger.Error("Failed to publish ad",
				zap.Int64("telegram_id", telegramID),
				zap.Error(err))
			h.send(ctx, msg.Chat.ID,
				"❌ Не удалось опубликовать объявление. Попробуйте подтвердить ещё раз.", nil)
		default:
			// Неполный черновик в confirmation — нарушение контракта машины состояний
			h.logger.Error("Ad draft is incomplete at confirmation",
				zap.Int64("telegram_id", telegramID),
				zap.Error(err))
			h.send(ctx, msg.Chat.ID, "❌ Внутренняя ошибка. Начните заново: /start", nil)
		}
		return
	}

	h.states.Clear(telegramID)

	h.logger.Info("Ad confirmed and published",
		zap.Int64("telegram_id", telegramID),
		zap.Int64("ad_id", ad.ID))

	h.editText(ctx, msg, h.messages.SuccessPosted, nil)
}
