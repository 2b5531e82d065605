package callbacks

import (
	"context"
	"time"

	"github.com/Freeeeeet/flightads_bot/internal/controller/keyboard"
	"github.com/Freeeeeet/flightads_bot/internal/controller/state"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// handleDaySelection обрабатывает выбор дня в календаре
func (h *Handler) handleDaySelection(ctx context.Context, callback *models.CallbackQuery) {
	telegramID := callback.From.ID
	h.answer(ctx, callback.ID, "")

	if h.states.GetState(telegramID) != state.StateSelectingDate {
		h.logger.Debug("Day callback outside of selecting_date, ignoring",
			zap.Int64("telegram_id", telegramID))
		return
	}

	flightDate, ok := keyboard.ParseDayToken(callback.Data)
	if !ok {
		h.logger.Error("Invalid day token",
			zap.String("data", callback.Data),
			zap.Int64("telegram_id", telegramID))
		return
	}

	h.states.SetFlightDate(telegramID, flightDate)
	h.states.SetState(telegramID, state.StateTypingDescription)

	h.logger.Info("Flight date saved, moving to description step",
		zap.Int64("telegram_id", telegramID),
		zap.String("flight_date", flightDate))

	msg := messageFromCallback(callback)
	if msg == nil {
		h.logger.Error("Failed to get message from callback",
			zap.Int64("telegram_id", telegramID))
		return
	}

	h.editText(ctx, msg, h.messages.FormatDateSelected(flightDate), nil)
	h.send(ctx, msg.Chat.ID, h.messages.PromptDescription, nil)
}

// handleCalendarNav перерисовывает календарь на месяц из токена.
// Серверного курсора нет — токен сам несёт целевые год и месяц.
func (h *Handler) handleCalendarNav(ctx context.Context, callback *models.CallbackQuery) {
	telegramID := callback.From.ID
	h.answer(ctx, callback.ID, "")

	if h.states.GetState(telegramID) != state.StateSelectingDate {
		h.logger.Debug("Nav callback outside of selecting_date, ignoring",
			zap.Int64("telegram_id", telegramID))
		return
	}

	year, month, ok := keyboard.ParseNavToken(callback.Data)
	if !ok {
		h.logger.Error("Invalid nav token",
			zap.String("data", callback.Data),
			zap.Int64("telegram_id", telegramID))
		return
	}

	msg := messageFromCallback(callback)
	if msg == nil {
		h.logger.Error("Failed to get message from callback",
			zap.Int64("telegram_id", telegramID))
		return
	}

	now := time.Now().In(h.location)
	markup := keyboard.Calendar(year, month, now)

	if err := h.gateway.EditMessageReplyMarkup(ctx, msg.Chat.ID, msg.ID, markup); err != nil {
		h.logger.Error("Failed to update calendar",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
	}
}
