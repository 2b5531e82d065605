package callbacks

import (
	"context"

	"github.com/Freeeeeet/flightads_bot/internal/controller/keyboard"
	"github.com/Freeeeeet/flightads_bot/internal/controller/state"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// handleRoleChoice обрабатывает выбор роли (пассажир / груз).
// В сессии сохраняется текст кнопки — он же попадёт в объявление.
func (h *Handler) handleRoleChoice(ctx context.Context, callback *models.CallbackQuery) {
	telegramID := callback.From.ID
	h.answer(ctx, callback.ID, "")

	if h.states.GetState(telegramID) != state.StateChoosingRole {
		h.logger.Debug("Role callback outside of choosing_role, ignoring",
			zap.Int64("telegram_id", telegramID))
		return
	}

	role := h.messages.ButtonPassenger
	if callback.Data == keyboard.RoleCargo {
		role = h.messages.ButtonCargo
	}

	h.states.SetRole(telegramID, role)
	h.states.SetState(telegramID, state.StateTypingSource)

	h.logger.Info("Role saved, moving to source step",
		zap.Int64("telegram_id", telegramID),
		zap.String("role", role))

	msg := messageFromCallback(callback)
	if msg == nil {
		h.logger.Error("Failed to get message from callback",
			zap.Int64("telegram_id", telegramID))
		return
	}

	h.editText(ctx, msg, h.messages.PromptSource, nil)
}
