package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/flightads_bot/internal/controller/keyboard"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Route распределяет callback query по обработчикам.
// Нажатие, не подходящее текущему состоянию пользователя (устаревшая
// или повторно отправленная кнопка), подтверждается и игнорируется —
// состояние диалога оно не продвигает.
func (h *Handler) Route(ctx context.Context, callback *models.CallbackQuery) {
	data := callback.Data

	h.logger.Info("Routing callback",
		zap.String("data", data),
		zap.Int64("telegram_id", callback.From.ID))

	switch {
	case data == keyboard.RolePassenger || data == keyboard.RoleCargo:
		h.handleRoleChoice(ctx, callback)

	case strings.HasPrefix(data, keyboard.DayTokenPrefix):
		h.handleDaySelection(ctx, callback)

	case keyboard.IsNavToken(data):
		h.handleCalendarNav(ctx, callback)

	case data == keyboard.TokenIgnore:
		// Заголовок, день недели или пустая клетка календаря
		h.answer(ctx, callback.ID, "")

	case data == keyboard.ConfirmYes || data == keyboard.ConfirmNo:
		h.handleConfirmation(ctx, callback)

	default:
		h.logger.Debug("Unknown callback, ignoring",
			zap.String("data", data),
			zap.Int64("telegram_id", callback.From.ID))
		h.answer(ctx, callback.ID, "")
	}
}
