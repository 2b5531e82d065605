package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/Freeeeeet/flightads_bot/internal/controller/keyboard"
	"github.com/Freeeeeet/flightads_bot/internal/controller/state"
	"github.com/Freeeeeet/flightads_bot/internal/formatting"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleTextMessage обрабатывает свободный текст в зависимости от шага диалога.
// Вне активного диалога и на шагах, ждущих нажатия кнопки, текст игнорируется.
func (h *Handlers) HandleTextMessage(ctx context.Context, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Команды обрабатываются своими handlers
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.states.GetState(telegramID)

	h.logger.Info("HandleTextMessage called",
		zap.Int64("telegram_id", telegramID),
		zap.String("state", string(currentState)))

	switch currentState {
	case state.StateTypingSource:
		h.handleSourceStep(ctx, update)
	case state.StateTypingDestination:
		h.handleDestinationStep(ctx, update)
	case state.StateTypingDescription:
		h.handleDescriptionStep(ctx, update)
	default:
		h.logger.Debug("No text step for current state, ignoring message",
			zap.Int64("telegram_id", telegramID),
			zap.String("state", string(currentState)))
	}
}

// handleSourceStep обрабатывает ввод пункта отправления
func (h *Handlers) handleSourceStep(ctx context.Context, update *models.Update) {
	telegramID := update.Message.From.ID
	source := strings.TrimSpace(update.Message.Text)

	if source == "" {
		h.send(ctx, update.Message.Chat.ID, h.messages.InvalidSource, nil)
		return
	}

	h.states.SetSource(telegramID, source)
	h.states.SetState(telegramID, state.StateTypingDestination)

	h.logger.Info("Source saved, moving to destination step",
		zap.Int64("telegram_id", telegramID),
		zap.String("source", source))

	h.send(ctx, update.Message.Chat.ID, h.messages.PromptDestination, nil)
}

// handleDestinationStep обрабатывает ввод пункта назначения
// и показывает календарь текущего месяца
func (h *Handlers) handleDestinationStep(ctx context.Context, update *models.Update) {
	telegramID := update.Message.From.ID
	destination := strings.TrimSpace(update.Message.Text)

	if destination == "" {
		h.send(ctx, update.Message.Chat.ID, h.messages.InvalidDestination, nil)
		return
	}

	h.states.SetDestination(telegramID, destination)
	h.states.SetState(telegramID, state.StateSelectingDate)

	h.logger.Info("Destination saved, showing calendar",
		zap.Int64("telegram_id", telegramID),
		zap.String("destination", destination))

	now := time.Now().In(h.location)

	h.send(ctx, update.Message.Chat.ID, h.messages.PromptCalendar, nil)
	h.send(ctx, update.Message.Chat.ID, h.messages.CalendarLabel,
		keyboard.Calendar(now.Year(), now.Month(), now))
}

// handleDescriptionStep обрабатывает ввод описания и показывает предпросмотр
func (h *Handlers) handleDescriptionStep(ctx context.Context, update *models.Update) {
	telegramID := update.Message.From.ID
	description := strings.TrimSpace(update.Message.Text)

	if description == "" {
		h.send(ctx, update.Message.Chat.ID, h.messages.InvalidDescription, nil)
		return
	}

	h.states.SetDescription(telegramID, description)

	session := h.states.Get(telegramID)
	author := formatting.AuthorName(update.Message.From.Username, update.Message.From.ID)

	preview, err := h.adService.Preview(session.Fields(author))
	if err != nil {
		// Сюда можно попасть только при нарушении порядка шагов — это баг, а не ввод
		h.logger.Error("Ad draft is incomplete at preview",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		h.send(ctx, update.Message.Chat.ID, "❌ Внутренняя ошибка. Начните заново: /start", nil)
		return
	}

	h.states.SetState(telegramID, state.StateConfirmation)

	h.logger.Info("Description saved, showing preview",
		zap.Int64("telegram_id", telegramID),
		zap.String("author", author))

	markup := keyboard.ConfirmKeyboard(h.messages.ButtonYes, h.messages.ButtonNo)
	h.send(ctx, update.Message.Chat.ID, preview, markup)
}
