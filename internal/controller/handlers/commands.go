package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/Freeeeeet/flightads_bot/internal/controller/keyboard"
	"github.com/Freeeeeet/flightads_bot/internal/formatting"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const myAdsLimit = 5

// HandleStart обрабатывает команду /start — начало диалога создания объявления.
// Любой незавершённый черновик при этом сбрасывается целиком.
func (h *Handlers) HandleStart(ctx context.Context, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID

	h.logger.Info("Starting ad dialog",
		zap.Int64("telegram_id", telegramID),
		zap.String("username", update.Message.From.Username))

	h.states.Reset(telegramID)

	markup := keyboard.RoleKeyboard(h.messages.ButtonPassenger, h.messages.ButtonCargo)
	h.send(ctx, update.Message.Chat.ID, h.messages.Welcome, markup)
}

// HandleCancel обрабатывает команду /cancel — отмена диалога из любого состояния.
// Команда идемпотентна: очистка отсутствующей сессии — no-op.
func (h *Handlers) HandleCancel(ctx context.Context, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID

	h.logger.Info("Cancelling ad dialog",
		zap.Int64("telegram_id", telegramID),
		zap.String("state", string(h.states.GetState(telegramID))))

	h.states.Clear(telegramID)
	h.send(ctx, update.Message.Chat.ID, h.messages.OperationCancelled, nil)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📚 Справка по командам:\n\n" +
		"/start - Создать объявление о перелёте\n" +
		"/myads - Мои последние объявления\n" +
		"/cancel - Отменить текущее объявление\n" +
		"/help - Показать эту справку\n\n" +
		"Бот пошагово соберёт данные объявления, покажет предпросмотр " +
		"и после подтверждения опубликует его в канал."

	h.send(ctx, update.Message.Chat.ID, helpText, nil)
}

// HandleMyAds обрабатывает команду /myads — последние объявления автора
func (h *Handlers) HandleMyAds(ctx context.Context, update *models.Update) {
	if update.Message == nil {
		return
	}

	author := formatting.AuthorName(update.Message.From.Username, update.Message.From.ID)

	ads, err := h.adService.ListByAuthor(ctx, author, myAdsLimit)
	if err != nil {
		h.logger.Error("Failed to list ads",
			zap.String("author", author),
			zap.Error(err))
		h.send(ctx, update.Message.Chat.ID, "❌ Не удалось загрузить объявления. Попробуйте позже.", nil)
		return
	}

	if len(ads) == 0 {
		h.send(ctx, update.Message.Chat.ID, "У вас пока нет объявлений. Создайте первое: /start", nil)
		return
	}

	var sb strings.Builder
	sb.WriteString("📋 Ваши последние объявления:\n")
	for _, ad := range ads {
		sb.WriteString(fmt.Sprintf("\n✈️ %s: %s → %s, %s\n%s\n",
			ad.Role, ad.Source, ad.Destination, ad.FlightDate, ad.Description))
	}

	h.send(ctx, update.Message.Chat.ID, sb.String(), nil)
}
