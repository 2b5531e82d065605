package controller

import (
	"context"
	"time"

	"github.com/Freeeeeet/flightads_bot/internal/config"
	"github.com/Freeeeeet/flightads_bot/internal/controller/callbacks"
	"github.com/Freeeeeet/flightads_bot/internal/controller/gateway"
	"github.com/Freeeeeet/flightads_bot/internal/controller/handlers"
	"github.com/Freeeeeet/flightads_bot/internal/controller/state"
	"github.com/Freeeeeet/flightads_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	adService *service.AdService,
	messages *config.Messages,
	location *time.Location,
	logger *zap.Logger,
) *BotController {
	// Создаём менеджер сессий
	stateManager := state.NewManager()

	// Диалоговая логика ходит в Telegram через шлюз
	gw := gateway.NewTelegram(botInstance)

	cmdHandlers := handlers.NewHandlers(gw, adService, stateManager, messages, location, logger)
	callbackHandler := callbacks.NewHandler(gw, adService, stateManager, messages, location, logger)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	// Команды
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, adapt(c.handlers.HandleStart))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, adapt(c.handlers.HandleHelp))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/myads", bot.MatchTypeExact, adapt(c.handlers.HandleMyAds))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, adapt(c.handlers.HandleCancel))

	// Текстовые сообщения диалога
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, adapt(c.handlers.HandleTextMessage))

	// Нажатия inline кнопок
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix,
		func(ctx context.Context, _ *bot.Bot, update *models.Update) {
			if update.CallbackQuery != nil {
				c.callbackHandler.Route(ctx, update.CallbackQuery)
			}
		})

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "✈️ Создать объявление"},
		{Command: "myads", Description: "📋 Мои объявления"},
		{Command: "cancel", Description: "❌ Отменить объявление"},
		{Command: "help", Description: "❓ Справка"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота
func (c *BotController) Start(ctx context.Context) {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
}

// adapt приводит обработчик к сигнатуре bot.HandlerFunc
func adapt(fn func(ctx context.Context, update *models.Update)) bot.HandlerFunc {
	return func(ctx context.Context, _ *bot.Bot, update *models.Update) {
		fn(ctx, update)
	}
}
