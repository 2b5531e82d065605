package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Freeeeeet/flightads_bot/internal/app"
	"github.com/Freeeeeet/flightads_bot/internal/config"
	"github.com/Freeeeeet/flightads_bot/internal/controller"
	"github.com/Freeeeeet/flightads_bot/internal/repository"
	"github.com/Freeeeeet/flightads_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// База данных
	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	// Тексты и шаблоны загружаются один раз при старте
	messages, err := config.LoadMessages(cfg.MessagesPath)
	if err != nil {
		logger.Fatal("Failed to load messages", zap.Error(err))
	}

	templates, err := config.LoadTemplates(cfg.PreviewTemplatePath, cfg.MessageTemplatePath)
	if err != nil {
		logger.Fatal("Failed to load templates", zap.Error(err))
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Fatal("Failed to load timezone", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}

	// Telegram
	b, err := bot.New(cfg.BotToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	adRepo := repository.NewAdRepository(pool)
	publisher := service.NewTelegramPublisher(b)
	adService := service.NewAdService(adRepo, publisher, templates, cfg.ChannelID, logger)

	botController := controller.NewBotController(b, adService, messages, location, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	logger.Info("Bot started, polling for updates...",
		zap.String("environment", cfg.Environment),
		zap.String("channel_id", cfg.ChannelID),
		zap.String("timezone", cfg.Timezone))

	botController.Start(ctx)

	logger.Info("Bot stopped")
}
