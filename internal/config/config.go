package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken            string
	ChannelID           string
	DBDSN               string
	Environment         string
	Timezone            string
	MessagesPath        string
	PreviewTemplatePath string
	MessageTemplatePath string
	MigrationsPath      string
}

// Load читает конфигурацию из .env файла и переменных окружения
func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		BotToken:            os.Getenv("BOT_TOKEN"),
		ChannelID:           os.Getenv("CHANNEL_ID"),
		DBDSN:               os.Getenv("DB_DSN"),
		Environment:         os.Getenv("ENV"),
		Timezone:            os.Getenv("TIMEZONE"),
		MessagesPath:        os.Getenv("MESSAGES_PATH"),
		PreviewTemplatePath: os.Getenv("PREVIEW_TEMPLATE_PATH"),
		MessageTemplatePath: os.Getenv("MESSAGE_TEMPLATE_PATH"),
		MigrationsPath:      os.Getenv("MIGRATIONS_PATH"),
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Asia/Baku"
	}
	if cfg.MessagesPath == "" {
		cfg.MessagesPath = "messages.json"
	}
	if cfg.PreviewTemplatePath == "" {
		cfg.PreviewTemplatePath = "preview_template.txt"
	}
	if cfg.MessageTemplatePath == "" {
		cfg.MessageTemplatePath = "message_template.txt"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}

	// Проверяем обязательные поля
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required but not set")
	}
	if cfg.ChannelID == "" {
		return nil, fmt.Errorf("CHANNEL_ID is required but not set")
	}
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	log.Printf("Config loaded\n")

	return cfg, nil
}
