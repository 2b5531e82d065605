package config

import (
	"fmt"
	"os"

	"github.com/Freeeeeet/flightads_bot/internal/formatting"
)

// Templates хранит тексты шаблонов предпросмотра и публикации.
// Оба шаблона используют одинаковый набор плейсхолдеров:
// {role} {source} {destination} {flight_date} {description} {user_id}
type Templates struct {
	Preview string
	Message string
}

// LoadTemplates загружает оба шаблона и проверяет их плейсхолдеры.
// Неизвестный плейсхолдер — ошибка конфигурации, а не молчаливый пропуск.
func LoadTemplates(previewPath, messagePath string) (*Templates, error) {
	preview, err := loadTemplate(previewPath)
	if err != nil {
		return nil, fmt.Errorf("preview template: %w", err)
	}

	message, err := loadTemplate(messagePath)
	if err != nil {
		return nil, fmt.Errorf("message template: %w", err)
	}

	return &Templates{Preview: preview, Message: message}, nil
}

func loadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}

	tpl := string(data)
	if err := formatting.CheckPlaceholders(tpl); err != nil {
		return "", err
	}

	return tpl, nil
}
