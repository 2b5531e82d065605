package formatting

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrMissingField       = errors.New("template field is empty")
	ErrUnknownPlaceholder = errors.New("unknown template placeholder")
)

var placeholderRe = regexp.MustCompile(`\{[a-z_]+\}`)

// AdFields — типизированный набор полей объявления для подстановки в шаблон.
// Пустое поле здесь — нарушение контракта машины состояний, а не пользовательская ошибка.
type AdFields struct {
	Role        string
	Source      string
	Destination string
	FlightDate  string
	Description string
	Author      string
}

var knownPlaceholders = map[string]bool{
	"{role}":        true,
	"{source}":      true,
	"{destination}": true,
	"{flight_date}": true,
	"{description}": true,
	"{user_id}":     true,
}

// Validate проверяет, что все шесть полей заполнены
func (f AdFields) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"role", f.Role},
		{"source", f.Source},
		{"destination", f.Destination},
		{"flight_date", f.FlightDate},
		{"description", f.Description},
		{"user_id", f.Author},
	}

	for _, field := range fields {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, field.name)
		}
	}

	return nil
}

// CheckPlaceholders проверяет, что шаблон ссылается только на известные плейсхолдеры
func CheckPlaceholders(tpl string) error {
	for _, placeholder := range placeholderRe.FindAllString(tpl, -1) {
		if !knownPlaceholders[placeholder] {
			return fmt.Errorf("%w: %s", ErrUnknownPlaceholder, placeholder)
		}
	}
	return nil
}

// Render подставляет поля объявления в шаблон.
// Незаполненное поле или неизвестный плейсхолдер — громкая ошибка,
// частично заполненный текст наружу не уходит.
func Render(tpl string, fields AdFields) (string, error) {
	if err := fields.Validate(); err != nil {
		return "", err
	}
	if err := CheckPlaceholders(tpl); err != nil {
		return "", err
	}

	replacer := strings.NewReplacer(
		"{role}", fields.Role,
		"{source}", fields.Source,
		"{destination}", fields.Destination,
		"{flight_date}", fields.FlightDate,
		"{description}", fields.Description,
		"{user_id}", fields.Author,
	)

	return replacer.Replace(tpl), nil
}

// AuthorName возвращает публичный username пользователя,
// а если его нет — числовой Telegram ID текстом
func AuthorName(username string, telegramID int64) string {
	if username != "" {
		return username
	}
	return strconv.FormatInt(telegramID, 10)
}
