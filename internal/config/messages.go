package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Messages — каталог всех пользовательских текстов бота.
// Ключи фиксированы, отсутствие любого из них — ошибка конфигурации.
type Messages struct {
	Welcome            string `json:"welcome"`
	ButtonPassenger    string `json:"button_passenger"`
	ButtonCargo        string `json:"button_cargo"`
	PromptSource       string `json:"prompt_source"`
	InvalidSource      string `json:"invalid_source"`
	PromptDestination  string `json:"prompt_destination"`
	InvalidDestination string `json:"invalid_destination"`
	PromptCalendar     string `json:"prompt_calendar"`
	CalendarLabel      string `json:"calendar_label_current"`
	DateSelected       string `json:"date_selected"`
	PromptDescription  string `json:"prompt_description"`
	InvalidDescription string `json:"invalid_description"`
	ButtonYes          string `json:"button_yes"`
	ButtonNo           string `json:"button_no"`
	CancelledNoSend    string `json:"cancelled_no_send"`
	SuccessPosted      string `json:"success_posted"`
	OperationCancelled string `json:"operation_cancelled"`
}

// LoadMessages загружает и валидирует каталог сообщений из JSON файла
func LoadMessages(path string) (*Messages, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read messages file: %w", err)
	}

	var messages Messages
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("parse messages file: %w", err)
	}

	if err := messages.Validate(); err != nil {
		return nil, err
	}

	return &messages, nil
}

// Validate проверяет, что все обязательные ключи заполнены
func (m *Messages) Validate() error {
	required := map[string]string{
		"welcome":                m.Welcome,
		"button_passenger":       m.ButtonPassenger,
		"button_cargo":           m.ButtonCargo,
		"prompt_source":          m.PromptSource,
		"invalid_source":         m.InvalidSource,
		"prompt_destination":     m.PromptDestination,
		"invalid_destination":    m.InvalidDestination,
		"prompt_calendar":        m.PromptCalendar,
		"calendar_label_current": m.CalendarLabel,
		"date_selected":          m.DateSelected,
		"prompt_description":     m.PromptDescription,
		"invalid_description":    m.InvalidDescription,
		"button_yes":             m.ButtonYes,
		"button_no":              m.ButtonNo,
		"cancelled_no_send":      m.CancelledNoSend,
		"success_posted":         m.SuccessPosted,
		"operation_cancelled":    m.OperationCancelled,
	}

	for key, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("message key %q is missing or empty", key)
		}
	}

	return nil
}

// FormatDateSelected подставляет выбранную дату в текст date_selected
func (m *Messages) FormatDateSelected(flightDate string) string {
	return strings.ReplaceAll(m.DateSelected, "{flight_date}", flightDate)
}
