package keyboard

import "github.com/go-telegram/bot/models"

// Builder упрощает создание inline клавиатур
type Builder struct {
	rows [][]models.InlineKeyboardButton
}

// NewBuilder создаёт новый builder клавиатуры
func NewBuilder() *Builder {
	return &Builder{
		rows: make([][]models.InlineKeyboardButton, 0),
	}
}

// Row добавляет новый ряд кнопок
func (b *Builder) Row(buttons ...models.InlineKeyboardButton) *Builder {
	if len(buttons) > 0 {
		b.rows = append(b.rows, buttons)
	}
	return b
}

// Build создаёт финальную клавиатуру
func (b *Builder) Build() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: b.rows,
	}
}

// Button создаёт кнопку
func Button(text, callbackData string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text:         text,
		CallbackData: callbackData,
	}
}

// RoleKeyboard создаёт клавиатуру выбора роли (пассажир / груз)
func RoleKeyboard(passengerLabel, cargoLabel string) *models.InlineKeyboardMarkup {
	return NewBuilder().
		Row(
			Button(passengerLabel, RolePassenger),
			Button(cargoLabel, RoleCargo),
		).
		Build()
}

// ConfirmKeyboard создаёт клавиатуру подтверждения публикации (да / нет)
func ConfirmKeyboard(yesLabel, noLabel string) *models.InlineKeyboardMarkup {
	return NewBuilder().
		Row(
			Button(yesLabel, ConfirmYes),
			Button(noLabel, ConfirmNo),
		).
		Build()
}
