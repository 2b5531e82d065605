package keyboard

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-telegram/bot/models"
)

const blankCell = " "

var weekdayLabels = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Calendar строит inline-календарь месяца для выбора даты вылета.
// Чистая функция: один и тот же (год, месяц, сегодня) всегда даёт одну
// и ту же клавиатуру, всё состояние навигации живёт в токенах кнопок.
//
// Структура: заголовок "Month YYYY", ряд дней недели (Su..Sa), недели
// месяца начиная с воскресенья, ряд навигации "<" ">". Клетки вне месяца
// и дни строго раньше сегодняшнего рендерятся пустыми с токеном IGNORE —
// прошедший день не показывается серым, он убирается совсем.
func Calendar(year int, month time.Month, today time.Time) *models.InlineKeyboardMarkup {
	b := NewBuilder()

	b.Row(Button(fmt.Sprintf("%s %d", month.String(), year), TokenIgnore))

	weekdayRow := make([]models.InlineKeyboardButton, 0, 7)
	for _, label := range weekdayLabels {
		weekdayRow = append(weekdayRow, Button(label, TokenIgnore))
	}
	b.Row(weekdayRow...)

	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	daysInMonth := firstOfMonth.AddDate(0, 1, -1).Day()
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	row := make([]models.InlineKeyboardButton, 0, 7)
	for i := 0; i < int(firstOfMonth.Weekday()); i++ {
		row = append(row, Button(blankCell, TokenIgnore))
	}

	for day := 1; day <= daysInMonth; day++ {
		candidate := time.Date(year, month, day, 0, 0, 0, 0, today.Location())
		if candidate.Before(todayDate) {
			row = append(row, Button(blankCell, TokenIgnore))
		} else {
			row = append(row, Button(strconv.Itoa(day), DayToken(year, month, day)))
		}

		if len(row) == 7 {
			b.Row(row...)
			row = make([]models.InlineKeyboardButton, 0, 7)
		}
	}

	if len(row) > 0 {
		for len(row) < 7 {
			row = append(row, Button(blankCell, TokenIgnore))
		}
		b.Row(row...)
	}

	b.Row(
		Button("<", PrevToken(year, month)),
		Button(">", NextToken(year, month)),
	)

	return b.Build()
}
