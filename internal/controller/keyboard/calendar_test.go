package keyboard

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/require"
)

func dayButtons(markup *models.InlineKeyboardMarkup) []models.InlineKeyboardButton {
	var buttons []models.InlineKeyboardButton
	for _, row := range markup.InlineKeyboard {
		for _, button := range row {
			if strings.HasPrefix(button.CallbackData, DayTokenPrefix) {
				buttons = append(buttons, button)
			}
		}
	}
	return buttons
}

func navRow(t *testing.T, markup *models.InlineKeyboardMarkup) []models.InlineKeyboardButton {
	t.Helper()
	row := markup.InlineKeyboard[len(markup.InlineKeyboard)-1]
	require.Len(t, row, 2)
	return row
}

func TestCalendarContainsEveryDayExactlyOnce(t *testing.T) {
	// Сегодня до начала месяца — ни один день не скрыт
	today := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	markup := Calendar(2025, time.July, today)

	rows := markup.InlineKeyboard
	require.GreaterOrEqual(t, len(rows), 7) // заголовок + дни недели + >=4 недель + навигация

	require.Len(t, rows[0], 1)
	require.Equal(t, "July 2025", rows[0][0].Text)
	require.Equal(t, TokenIgnore, rows[0][0].CallbackData)

	require.Len(t, rows[1], 7)
	for i, label := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		require.Equal(t, label, rows[1][i].Text)
		require.Equal(t, TokenIgnore, rows[1][i].CallbackData)
	}

	for _, week := range rows[2 : len(rows)-1] {
		require.Len(t, week, 7)
	}

	seen := make(map[int]int)
	for _, button := range dayButtons(markup) {
		day, err := strconv.Atoi(button.Text)
		require.NoError(t, err)
		seen[day]++
		require.Equal(t, fmt.Sprintf("DAY-2025-07-%02d", day), button.CallbackData)
	}

	require.Len(t, seen, 31)
	for day := 1; day <= 31; day++ {
		require.Equal(t, 1, seen[day], "day %d", day)
	}
}

func TestCalendarBlanksDaysBeforeToday(t *testing.T) {
	today := time.Date(2025, time.July, 10, 9, 30, 0, 0, time.UTC)
	markup := Calendar(2025, time.July, today)

	selectable := make(map[int]bool)
	for _, button := range dayButtons(markup) {
		day, err := strconv.Atoi(button.Text)
		require.NoError(t, err)
		selectable[day] = true
	}

	for day := 1; day <= 9; day++ {
		require.False(t, selectable[day], "past day %d must be suppressed", day)
	}
	for day := 10; day <= 31; day++ {
		require.True(t, selectable[day], "day %d must be selectable", day)
	}

	// Прошедший день не просто неактивен — у клетки нет номера дня
	for _, row := range markup.InlineKeyboard {
		for _, button := range row {
			if button.CallbackData == TokenIgnore && len(row) == 7 {
				require.Contains(t, []string{" ", "Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}, button.Text)
			}
		}
	}
}

func TestCalendarFullyPastMonthHasNoSelectableDays(t *testing.T) {
	today := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	markup := Calendar(2025, time.July, today)

	require.Empty(t, dayButtons(markup))
}

func TestNavigationTokensRoundTrip(t *testing.T) {
	today := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	markup := Calendar(2025, time.July, today)
	nav := navRow(t, markup)
	require.Equal(t, "PREV-2025-06", nav[0].CallbackData)
	require.Equal(t, "NEXT-2025-08", nav[1].CallbackData)

	// Шаг вперёд, затем назад возвращает исходный месяц
	nextYear, nextMonth, ok := ParseNavToken(nav[1].CallbackData)
	require.True(t, ok)
	require.Equal(t, 2025, nextYear)
	require.Equal(t, time.August, nextMonth)

	nextMarkup := Calendar(nextYear, nextMonth, today)
	backYear, backMonth, ok := ParseNavToken(navRow(t, nextMarkup)[0].CallbackData)
	require.True(t, ok)
	require.Equal(t, 2025, backYear)
	require.Equal(t, time.July, backMonth)
}

func TestNavigationWrapsYearBoundaries(t *testing.T) {
	today := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	december := Calendar(2025, time.December, today)
	require.Equal(t, "NEXT-2026-01", navRow(t, december)[1].CallbackData)

	january := Calendar(2025, time.January, today)
	require.Equal(t, "PREV-2024-12", navRow(t, january)[0].CallbackData)
}

func TestNormalizeMonthWrapsYearBoundaries(t *testing.T) {
	year, month := NormalizeMonth(2025, 13)
	require.Equal(t, 2026, year)
	require.Equal(t, time.January, month)

	year, month = NormalizeMonth(2025, 0)
	require.Equal(t, 2024, year)
	require.Equal(t, time.December, month)

	year, month = NormalizeMonth(2025, 7)
	require.Equal(t, 2025, year)
	require.Equal(t, time.July, month)
}

func TestParseDayToken(t *testing.T) {
	date, ok := ParseDayToken("DAY-2025-07-10")
	require.True(t, ok)
	require.Equal(t, "2025-07-10", date)

	_, ok = ParseDayToken("DAY-2025-13-45")
	require.False(t, ok)

	_, ok = ParseDayToken("PREV-2025-07")
	require.False(t, ok)

	_, ok = ParseDayToken("IGNORE")
	require.False(t, ok)
}

func TestParseNavToken(t *testing.T) {
	// Месяц за пределами 1..12 нормализуется при разборе
	year, month, ok := ParseNavToken("NEXT-2025-13")
	require.True(t, ok)
	require.Equal(t, 2026, year)
	require.Equal(t, time.January, month)

	// Токены без ведущих нулей (старый формат) тоже разбираются
	year, month, ok = ParseNavToken("PREV-2025-6")
	require.True(t, ok)
	require.Equal(t, 2025, year)
	require.Equal(t, time.June, month)

	_, _, ok = ParseNavToken("DAY-2025-07-10")
	require.False(t, ok)

	_, _, ok = ParseNavToken("NEXT-garbage")
	require.False(t, ok)
}
