package keyboard

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Callback-токены кнопок. Токен несёт в себе всё, что нужно для
// обработки нажатия — на сервере нет курсора календаря или состояния страницы.
const (
	RolePassenger = "role_passenger"
	RoleCargo     = "role_cargo"

	ConfirmYes = "confirm_yes"
	ConfirmNo  = "confirm_no"

	// TokenIgnore — общий токен всех неинтерактивных клеток календаря
	TokenIgnore = "IGNORE"

	DayTokenPrefix  = "DAY-"  // DAY-YYYY-MM-DD
	PrevTokenPrefix = "PREV-" // PREV-YYYY-MM, целевые год и месяц
	NextTokenPrefix = "NEXT-" // NEXT-YYYY-MM, целевые год и месяц
)

// NormalizeMonth приводит пару (год, месяц) к каноничному виду:
// месяц 0 — декабрь предыдущего года, месяц 13 — январь следующего
func NormalizeMonth(year, month int) (int, time.Month) {
	t := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

// DayToken кодирует выбираемый день в ISO дату
func DayToken(year int, month time.Month, day int) string {
	return fmt.Sprintf("%s%04d-%02d-%02d", DayTokenPrefix, year, int(month), day)
}

// ParseDayToken извлекает ISO дату из токена дня
func ParseDayToken(token string) (string, bool) {
	if !strings.HasPrefix(token, DayTokenPrefix) {
		return "", false
	}

	date := strings.TrimPrefix(token, DayTokenPrefix)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", false
	}

	return date, true
}

// PrevToken кодирует переход на предыдущий месяц
func PrevToken(year int, month time.Month) string {
	targetYear, targetMonth := NormalizeMonth(year, int(month)-1)
	return fmt.Sprintf("%s%04d-%02d", PrevTokenPrefix, targetYear, int(targetMonth))
}

// NextToken кодирует переход на следующий месяц
func NextToken(year int, month time.Month) string {
	targetYear, targetMonth := NormalizeMonth(year, int(month)+1)
	return fmt.Sprintf("%s%04d-%02d", NextTokenPrefix, targetYear, int(targetMonth))
}

// IsNavToken сообщает, является ли токен навигацией по месяцам
func IsNavToken(token string) bool {
	return strings.HasPrefix(token, PrevTokenPrefix) || strings.HasPrefix(token, NextTokenPrefix)
}

// ParseNavToken извлекает целевые год и месяц из навигационного токена.
// Месяц за границами 1..12 нормализуется, ведущие нули не обязательны.
func ParseNavToken(token string) (int, time.Month, bool) {
	var raw string
	switch {
	case strings.HasPrefix(token, PrevTokenPrefix):
		raw = strings.TrimPrefix(token, PrevTokenPrefix)
	case strings.HasPrefix(token, NextTokenPrefix):
		raw = strings.TrimPrefix(token, NextTokenPrefix)
	default:
		return 0, 0, false
	}

	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}

	normalYear, normalMonth := NormalizeMonth(year, month)
	return normalYear, normalMonth, true
}
