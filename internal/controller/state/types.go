package state

import (
	"github.com/Freeeeeet/flightads_bot/internal/formatting"
)

// UserState представляет текущий шаг пользователя в диалоге создания объявления
type UserState string

const (
	StateNone UserState = "" // Нет активного диалога

	StateChoosingRole      UserState = "choosing_role"
	StateTypingSource      UserState = "typing_source"
	StateTypingDestination UserState = "typing_destination"
	StateSelectingDate     UserState = "selecting_date"
	StateTypingDescription UserState = "typing_description"
	StateConfirmation      UserState = "confirmation"
)

// Session хранит шаг диалога и собранные поля черновика объявления.
// nil означает "поле ещё не собрано" — поле заполняется только после
// прохождения соответствующего шага, порядок гарантирует машина состояний.
type Session struct {
	State       UserState
	Role        *string
	Source      *string
	Destination *string
	FlightDate  *string
	Description *string
}

// Fields собирает типизированный набор полей для шаблонов.
// Несобранное поле превращается в пустую строку и отлавливается
// валидацией при рендеринге, а не превращается в пробел в тексте.
func (s Session) Fields(author string) formatting.AdFields {
	return formatting.AdFields{
		Role:        deref(s.Role),
		Source:      deref(s.Source),
		Destination: deref(s.Destination),
		FlightDate:  deref(s.FlightDate),
		Description: deref(s.Description),
		Author:      author,
	}
}

func deref(value *string) string {
	if value != nil {
		return *value
	}
	return ""
}
