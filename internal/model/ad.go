package model

import (
	"time"

	"github.com/google/uuid"
)

// Ad — опубликованное объявление о перелёте.
// Создаётся только после подтверждения пользователем, после этого не изменяется.
type Ad struct {
	ID          int64     `json:"id"`
	PublicID    uuid.UUID `json:"public_id"`
	Role        string    `json:"role"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	FlightDate  string    `json:"flight_date"` // ISO дата YYYY-MM-DD
	Description string    `json:"description"`
	Author      string    `json:"author"` // username или Telegram ID текстом
	CreatedAt   time.Time `json:"created_at"`
}
