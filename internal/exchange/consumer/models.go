package consumer

import (
	"time"

	"github.com/google/uuid"
)

type NewEmployeePayload struct {
	TelegramID int64  `json:"telegram_id"`
	Username   string `json:"username"`
	Fullname   string `json:"fullname"`
	BirthDate  string `json:"birth_date"` // YYYY-MM-DD, "" — пропущена
	HireDate   string `json:"hire_date"`  // YYYY-MM-DD
	Department string `json:"department"` // "" — пропущен
}

type Envelope[T any] struct {
	Kind      string    `json:"kind"`
	MessageID uuid.UUID `json:"message_id"`
	Payload   T         `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}
