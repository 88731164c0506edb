package producer

import (
	"time"

	"github.com/google/uuid"
)

// NewEmployeePayload — событие о прошедшем онбординг сотруднике
type NewEmployeePayload struct {
	TelegramID int64  `json:"telegram_id" example:"123456789"`            // Идентификатор сотрудника в Telegram
	Username   string `json:"username" example:"ivanov_ii"`               // Username ("" — не указан)
	Fullname   string `json:"fullname" example:"Иванов Иван Иванович"`    // ФИО в каноническом формате
	BirthDate  string `json:"birth_date" example:"1990-03-15"`            // Дата рождения (YYYY-MM-DD, "" — пропущена)
	HireDate   string `json:"hire_date" example:"2023-09-01"`             // Дата трудоустройства (YYYY-MM-DD)
	Department string `json:"department" example:"Бухгалтерия"`           // Отдел ("" — пропущен)
}

type Envelope[T any] struct {
	Kind      string    `json:"kind"       example:"new_employee"`                         // Тип события
	MessageID uuid.UUID `json:"message_id" example:"c7e06db5-4b71-4c54-9334-3f9a6e6c5d0e"` // Идентификатор события (UUID v4)
	Payload   T         `json:"payload"`                                                   // Полезная нагрузка
	Timestamp time.Time `json:"timestamp"  example:"2025-10-19T12:34:56Z"`                 // Время формирования события
	Source    string    `json:"source"     example:"hr-support-bot"`                       // Сервис-источник
}
