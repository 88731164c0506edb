package dto

import (
	"time"
)

// Роли пользователей в системе.
const (
	RoleUser  = "user"
	RoleHR    = "hr"
	RoleAdmin = "admin"
)

// User — сотрудник, зарегистрированный в боте
type User struct {
	TelegramID int64      `json:"telegram_id" example:"123456789"`            // Идентификатор пользователя в Telegram
	Username   string     `json:"username,omitempty" example:"ivanov_ii"`     // Username в Telegram (может отсутствовать)
	Fullname   string     `json:"fullname" example:"Иванов Иван Иванович"`    // ФИО в каноническом формате
	BirthDate  *time.Time `json:"birth_date,omitempty" example:"1990-03-15"`  // Дата рождения (nil — не указана)
	HireDate   *time.Time `json:"hire_date,omitempty" example:"2023-09-01"`   // Дата трудоустройства
	Department string     `json:"department,omitempty" example:"Бухгалтерия"` // Отдел ("" — пропущен при регистрации)
	Role       string     `json:"role" example:"user"`                        // Роль: user | hr | admin
	TPoints    int        `json:"tpoints" example:"0"`                        // Баланс T-Points
	IsActive   bool       `json:"is_active" example:"true"`                   // Активен ли сотрудник
}

// OnboardingData — собранные за один диалог онбординга поля.
// Живёт только на время диалога, владеет им вызывающий контроллер.
type OnboardingData struct {
	Fullname   string     `json:"fullname"`
	BirthDate  *time.Time `json:"birth_date,omitempty"`
	HireDate   *time.Time `json:"hire_date,omitempty"`
	Department string     `json:"department"`
}

// UserUpdate — поля, дописываемые пользователю на шаге завершения онбординга.
type UserUpdate struct {
	BirthDate  *time.Time `json:"birth_date,omitempty"`
	HireDate   *time.Time `json:"hire_date,omitempty"`
	Department string     `json:"department"`
}

// NotificationRecord — журнальная запись о доставке уведомления в чат
type NotificationRecord struct {
	ID         int64  `json:"id"`
	ChatID     int64  `json:"chat_id"`     // Чат получателя (HR или админ)
	EmployeeID int64  `json:"employee_id"` // Сотрудник, о котором уведомляли
	Kind       string `json:"kind" example:"new_employee"`
	Delivered  bool   `json:"delivered"`
	Error      string `json:"error,omitempty"`
	SentAt     string `json:"sent_at"`
}
