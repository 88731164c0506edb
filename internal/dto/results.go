package dto

import (
	"time"
)

// ErrorKind — машиночитаемая причина отказа валидации.
// Пустая строка у валидного результата.
type ErrorKind string

const (
	KindEmpty      ErrorKind = "empty"
	KindTooShort   ErrorKind = "too_short"
	KindTooLong    ErrorKind = "too_long"
	KindMalformed  ErrorKind = "malformed"
	KindOutOfRange ErrorKind = "out_of_range"
	KindNotFound   ErrorKind = "not_found"
)

// NameResult — исход валидации ФИО
type NameResult struct {
	Valid             bool      `json:"valid"`
	Kind              ErrorKind `json:"kind,omitempty"`
	Message           string    `json:"message"`                      // Текст для показа пользователю
	FormattedFullname string    `json:"formatted_fullname,omitempty"` // Канонический вид ФИО
	FirstName         string    `json:"first_name,omitempty"`         // Имя для обращения к сотруднику
}

// BirthDateResult — исход валидации даты рождения
type BirthDateResult struct {
	Valid     bool       `json:"valid"`
	Skipped   bool       `json:"skipped"`
	Kind      ErrorKind  `json:"kind,omitempty"`
	Message   string     `json:"message"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Age       int        `json:"age,omitempty"` // Полных лет на момент проверки
}

// HireDateResult — исход валидации даты трудоустройства
type HireDateResult struct {
	Valid    bool       `json:"valid"`
	Kind     ErrorKind  `json:"kind,omitempty"`
	Message  string     `json:"message"`
	HireDate *time.Time `json:"hire_date,omitempty"`
}

// DepartmentResult — исход обработки выбора отдела
type DepartmentResult struct {
	Valid      bool      `json:"valid"`
	Skipped    bool      `json:"skipped"`
	Kind       ErrorKind `json:"kind,omitempty"`
	Message    string    `json:"message"`
	Department string    `json:"department"` // "" при пропуске
}

// CompletionResult — исход завершения онбординга
type CompletionResult struct {
	Success bool   `json:"success"`
	User    *User  `json:"user,omitempty"` // Не nil при частичном успехе (создан, но не обновлён)
	Message string `json:"message"`
}
