package api

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Artexxx/HR-Support-Bot/internal/onboarding"
)

var regexUserDate = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

func validUserDate(s string) bool {
	_, err := time.Parse(onboarding.DateLayout, s)
	return err == nil
}

func checkUserDate(field, value string) string {
	if !regexUserDate.MatchString(value) || !validUserDate(value) {
		return fmt.Sprintf("invalid value in field '%s'=%s", field, value)
	}

	return ""
}

// validateCompleteRequest проверяет форму запроса завершения онбординга.
// Семантику полей (возраст, границы дат, отдел) проверяют валидаторы пайплайна,
// здесь только то, что фронтенд прислал согласованный набор полей.
func validateCompleteRequest(req completeOnboardingReq) string {
	if req.TelegramID == 0 {
		return "required field 'telegram_id'"
	}

	if strings.TrimSpace(req.Fullname) == "" {
		return "required field 'fullname'"
	}

	// Дата рождения опциональна: пустая строка значит "пропущена".
	if strings.TrimSpace(req.BirthDate) != "" {
		if msg := checkUserDate("birth_date", strings.TrimSpace(req.BirthDate)); msg != "" {
			return msg
		}
	}

	if strings.TrimSpace(req.HireDate) == "" {
		return "required field 'hire_date'"
	}

	if msg := checkUserDate("hire_date", strings.TrimSpace(req.HireDate)); msg != "" {
		return msg
	}

	return ""
}
