package onboarding

import (
	"strings"
)

// fallbackFirstName используется, когда из ФИО не удалось выделить имя.
const fallbackFirstName = "Пользователь"

// FormatFullname приводит ФИО к каноническому виду: в каждом слове первая
// буква заглавная, остальные строчные, слова разделены одним пробелом.
func FormatFullname(fullname string) string {
	words := strings.Fields(fullname)

	formatted := make([]string, 0, len(words))
	for _, word := range words {
		runes := []rune(word)
		formatted = append(formatted, strings.ToUpper(string(runes[0]))+strings.ToLower(string(runes[1:])))
	}

	return strings.Join(formatted, " ")
}

// ExtractFirstName выделяет имя из канонического ФИО: второе слово
// ("Фамилия Имя Отчество"), либо единственное слово, либо заглушка.
func ExtractFirstName(fullname string) string {
	parts := strings.Fields(fullname)

	switch {
	case len(parts) >= 2:
		return parts[1]
	case len(parts) == 1:
		return parts[0]
	default:
		return fallbackFirstName
	}
}
