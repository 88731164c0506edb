package onboarding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Artexxx/HR-Support-Bot/internal/dto"
)

func TestFormatFullname(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "all caps and lower mix", in: "ИВАНОВ иван ИВАНОВИЧ", want: "Иванов Иван Иванович"},
		{name: "already canonical", in: "Иванов Иван Иванович", want: "Иванов Иван Иванович"},
		{name: "extra whitespace collapsed", in: "  петров   пётр  ", want: "Петров Пётр"},
		{name: "latin letters", in: "john SMITH", want: "John Smith"},
		{name: "yo letter upper-cased", in: "ёлкин ёж", want: "Ёлкин Ёж"},
		{name: "single word", in: "мадонна", want: "Мадонна"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFullname(tt.in))
		})
	}
}

func TestExtractFirstName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "second token of three", in: "Иванов Иван Иванович", want: "Иван"},
		{name: "second token of two", in: "Иванов Иван", want: "Иван"},
		{name: "sole token", in: "Мадонна", want: "Мадонна"},
		{name: "empty input falls back", in: "", want: "Пользователь"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractFirstName(tt.in))
		})
	}
}

func TestFormatCompletionMessage(t *testing.T) {
	birthDate := time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)
	hireDate := time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)

	data := dto.OnboardingData{
		Fullname:   "Иванов Иван Иванович",
		BirthDate:  &birthDate,
		HireDate:   &hireDate,
		Department: "Бухгалтерия",
	}

	got := FormatCompletionMessage(data, "Иван", 1000)

	assert.Contains(t, got, "🎉 <b>Регистрация завершена!</b>")
	assert.Contains(t, got, "👤 ФИО: Иванов Иван Иванович")
	assert.Contains(t, got, "📅 Дата рождения: 15.03.1990")
	assert.Contains(t, got, "💼 Дата трудоустройства: 01.09.2023")
	assert.Contains(t, got, "🏢 Отдел: Бухгалтерия")
	assert.Contains(t, got, "💎 Ваш стартовый баланс: 1,000 T-Points")
	assert.Contains(t, got, "🚀 Добро пожаловать в команду, Иван!")
}

func TestFormatCompletionMessageSkippedFields(t *testing.T) {
	got := FormatCompletionMessage(dto.OnboardingData{Fullname: "Иванов Иван"}, "Иван", 0)

	assert.Contains(t, got, "📅 Дата рождения: ❌ не указана")
	assert.Contains(t, got, "💼 Дата трудоустройства: ❌ не указана")
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{1234567, "1,234,567"},
		{-12345, "-12,345"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, groupDigits(tt.in))
	}
}
