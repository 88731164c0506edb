package onboarding

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/Artexxx/HR-Support-Bot/internal/departments"
	"github.com/Artexxx/HR-Support-Bot/internal/dto"
)

// DateLayout — формат дат, который вводит пользователь (ДД.ММ.ГГГГ).
const DateLayout = "02.01.2006"

const (
	minFullnameLen = 3
	maxFullnameLen = 200

	minAge          = 16
	maxAge          = 80
	maxHireYearsAgo = 50
)

var regexLetters = regexp.MustCompile(`[а-яёА-ЯЁa-zA-Z]`)

// birthDateSkipKeywords — слова, которыми пользователь пропускает дату рождения
// (сравнение без учёта регистра, по обрезанной строке).
var birthDateSkipKeywords = map[string]struct{}{
	"":           {},
	"пропустить": {},
	"skip":       {},
	"-":          {},
}

type UserService interface {
	GetOrCreate(ctx context.Context, telegramID int64, username, fullname string) (*dto.User, error)
	UpdateOnboardingData(ctx context.Context, telegramID int64, upd dto.UserUpdate) error
}

type HRNotifier interface {
	NotifyNewEmployee(ctx context.Context, user *dto.User) error
}

// Service — пайплайн онбординга: валидаторы полей и шаг завершения.
// Валидаторы чистые, "сегодня" берётся из подменяемых часов.
type Service struct {
	users    UserService
	notifier HRNotifier
	registry *departments.Registry
	log      zerolog.Logger
	now      func() time.Time
}

func NewService(users UserService, notifier HRNotifier, registry *departments.Registry, log zerolog.Logger) *Service {
	return &Service{
		users:    users,
		notifier: notifier,
		registry: registry,
		log:      log.With().Str("component", "onboarding").Logger(),
		now:      time.Now,
	}
}

// ValidateFullname проверяет ФИО и приводит его к каноническому виду.
// Проверки идут по порядку, срабатывает первая нарушенная.
func (s *Service) ValidateFullname(fullname string) dto.NameResult {
	trimmed := strings.TrimSpace(fullname)

	if trimmed == "" {
		return dto.NameResult{
			Kind:    dto.KindEmpty,
			Message: "❌ ФИО обязательно для заполнения!\nПожалуйста, введите ваше полное имя",
		}
	}

	if utf8.RuneCountInString(trimmed) < minFullnameLen {
		return dto.NameResult{
			Kind:    dto.KindTooShort,
			Message: "❌ Пожалуйста, введите полное имя (минимум 3 символа)",
		}
	}

	if utf8.RuneCountInString(trimmed) > maxFullnameLen {
		return dto.NameResult{
			Kind:    dto.KindTooLong,
			Message: "❌ Слишком длинное имя (максимум 200 символов)",
		}
	}

	if !regexLetters.MatchString(fullname) {
		return dto.NameResult{
			Kind:    dto.KindMalformed,
			Message: "❌ Имя должно содержать буквы",
		}
	}

	formatted := FormatFullname(fullname)

	return dto.NameResult{
		Valid:             true,
		Message:           fmt.Sprintf("✅ ФИО принято: %s", formatted),
		FormattedFullname: formatted,
		FirstName:         ExtractFirstName(formatted),
	}
}

// ValidateBirthDate проверяет дату рождения. Поле можно пропустить.
//
// Возраст считается как floor(дней/365): приближение сохранено намеренно,
// запас границ 16/80 покрывает неточность на високосных годах.
func (s *Service) ValidateBirthDate(dateString string) dto.BirthDateResult {
	trimmed := strings.TrimSpace(dateString)

	if _, skip := birthDateSkipKeywords[strings.ToLower(trimmed)]; skip {
		return dto.BirthDateResult{
			Valid:   true,
			Skipped: true,
			Message: "⏭️ Дата рождения пропущена (HR получит уведомление)",
		}
	}

	birthDate, err := time.Parse(DateLayout, trimmed)
	if err != nil {
		return dto.BirthDateResult{
			Kind:    dto.KindMalformed,
			Message: "❌ Неверный формат даты. Введите дату в формате ДД.ММ.ГГГГ\n💡 Пример: 15.03.1990\n⏭️ Или введите 'пропустить'",
		}
	}

	today := s.today()
	age := int(today.Sub(birthDate).Hours()/24) / 365

	if age < minAge {
		return dto.BirthDateResult{
			Kind:    dto.KindOutOfRange,
			Message: "❌ Возраст должен быть не менее 16 лет или введите 'пропустить'",
			Age:     age,
		}
	}

	if age > maxAge {
		return dto.BirthDateResult{
			Kind:    dto.KindOutOfRange,
			Message: "❌ Пожалуйста, проверьте дату рождения (возраст не может быть больше 80 лет)",
			Age:     age,
		}
	}

	// Недостижимо при выполненных границах возраста, но проверяем на всякий случай.
	if birthDate.After(today) {
		return dto.BirthDateResult{
			Kind:    dto.KindOutOfRange,
			Message: "❌ Дата рождения не может быть в будущем",
		}
	}

	return dto.BirthDateResult{
		Valid:     true,
		Message:   fmt.Sprintf("✅ Дата рождения принята (возраст: %d лет)", age),
		BirthDate: &birthDate,
		Age:       age,
	}
}

// ValidateHireDate проверяет дату трудоустройства. Поле обязательное.
func (s *Service) ValidateHireDate(dateString string) dto.HireDateResult {
	hireDate, err := time.Parse(DateLayout, strings.TrimSpace(dateString))
	if err != nil {
		return dto.HireDateResult{
			Kind:    dto.KindMalformed,
			Message: "❌ Неверный формат даты. Пожалуйста, введите дату в формате ДД.ММ.ГГГГ\n💡 Пример: 01.09.2023",
		}
	}

	today := s.today()
	if hireDate.After(today) {
		return dto.HireDateResult{
			Kind:    dto.KindOutOfRange,
			Message: "❌ Дата трудоустройства не может быть в будущем",
		}
	}

	maxPastDate := today.AddDate(-maxHireYearsAgo, 0, 0)
	if hireDate.Before(maxPastDate) {
		return dto.HireDateResult{
			Kind:    dto.KindOutOfRange,
			Message: "❌ Дата трудоустройства слишком далеко в прошлом",
		}
	}

	return dto.HireDateResult{
		Valid:    true,
		Message:  "✅ Дата трудоустройства принята",
		HireDate: &hireDate,
	}
}

// ProcessDepartmentSelection обрабатывает выбор отдела кнопкой.
// Принимается только callback-токен вида "dept:<значение>", свободный ввод — нет.
func (s *Service) ProcessDepartmentSelection(callbackData string) dto.DepartmentResult {
	if !strings.HasPrefix(callbackData, departments.DeptCallbackPrefix) {
		return dto.DepartmentResult{
			Kind:    dto.KindMalformed,
			Message: "❌ Некорректные данные выбора отдела",
		}
	}

	value := strings.TrimPrefix(callbackData, departments.DeptCallbackPrefix)

	if value == "skip" {
		return dto.DepartmentResult{
			Valid:   true,
			Skipped: true,
			Message: "⏭️ Отдел пропущен (HR получит уведомление и уточнит)",
		}
	}

	if s.registry.Contains(value) {
		return dto.DepartmentResult{
			Valid:      true,
			Message:    fmt.Sprintf("✅ Выбран отдел: %s", value),
			Department: value,
		}
	}

	return dto.DepartmentResult{
		Kind:    dto.KindNotFound,
		Message: fmt.Sprintf("❌ Отдел '%s' не найден в списке", value),
	}
}

// Complete завершает онбординг: создаёт пользователя, дописывает собранные
// поля и уведомляет HR. Ошибка уведомления гасится сознательно — регистрация
// из-за неё не падает. Отката при неудачном обновлении нет: пользователь уже
// создан, вызывающая сторона должна терпеть частичный успех.
func (s *Service) Complete(ctx context.Context, telegramID int64, username string, data dto.OnboardingData) dto.CompletionResult {
	user, err := s.users.GetOrCreate(ctx, telegramID, username, data.Fullname)
	if err != nil || user == nil {
		s.log.Error().Err(err).Int64("telegram_id", telegramID).Msg("get or create user failed")

		return dto.CompletionResult{
			Message: "❌ Ошибка при создании пользователя",
		}
	}

	err = s.users.UpdateOnboardingData(ctx, telegramID, dto.UserUpdate{
		BirthDate:  data.BirthDate,
		HireDate:   data.HireDate,
		Department: data.Department,
	})
	if err != nil {
		s.log.Error().Err(err).Int64("telegram_id", telegramID).Msg("update onboarding data failed")

		return dto.CompletionResult{
			User:    user,
			Message: "❌ Ошибка при обновлении данных пользователя",
		}
	}

	user.BirthDate = data.BirthDate
	user.HireDate = data.HireDate
	user.Department = data.Department

	if err := s.notifier.NotifyNewEmployee(ctx, user); err != nil {
		s.log.Error().Err(err).Int64("telegram_id", telegramID).Msg("hr notification failed")
	}

	return dto.CompletionResult{
		Success: true,
		User:    user,
		Message: "✅ Регистрация завершена успешно!",
	}
}

// today — текущая дата без времени (UTC, как и распарсенные даты).
func (s *Service) today() time.Time {
	year, month, day := s.now().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
