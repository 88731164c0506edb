package onboarding

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Artexxx/HR-Support-Bot/internal/dto"
)

const notSpecified = "❌ не указана"

// WelcomeText — приветственное сообщение первого шага онбординга.
func WelcomeText() string {
	return "👋 Добро пожаловать в HR Support Bot!\n\n" +
		"🎉 Поздравляем с присоединением к нашей команде!\n\n" +
		"📝 Для завершения регистрации, пожалуйста, укажите ваше полное имя (ФИО):\n\n" +
		"💡 Пример: Иванов Иван Иванович"
}

// FormatCompletionMessage — итоговое сообщение после успешной регистрации.
func FormatCompletionMessage(data dto.OnboardingData, firstName string, balance int) string {
	birthDate := notSpecified
	if data.BirthDate != nil {
		birthDate = data.BirthDate.Format(DateLayout)
	}

	hireDate := notSpecified
	if data.HireDate != nil {
		hireDate = data.HireDate.Format(DateLayout)
	}

	return fmt.Sprintf(
		"🎉 <b>Регистрация завершена!</b>\n\n"+
			"👤 ФИО: %s\n"+
			"📅 Дата рождения: %s\n"+
			"💼 Дата трудоустройства: %s\n"+
			"🏢 Отдел: %s\n\n"+
			"💎 Ваш стартовый баланс: %s T-Points\n\n"+
			"🚀 Добро пожаловать в команду, %s!\n\n"+
			"🏠 Можете ознакомиться с функционалом бота:",
		data.Fullname, birthDate, hireDate, data.Department, groupDigits(balance), firstName,
	)
}

// groupDigits форматирует число с разделителем тысяч: 12345 -> "12,345".
func groupDigits(n int) string {
	s := strconv.Itoa(n)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-" + b.String()
	}

	return b.String()
}
