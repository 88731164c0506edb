package consumer

import (
	"fmt"
	"time"

	"github.com/Artexxx/HR-Support-Bot/internal/dto"
)

// renderNewEmployeeText — HTML-сообщение для HR о новом сотруднике.
func renderNewEmployeeText(p NewEmployeePayload) string {
	username := p.Username
	if username == "" {
		username = "не указан"
	}

	department := p.Department
	if department == "" {
		department = "❌ не указан"
	}

	return fmt.Sprintf(
		"👤 <b>Новый сотрудник в системе!</b>\n\n"+
			"🆔 ID: <code>%d</code>\n"+
			"👤 Имя: %s\n"+
			"💬 Username: @%s\n"+
			"📅 Присоединился: сейчас\n\n"+
			"📋 <b>Данные сотрудника:</b>\n"+
			"🎂 Дата рождения: %s\n"+
			"💼 Дата трудоустройства: %s\n"+
			"🏢 Отдел: %s\n\n"+
			"❗️ <b>Требуется проверить:</b>\n"+
			"• Корректность введенных данных\n"+
			"• Заполнение пропущенных полей\n"+
			"• Присвоение правильной роли\n\n"+
			"Используйте кнопки ниже для управления сотрудником.",
		p.TelegramID, p.Fullname, username,
		displayDate(p.BirthDate, "❌ не указана"),
		displayDate(p.HireDate, "❌ не указана"),
		department,
	)
}

// displayDate переводит дату из формата события (YYYY-MM-DD) в ДД.ММ.ГГГГ.
func displayDate(wire, fallback string) string {
	if wire == "" {
		return fallback
	}

	t, err := time.Parse("2006-01-02", wire)
	if err != nil {
		return fallback
	}

	return t.Format("02.01.2006")
}

func hrNotificationKeyboard() dto.InlineKeyboard {
	return dto.InlineKeyboard{Rows: [][]dto.InlineButton{
		{{Text: "👥 Управление сотрудниками", CallbackData: "menu:users"}},
		{{Text: "⏰ Позже", CallbackData: "hr_notification_later"}},
	}}
}
