package departments

import (
	"fmt"
	"strings"

	"github.com/Artexxx/HR-Support-Bot/internal/dto"
)

const (
	// DeptCallbackPrefix — префикс callback-токена выбора отдела ("dept:<название>").
	DeptCallbackPrefix = "dept:"
	// DeptCallbackSkip — токен пропуска выбора отдела.
	DeptCallbackSkip = "dept:skip"
)

// RenderList — нумерованный список отделов для показа в чате.
// HTML-разметка сохраняется байт-в-байт: фронтенд шлёт её в Telegram как есть.
func (r *Registry) RenderList() string {
	names := r.List()
	if len(names) == 0 {
		return "📋 Список отделов пуст"
	}

	var b strings.Builder
	b.WriteString("🏢 <b>Список отделов:</b>\n\n")
	for i, dept := range names {
		fmt.Fprintf(&b, "%d. %s\n", i+1, dept)
	}

	return b.String()
}

// RenderPrompt — текст с предложением выбрать отдел кнопкой.
func (r *Registry) RenderPrompt() string {
	var b strings.Builder
	b.WriteString("🏢 <b>Выберите ваш отдел:</b>\n\n")
	b.WriteString("📋 Нажмите на кнопку с вашим отделом из списка ниже:\n\n")

	for i, dept := range r.List() {
		fmt.Fprintf(&b, "   %d. %s\n", i+1, dept)
	}

	b.WriteString("\n❓ Если вы не знаете точное название отдела - ")
	b.WriteString("нажмите 'Пропустить'.\n")
	b.WriteString("HR-отдел получит уведомление и уточнит эту информацию с вами.")

	return b.String()
}

// Keyboard — inline-клавиатура выбора отдела: по одной кнопке в ряд,
// последней идёт кнопка пропуска.
func (r *Registry) Keyboard() dto.InlineKeyboard {
	names := r.List()

	rows := make([][]dto.InlineButton, 0, len(names)+1)
	for _, dept := range names {
		rows = append(rows, []dto.InlineButton{{
			Text:         "🏢 " + dept,
			CallbackData: DeptCallbackPrefix + dept,
		}})
	}

	rows = append(rows, []dto.InlineButton{{
		Text:         "⏭️ Не знаю точно / Пропустить",
		CallbackData: DeptCallbackSkip,
	}})

	return dto.InlineKeyboard{Rows: rows}
}
