package dto

// InlineButton — кнопка inline-клавиатуры чата.
// callback_data для выбора отдела имеет вид "dept:<название>" или "dept:skip".
type InlineButton struct {
	Text         string `json:"text" example:"🏢 Бухгалтерия"`
	CallbackData string `json:"callback_data" example:"dept:Бухгалтерия"`
}

// InlineKeyboard — ряды кнопок в порядке отображения
type InlineKeyboard struct {
	Rows [][]InlineButton `json:"inline_keyboard"`
}
