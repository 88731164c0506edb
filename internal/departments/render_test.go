package departments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RenderList(t *testing.T) {
	r := NewRegistry([]string{"Купер", "Бухгалтерия"})

	want := "🏢 <b>Список отделов:</b>\n\n" +
		"1. Купер\n" +
		"2. Бухгалтерия\n"

	assert.Equal(t, want, r.RenderList())
}

func TestRegistry_RenderListEmpty(t *testing.T) {
	r := NewRegistry(nil)

	assert.Equal(t, "📋 Список отделов пуст", r.RenderList())
}

func TestRegistry_RenderPrompt(t *testing.T) {
	r := NewRegistry([]string{"Купер", "Бухгалтерия"})

	want := "🏢 <b>Выберите ваш отдел:</b>\n\n" +
		"📋 Нажмите на кнопку с вашим отделом из списка ниже:\n\n" +
		"   1. Купер\n" +
		"   2. Бухгалтерия\n" +
		"\n❓ Если вы не знаете точное название отдела - " +
		"нажмите 'Пропустить'.\n" +
		"HR-отдел получит уведомление и уточнит эту информацию с вами."

	assert.Equal(t, want, r.RenderPrompt())
}

func TestRegistry_Keyboard(t *testing.T) {
	r := NewRegistry([]string{"Купер", "Бухгалтерия"})

	kb := r.Keyboard()
	require.Len(t, kb.Rows, 3)

	assert.Equal(t, "🏢 Купер", kb.Rows[0][0].Text)
	assert.Equal(t, "dept:Купер", kb.Rows[0][0].CallbackData)

	assert.Equal(t, "🏢 Бухгалтерия", kb.Rows[1][0].Text)
	assert.Equal(t, "dept:Бухгалтерия", kb.Rows[1][0].CallbackData)

	// Кнопка пропуска всегда последняя.
	assert.Equal(t, "⏭️ Не знаю точно / Пропустить", kb.Rows[2][0].Text)
	assert.Equal(t, "dept:skip", kb.Rows[2][0].CallbackData)
}
