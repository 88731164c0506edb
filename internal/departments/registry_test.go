package departments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Add(t *testing.T) {
	tests := []struct {
		name     string
		initial  []string
		add      string
		want     bool
		wantList []string
	}{
		{
			name:     "appends at the end",
			initial:  []string{"Бухгалтерия"},
			add:      "Фарма",
			want:     true,
			wantList: []string{"Бухгалтерия", "Фарма"},
		},
		{
			name:     "trims whitespace",
			initial:  []string{},
			add:      "  Отдел продаж  ",
			want:     true,
			wantList: []string{"Отдел продаж"},
		},
		{
			name:     "rejects empty string",
			initial:  []string{"Бухгалтерия"},
			add:      "",
			want:     false,
			wantList: []string{"Бухгалтерия"},
		},
		{
			name:     "rejects whitespace-only string",
			initial:  []string{"Бухгалтерия"},
			add:      "   ",
			want:     false,
			wantList: []string{"Бухгалтерия"},
		},
		{
			name:     "rejects exact duplicate",
			initial:  []string{"Бухгалтерия"},
			add:      "Бухгалтерия",
			want:     false,
			wantList: []string{"Бухгалтерия"},
		},
		{
			name:     "duplicate check is case-sensitive",
			initial:  []string{"Бухгалтерия"},
			add:      "БУХГАЛТЕРИЯ",
			want:     true,
			wantList: []string{"Бухгалтерия", "БУХГАЛТЕРИЯ"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(tt.initial)

			assert.Equal(t, tt.want, r.Add(tt.add))
			assert.Equal(t, tt.wantList, r.List())
		})
	}
}

func TestRegistry_AddIsIdempotent(t *testing.T) {
	r := NewRegistry(nil)

	require.True(t, r.Add(" Купер "))
	require.False(t, r.Add("Купер"))

	assert.Equal(t, []string{"Купер"}, r.List())
}

func TestRegistry_Remove(t *testing.T) {
	r := NewRegistry([]string{"Купер", "Фарма", "Бухгалтерия"})

	assert.True(t, r.Remove("Фарма"))
	assert.Equal(t, []string{"Купер", "Бухгалтерия"}, r.List())

	assert.False(t, r.Remove("Фарма"))
	assert.False(t, r.Remove("несуществующий"))
	assert.Equal(t, []string{"Купер", "Бухгалтерия"}, r.List())
}

func TestRegistry_ListReturnsCopy(t *testing.T) {
	r := NewRegistry([]string{"Купер", "Фарма"})

	list := r.List()
	list[0] = "испорчено"

	assert.Equal(t, []string{"Купер", "Фарма"}, r.List())
}

func TestRegistry_Contains(t *testing.T) {
	r := NewRegistry([]string{"Бухгалтерия"})

	assert.True(t, r.Contains("Бухгалтерия"))
	assert.False(t, r.Contains("бухгалтерия"))
	assert.False(t, r.Contains("Отдел продаж"))
}

func TestRegistry_InsertionOrderPreserved(t *testing.T) {
	r := NewRegistry(nil)

	for _, name := range []string{"в", "а", "б"} {
		require.True(t, r.Add(name))
	}

	assert.Equal(t, []string{"в", "а", "б"}, r.List())
}
