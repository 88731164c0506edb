package departments

import (
	"strings"
	"sync"
)

// DefaultDepartments — стартовый список отделов для выбора при регистрации
var DefaultDepartments = []string{
	"Купер",
	"Отдел сопровождения",
	"Отдел продаж",
	"Отдел разработки",
	"Отдел тестирования",
	"Отдел техподдержки",
	"Бухгалтерия",
	"Администрация",
	"Фарма",
}

// Registry — упорядоченный список отделов.
// Читается из диалогов онбординга, меняется редкими админскими действиями,
// поэтому защищён RWMutex. Создаётся один раз в main и передаётся по ссылке.
type Registry struct {
	mu    sync.RWMutex
	names []string
}

func NewRegistry(names []string) *Registry {
	return &Registry{names: append([]string(nil), names...)}
}

// List возвращает копию списка: вызывающий не может менять внутреннее состояние.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.names...)
}

// Contains проверяет точное совпадение названия (с учётом регистра).
func (r *Registry) Contains(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, n := range r.names {
		if n == name {
			return true
		}
	}

	return false
}

// Add добавляет отдел в конец списка.
// Название обрезается по пробелам; пустые строки и точные дубликаты отклоняются.
func (r *Registry) Add(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.names {
		if n == trimmed {
			return false
		}
	}

	r.names = append(r.names, trimmed)

	return true
}

// Remove удаляет первое точное совпадение.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, n := range r.names {
		if n == name {
			r.names = append(r.names[:i], r.names[i+1:]...)
			return true
		}
	}

	return false
}
