package consumer

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Artexxx/HR-Support-Bot/internal/dto"
)

func TestRenderNewEmployeeText(t *testing.T) {
	got := renderNewEmployeeText(NewEmployeePayload{
		TelegramID: 123456789,
		Username:   "ivanov_ii",
		Fullname:   "Иванов Иван Иванович",
		BirthDate:  "1990-03-15",
		HireDate:   "2023-09-01",
		Department: "Бухгалтерия",
	})

	assert.Contains(t, got, "👤 <b>Новый сотрудник в системе!</b>")
	assert.Contains(t, got, "🆔 ID: <code>123456789</code>")
	assert.Contains(t, got, "👤 Имя: Иванов Иван Иванович")
	assert.Contains(t, got, "💬 Username: @ivanov_ii")
	assert.Contains(t, got, "🎂 Дата рождения: 15.03.1990")
	assert.Contains(t, got, "💼 Дата трудоустройства: 01.09.2023")
	assert.Contains(t, got, "🏢 Отдел: Бухгалтерия")
}

func TestRenderNewEmployeeTextSkippedFields(t *testing.T) {
	got := renderNewEmployeeText(NewEmployeePayload{
		TelegramID: 42,
		Fullname:   "Иванов Иван",
		HireDate:   "2023-09-01",
	})

	assert.Contains(t, got, "💬 Username: @не указан")
	assert.Contains(t, got, "🎂 Дата рождения: ❌ не указана")
	assert.Contains(t, got, "🏢 Отдел: ❌ не указан")
}

type fakeUsersRepo struct {
	users []dto.User
	err   error
}

func (f *fakeUsersRepo) ListHRAndAdmins(_ context.Context) ([]dto.User, error) {
	return f.users, f.err
}

type fakeJournal struct {
	records []dto.NotificationRecord
	err     error
}

func (f *fakeJournal) Insert(_ context.Context, rec dto.NotificationRecord) error {
	f.records = append(f.records, rec)
	return f.err
}

type fakeSender struct {
	failFor map[int64]error
	sent    []int64
}

func (f *fakeSender) SendMessage(_ context.Context, chatID int64, _ string, _ *dto.InlineKeyboard) error {
	if err, bad := f.failFor[chatID]; bad {
		return err
	}

	f.sent = append(f.sent, chatID)
	return nil
}

func TestProcessNewEmployee(t *testing.T) {
	payload := NewEmployeePayload{TelegramID: 42, Fullname: "Иванов Иван", HireDate: "2023-09-01"}

	t.Run("delivers to every hr chat and journals", func(t *testing.T) {
		journal := &fakeJournal{}
		sender := &fakeSender{}
		h := &handler{
			users:   &fakeUsersRepo{users: []dto.User{{TelegramID: 1}, {TelegramID: 2}}},
			journal: journal,
			sender:  sender,
			log:     zerolog.Nop(),
		}

		h.processNewEmployee(context.Background(), payload)

		assert.Equal(t, []int64{1, 2}, sender.sent)
		require.Len(t, journal.records, 2)
		assert.True(t, journal.records[0].Delivered)
		assert.Equal(t, int64(42), journal.records[0].EmployeeID)
		assert.Equal(t, "new_employee", journal.records[0].Kind)
	})

	t.Run("one failed chat does not stop the rest", func(t *testing.T) {
		journal := &fakeJournal{}
		sender := &fakeSender{failFor: map[int64]error{1: errors.New("blocked")}}
		h := &handler{
			users:   &fakeUsersRepo{users: []dto.User{{TelegramID: 1}, {TelegramID: 2}}},
			journal: journal,
			sender:  sender,
			log:     zerolog.Nop(),
		}

		h.processNewEmployee(context.Background(), payload)

		assert.Equal(t, []int64{2}, sender.sent)
		require.Len(t, journal.records, 2)
		assert.False(t, journal.records[0].Delivered)
		assert.Equal(t, "blocked", journal.records[0].Error)
		assert.True(t, journal.records[1].Delivered)
	})

	t.Run("no recipients is a no-op", func(t *testing.T) {
		sender := &fakeSender{}
		h := &handler{
			users:   &fakeUsersRepo{},
			journal: &fakeJournal{},
			sender:  sender,
			log:     zerolog.Nop(),
		}

		h.processNewEmployee(context.Background(), payload)

		assert.Empty(t, sender.sent)
	})

	t.Run("repository error is a no-op", func(t *testing.T) {
		sender := &fakeSender{}
		h := &handler{
			users:   &fakeUsersRepo{err: errors.New("db down")},
			journal: &fakeJournal{},
			sender:  sender,
			log:     zerolog.Nop(),
		}

		h.processNewEmployee(context.Background(), payload)

		assert.Empty(t, sender.sent)
	})
}
