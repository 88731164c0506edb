package consumer

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"

	"github.com/Artexxx/HR-Support-Bot/internal/dto"
)

const kindNewEmployee = "new_employee"

type UsersRepository interface {
	ListHRAndAdmins(ctx context.Context) ([]dto.User, error)
}

type NotificationsRepository interface {
	Insert(ctx context.Context, rec dto.NotificationRecord) error
}

type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string, keyboard *dto.InlineKeyboard) error
}

// handler доставляет события о новых сотрудниках в HR-чаты.
// Доставка best-effort: нерушимых гарантий нет, каждая попытка журналируется,
// сообщение коммитится всегда — повторная доставка уведомления хуже потерянной.
type handler struct {
	users   UsersRepository
	journal NotificationsRepository
	sender  MessageSender
	log     zerolog.Logger
}

func (h *handler) Setup(_ sarama.ConsumerGroupSession) error   { return nil }
func (h *handler) Cleanup(_ sarama.ConsumerGroupSession) error { return nil }

func (h *handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		var env Envelope[NewEmployeePayload]
		if err := json.Unmarshal(msg.Value, &env); err != nil {
			h.log.Warn().
				Err(err).
				Str("topic", msg.Topic).
				Int64("offset", msg.Offset).
				Msg("invalid notification payload, skip")
			sess.MarkMessage(msg, "")
			continue
		}

		if env.Kind != kindNewEmployee {
			h.log.Warn().Str("kind", env.Kind).Msg("unknown notification kind, skip")
			sess.MarkMessage(msg, "")
			continue
		}

		h.processNewEmployee(sess.Context(), env.Payload)
		sess.MarkMessage(msg, "")
	}
	return nil
}

func (h *handler) processNewEmployee(ctx context.Context, p NewEmployeePayload) {
	recipients, err := h.users.ListHRAndAdmins(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("users.ListHRAndAdmins failed")
		return
	}

	if len(recipients) == 0 {
		h.log.Warn().Int64("telegram_id", p.TelegramID).Msg("no hr users to notify about new employee")
		return
	}

	text := renderNewEmployeeText(p)
	keyboard := hrNotificationKeyboard()

	for _, hr := range recipients {
		sendErr := h.sender.SendMessage(ctx, hr.TelegramID, text, &keyboard)

		rec := dto.NotificationRecord{
			ChatID:     hr.TelegramID,
			EmployeeID: p.TelegramID,
			Kind:       kindNewEmployee,
			Delivered:  sendErr == nil,
		}
		if sendErr != nil {
			rec.Error = sendErr.Error()
			h.log.Error().
				Err(sendErr).
				Int64("chat_id", hr.TelegramID).
				Int64("telegram_id", p.TelegramID).
				Msg("failed to deliver hr notification")
		}

		if err := h.journal.Insert(ctx, rec); err != nil {
			h.log.Error().Err(err).Int64("chat_id", hr.TelegramID).Msg("journal.Insert failed")
		}
	}
}
