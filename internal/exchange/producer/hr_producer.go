package producer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Artexxx/HR-Support-Bot/internal/dto"
)

const wireDateLayout = "2006-01-02"

// HRProducer публикует события о новых сотрудниках в Kafka.
// Доставку до HR-чатов выполняет консьюмер уведомлений.
type HRProducer struct {
	sp                sarama.SyncProducer
	topicNewEmployees string
	source            string
	log               zerolog.Logger
}

type Config struct {
	TopicNewEmployees string
	Source            string
}

func NewHRProducer(sp sarama.SyncProducer, cfg Config, log zerolog.Logger) *HRProducer {
	return &HRProducer{
		sp:                sp,
		topicNewEmployees: cfg.TopicNewEmployees,
		source:            cfg.Source,
		log:               log.With().Str("component", "HRProducer").Logger(),
	}
}

func (p *HRProducer) Close() error {
	if p == nil || p.sp == nil {
		return nil
	}
	return p.sp.Close()
}

func (p *HRProducer) NotifyNewEmployee(ctx context.Context, user *dto.User) error {
	payload := NewEmployeePayload{
		TelegramID: user.TelegramID,
		Username:   user.Username,
		Fullname:   user.Fullname,
		Department: user.Department,
	}
	if user.BirthDate != nil {
		payload.BirthDate = user.BirthDate.Format(wireDateLayout)
	}
	if user.HireDate != nil {
		payload.HireDate = user.HireDate.Format(wireDateLayout)
	}

	env := Envelope[NewEmployeePayload]{
		Kind:      "new_employee",
		MessageID: uuid.New(),
		Payload:   payload,
		Timestamp: time.Now().UTC(),
		Source:    p.source,
	}

	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal new employee payload: %w", err)
	}

	return p.send(ctx, p.topicNewEmployees, env.MessageID.String(), body, map[string]string{
		"event-kind":   "new_employee",
		"source":       p.source,
		"content-type": "application/json",
	})
}

func (p *HRProducer) send(_ context.Context, topic, key string, value []byte, headers map[string]string) error {
	if p == nil || p.sp == nil {
		return errors.New("sync producer is not initialized")
	}

	var hs []sarama.RecordHeader
	for k, v := range headers {
		hs = append(hs, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(value),
		Headers: hs,
	}

	part, off, err := p.sp.SendMessage(msg)
	if err != nil {
		p.log.Error().
			Err(err).
			Str("topic", topic).
			Str("key", key).
			Int("bytes", len(value)).
			Msg("failed to send kafka message")
		return fmt.Errorf("send kafka message: %w", err)
	}

	p.log.Info().
		Str("topic", topic).
		Str("key", key).
		Int32("partition", part).
		Int64("offset", off).
		Int("bytes", len(value)).
		Msg("kafka message sent")
	return nil
}
