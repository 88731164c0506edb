package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/Artexxx/HR-Support-Bot/internal/dto"
)

const sendMessageTimeout = 10 * time.Second

type httpDoer interface {
	DoTimeout(req *fasthttp.Request, resp *fasthttp.Response, timeout time.Duration) error
}

// TelegramSender отправляет сообщения через Telegram Bot API.
type TelegramSender struct {
	client  httpDoer
	baseURL string
	log     zerolog.Logger
}

func NewTelegramSender(token string, log zerolog.Logger) *TelegramSender {
	return &TelegramSender{
		client:  &fasthttp.Client{Name: "hr-support-bot"},
		baseURL: "https://api.telegram.org/bot" + token,
		log:     log.With().Str("component", "TelegramSender").Logger(),
	}
}

type sendMessageRequest struct {
	ChatID      int64               `json:"chat_id"`
	Text        string              `json:"text"`
	ParseMode   string              `json:"parse_mode"`
	ReplyMarkup *dto.InlineKeyboard `json:"reply_markup,omitempty"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (t *TelegramSender) SendMessage(ctx context.Context, chatID int64, text string, keyboard *dto.InlineKeyboard) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   "HTML",
		ReplyMarkup: keyboard,
	})
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	// DoTimeout сам поддержку контекста не даёт; запрос уходит в горутину,
	// чтобы остановка консьюмера не ждала весь таймаут.
	done := make(chan error, 1)
	go func() {
		done <- t.post(body)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return err
		}
	}

	t.log.Info().Int64("chat_id", chatID).Int("bytes", len(text)).Msg("message delivered")

	return nil
}

func (t *TelegramSender) post(body []byte) error {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(t.baseURL + "/sendMessage")
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json; charset=utf-8")
	req.SetBody(body)

	if err := t.client.DoTimeout(req, resp, sendMessageTimeout); err != nil {
		return fmt.Errorf("client.DoTimeout: %w", err)
	}

	var out apiResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return fmt.Errorf("telegram api: status %d: %w", resp.StatusCode(), err)
	}

	if !out.OK {
		return fmt.Errorf("telegram api: status %d: %s", resp.StatusCode(), out.Description)
	}

	return nil
}
