package consumer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

type fakeDoer struct {
	respBody string
	err      error
	block    chan struct{}

	lastURI  string
	lastBody []byte
}

func (f *fakeDoer) DoTimeout(req *fasthttp.Request, resp *fasthttp.Response, _ time.Duration) error {
	if f.block != nil {
		<-f.block
	}

	f.lastURI = req.URI().String()
	f.lastBody = append([]byte(nil), req.Body()...)

	if f.err != nil {
		return f.err
	}

	resp.SetStatusCode(fasthttp.StatusOK)
	resp.SetBody([]byte(f.respBody))
	return nil
}

func newTestSender(doer *fakeDoer) *TelegramSender {
	return &TelegramSender{
		client:  doer,
		baseURL: "https://api.telegram.org/botTOKEN",
		log:     zerolog.Nop(),
	}
}

func TestSendMessage(t *testing.T) {
	doer := &fakeDoer{respBody: `{"ok":true}`}
	sender := newTestSender(doer)

	err := sender.SendMessage(context.Background(), 42, "<b>привет</b>", nil)

	require.NoError(t, err)
	assert.Equal(t, "https://api.telegram.org/botTOKEN/sendMessage", doer.lastURI)

	var req sendMessageRequest
	require.NoError(t, json.Unmarshal(doer.lastBody, &req))
	assert.Equal(t, int64(42), req.ChatID)
	assert.Equal(t, "<b>привет</b>", req.Text)
	assert.Equal(t, "HTML", req.ParseMode)
	assert.Nil(t, req.ReplyMarkup)
}

func TestSendMessageAPIError(t *testing.T) {
	doer := &fakeDoer{respBody: `{"ok":false,"description":"Bad Request: chat not found"}`}
	sender := newTestSender(doer)

	err := sender.SendMessage(context.Background(), 42, "текст", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestSendMessageCancelledContext(t *testing.T) {
	block := make(chan struct{})
	defer close(block)

	sender := newTestSender(&fakeDoer{respBody: `{"ok":true}`, block: block})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sender.SendMessage(ctx, 42, "текст", nil)

	require.ErrorIs(t, err, context.Canceled)
}
