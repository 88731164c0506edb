package api

import (
	"fmt"
	"strconv"

	"github.com/valyala/fasthttp"
)

const defaultNotificationsLimit = 50

// @Summary Проверка здоровья сервиса
// @Tags    Admin
// @Success 200 {object} okResponse
// @Router  /health [get]
func (s *Service) healthHandler(ctx *fasthttp.RequestCtx) {
	ok(ctx, "OK")
}

// @Summary Журнал доставки HR-уведомлений
// @Tags    Admin
// @Produce json
// @Param   limit query int false "Сколько последних записей вернуть (по умолчанию 50)"
// @Success 200 {array} dto.NotificationRecord
// @Failure 500 {object} errorResponse
// @Router  /notifications [get]
func (s *Service) listNotifications(ctx *fasthttp.RequestCtx) {
	limit := defaultNotificationsLimit
	if raw := string(ctx.QueryArgs().Peek("limit")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	rows, err := s.notifications.ListRecent(ctx, limit)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("notificationsRepository.ListRecent: %w", err))
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, rows)
}
