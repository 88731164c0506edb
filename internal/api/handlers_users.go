package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/valyala/fasthttp"

	"github.com/Artexxx/HR-Support-Bot/internal/dto"
)

// @Summary Список зарегистрированных сотрудников
// @Tags    Users
// @Produce json
// @Success 200 {array} dto.User
// @Failure 500 {object} errorResponse "Внутренняя ошибка"
// @Router  /users [get]
func (s *Service) listUsers(ctx *fasthttp.RequestCtx) {
	rows, err := s.users.ListAll(ctx)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("usersRepository.ListAll: %w", err))
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, rows)
}

// @Summary Получить сотрудника по telegram_id
// @Tags    Users
// @Produce json
// @Param   telegram_id path int true "Идентификатор пользователя в Telegram"
// @Success 200 {object} dto.User
// @Failure 404 {object} errorResponse "user not found"
// @Failure 500 {object} errorResponse "Внутренняя ошибка"
// @Router  /users/{telegram_id} [get]
func (s *Service) getUser(ctx *fasthttp.RequestCtx) {
	telegramID, parsed := pathTelegramID(ctx)
	if !parsed {
		return
	}

	row, err := s.users.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			writeError(ctx, fasthttp.StatusNotFound, ErrUserNotFound)
			return
		}

		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("usersRepository.GetByTelegramID: %w", err))
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, row)
}

type setRoleReq struct {
	Role string `json:"role" example:"hr"` // user | hr | admin
}

type setActiveReq struct {
	IsActive bool `json:"is_active" example:"false"`
}

type addTPointsReq struct {
	Points int `json:"points" example:"100"` // Может быть отрицательным (списание)
}

// @Summary Назначить роль сотруднику
// @Tags    Users
// @Accept  json
// @Produce json
// @Param   telegram_id path int true "Идентификатор пользователя в Telegram"
// @Param   request body setRoleReq true "Новая роль"
// @Success 200 {object} okResponse
// @Failure 400 {object} errorResponse "недопустимая роль"
// @Failure 404 {object} errorResponse "user not found"
// @Router  /users/{telegram_id}/role [post]
func (s *Service) setUserRole(ctx *fasthttp.RequestCtx) {
	telegramID, parsed := pathTelegramID(ctx)
	if !parsed {
		return
	}

	var req setRoleReq
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Errorf("json.Unmarshal: %w", err))
		return
	}

	switch req.Role {
	case dto.RoleUser, dto.RoleHR, dto.RoleAdmin:
	default:
		writeError(ctx, fasthttp.StatusBadRequest, ErrRoleInvalid)
		return
	}

	if err := s.users.SetRole(ctx, telegramID, req.Role); err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			writeError(ctx, fasthttp.StatusNotFound, ErrUserNotFound)
			return
		}

		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("usersRepository.SetRole: %w", err))
		return
	}

	ok(ctx, "Роль обновлена")
}

// @Summary Включить или отключить сотрудника
// @Tags    Users
// @Accept  json
// @Produce json
// @Param   telegram_id path int true "Идентификатор пользователя в Telegram"
// @Param   request body setActiveReq true "Флаг активности"
// @Success 200 {object} okResponse
// @Failure 404 {object} errorResponse "user not found"
// @Router  /users/{telegram_id}/active [post]
func (s *Service) setUserActive(ctx *fasthttp.RequestCtx) {
	telegramID, parsed := pathTelegramID(ctx)
	if !parsed {
		return
	}

	var req setActiveReq
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Errorf("json.Unmarshal: %w", err))
		return
	}

	if err := s.users.SetActive(ctx, telegramID, req.IsActive); err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			writeError(ctx, fasthttp.StatusNotFound, ErrUserNotFound)
			return
		}

		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("usersRepository.SetActive: %w", err))
		return
	}

	ok(ctx, "Статус обновлён")
}

// @Summary Начислить или списать T-Points
// @Tags    Users
// @Accept  json
// @Produce json
// @Param   telegram_id path int true "Идентификатор пользователя в Telegram"
// @Param   request body addTPointsReq true "Изменение баланса"
// @Success 200 {object} okResponse
// @Failure 404 {object} errorResponse "user not found"
// @Router  /users/{telegram_id}/tpoints [post]
func (s *Service) addUserTPoints(ctx *fasthttp.RequestCtx) {
	telegramID, parsed := pathTelegramID(ctx)
	if !parsed {
		return
	}

	var req addTPointsReq
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Errorf("json.Unmarshal: %w", err))
		return
	}

	if err := s.users.AddTPoints(ctx, telegramID, req.Points); err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			writeError(ctx, fasthttp.StatusNotFound, ErrUserNotFound)
			return
		}

		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("usersRepository.AddTPoints: %w", err))
		return
	}

	ok(ctx, "Баланс обновлён")
}

// pathTelegramID достаёт telegram_id из пути; при ошибке сам пишет 400.
func pathTelegramID(ctx *fasthttp.RequestCtx) (int64, bool) {
	raw, _ := ctx.UserValue("telegram_id").(string)

	telegramID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || telegramID == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, ErrTelegramIDRequired)
		return 0, false
	}

	return telegramID, true
}
