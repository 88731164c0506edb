package api

import (
	"encoding/json"
	"errors"

	"github.com/valyala/fasthttp"
)

var (
	ErrTelegramIDRequired = errors.New("поле telegram_id не передано")
	ErrUserNotFound       = errors.New("пользователь не найден")
	ErrRoleInvalid        = errors.New("недопустимая роль: ожидается user, hr или admin")

	ErrDepartmentNameRequired = errors.New("название отдела не передано")
	ErrDepartmentExists       = errors.New("такой отдел уже есть в списке")
	ErrDepartmentNotFound     = errors.New("отдел не найден в списке")
)

type okResponse struct {
	Status string `json:"status" example:"ok"`
	Msg    string `json:"msg" example:"Готово"`
}

type textResponse struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(ctx *fasthttp.RequestCtx, statusCode int, body any) {
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.SetStatusCode(statusCode)

	_ = json.NewEncoder(ctx).Encode(body)
}

func ok(ctx *fasthttp.RequestCtx, msg string) {
	writeJSON(ctx, fasthttp.StatusOK, okResponse{Status: "ok", Msg: msg})
}

func writeError(ctx *fasthttp.RequestCtx, httpStatus int, err error) {
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.SetStatusCode(httpStatus)
	_ = json.NewEncoder(ctx).Encode(errorResponse{Code: fasthttp.StatusMessage(httpStatus), Message: err.Error()})
}
