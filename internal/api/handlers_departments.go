package api

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/Artexxx/HR-Support-Bot/internal/dto"
)

type departmentReq struct {
	Name string `json:"name" example:"Отдел аналитики"` // Название отдела
}

type departmentListResponse struct {
	Departments []string `json:"departments"`
}

type departmentPromptResponse struct {
	Text     string             `json:"text"`     // HTML-текст с нумерованным списком
	Keyboard dto.InlineKeyboard `json:"keyboard"` // Кнопки выбора, последняя — пропуск
}

// @Summary Список отделов
// @Tags    Departments
// @Produce json
// @Success 200 {object} departmentListResponse
// @Router  /departments [get]
func (s *Service) listDepartments(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, departmentListResponse{Departments: s.registry.List()})
}

// @Summary Добавить отдел (админское действие)
// @Tags    Departments
// @Accept  json
// @Produce json
// @Param   request body departmentReq true "Отдел"
// @Success 200 {object} okResponse
// @Failure 400 {object} errorResponse "пустое название"
// @Failure 409 {object} errorResponse "отдел уже есть в списке"
// @Router  /departments [post]
func (s *Service) addDepartment(ctx *fasthttp.RequestCtx) {
	var req departmentReq

	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Errorf("json.Unmarshal: %w", err))
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(ctx, fasthttp.StatusBadRequest, ErrDepartmentNameRequired)
		return
	}

	if !s.registry.Add(req.Name) {
		writeError(ctx, fasthttp.StatusConflict, ErrDepartmentExists)
		return
	}

	ok(ctx, "Отдел добавлен")
}

// @Summary Удалить отдел (админское действие)
// @Tags    Departments
// @Produce json
// @Param   name path string true "Точное название отдела"
// @Success 200 {object} okResponse
// @Failure 404 {object} errorResponse "отдел не найден"
// @Router  /departments/{name} [delete]
func (s *Service) removeDepartment(ctx *fasthttp.RequestCtx) {
	name := ctx.UserValue("name").(string)
	if strings.TrimSpace(name) == "" {
		writeError(ctx, fasthttp.StatusBadRequest, ErrDepartmentNameRequired)
		return
	}

	if !s.registry.Remove(name) {
		writeError(ctx, fasthttp.StatusNotFound, ErrDepartmentNotFound)
		return
	}

	ok(ctx, "Отдел удалён")
}

// @Summary Нумерованный список отделов для показа в чате
// @Tags    Departments
// @Produce json
// @Success 200 {object} textResponse
// @Router  /departments/render [get]
func (s *Service) renderDepartments(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, textResponse{Text: s.registry.RenderList()})
}

// @Summary Текст и клавиатура выбора отдела
// @Tags    Departments
// @Produce json
// @Success 200 {object} departmentPromptResponse
// @Router  /departments/prompt [get]
func (s *Service) departmentPrompt(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, departmentPromptResponse{
		Text:     s.registry.RenderPrompt(),
		Keyboard: s.registry.Keyboard(),
	})
}
