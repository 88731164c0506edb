package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/Artexxx/HR-Support-Bot/internal/dto"
	"github.com/Artexxx/HR-Support-Bot/internal/onboarding"
)

type fieldInputReq struct {
	Text string `json:"text" example:"Иванов Иван Иванович"` // Сырой ввод пользователя
}

type departmentSelectReq struct {
	CallbackData string `json:"callback_data" example:"dept:Бухгалтерия"` // Токен нажатой кнопки
}

type completeOnboardingReq struct {
	TelegramID int64  `json:"telegram_id" example:"123456789"`         // Идентификатор пользователя в Telegram
	Username   string `json:"username" example:"ivanov_ii"`            // Username ("" — не указан)
	Fullname   string `json:"fullname" example:"Иванов Иван Иванович"` // Каноническое ФИО из шага валидации
	BirthDate  string `json:"birth_date" example:"15.03.1990"`         // ДД.ММ.ГГГГ, "" — пропущена
	HireDate   string `json:"hire_date" example:"01.09.2023"`          // ДД.ММ.ГГГГ
	Department string `json:"department" example:"Бухгалтерия"`        // "" — пропущен
}

// @Summary Валидация ФИО
// @Tags    Onboarding
// @Accept  json
// @Produce json
// @Param   request body fieldInputReq true "Ввод пользователя"
// @Success 200 {object} dto.NameResult
// @Failure 400 {object} errorResponse
// @Router  /onboarding/fullname [post]
func (s *Service) validateFullname(ctx *fasthttp.RequestCtx) {
	var req fieldInputReq

	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Errorf("json.Unmarshal: %w", err))
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, s.onboarding.ValidateFullname(req.Text))
}

// @Summary Валидация даты рождения (можно пропустить)
// @Tags    Onboarding
// @Accept  json
// @Produce json
// @Param   request body fieldInputReq true "Ввод пользователя либо слово пропуска"
// @Success 200 {object} dto.BirthDateResult
// @Failure 400 {object} errorResponse
// @Router  /onboarding/birth-date [post]
func (s *Service) validateBirthDate(ctx *fasthttp.RequestCtx) {
	var req fieldInputReq

	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Errorf("json.Unmarshal: %w", err))
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, s.onboarding.ValidateBirthDate(req.Text))
}

// @Summary Валидация даты трудоустройства
// @Tags    Onboarding
// @Accept  json
// @Produce json
// @Param   request body fieldInputReq true "Ввод пользователя"
// @Success 200 {object} dto.HireDateResult
// @Failure 400 {object} errorResponse
// @Router  /onboarding/hire-date [post]
func (s *Service) validateHireDate(ctx *fasthttp.RequestCtx) {
	var req fieldInputReq

	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Errorf("json.Unmarshal: %w", err))
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, s.onboarding.ValidateHireDate(req.Text))
}

// @Summary Обработка выбора отдела (только кнопки)
// @Tags    Onboarding
// @Accept  json
// @Produce json
// @Param   request body departmentSelectReq true "Callback-токен вида dept:<значение>"
// @Success 200 {object} dto.DepartmentResult
// @Failure 400 {object} errorResponse
// @Router  /onboarding/department [post]
func (s *Service) selectDepartment(ctx *fasthttp.RequestCtx) {
	var req departmentSelectReq

	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Errorf("json.Unmarshal: %w", err))
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, s.onboarding.ProcessDepartmentSelection(req.CallbackData))
}

// @Summary Завершение онбординга
// @Tags    Onboarding
// @Accept  json
// @Produce json
// @Param   request body completeOnboardingReq true "Собранные за диалог поля"
// @Success 200 {object} dto.CompletionResult
// @Failure 400 {object} errorResponse "VALIDATION ERROR — несогласованный набор полей"
// @Router  /onboarding/complete [post]
func (s *Service) completeOnboarding(ctx *fasthttp.RequestCtx) {
	var req completeOnboardingReq

	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Errorf("json.Unmarshal: %w", err))
		return
	}

	if msg := validateCompleteRequest(req); msg != "" {
		writeError(ctx, fasthttp.StatusBadRequest, errors.New(msg))
		return
	}

	data := dto.OnboardingData{
		Fullname:   strings.TrimSpace(req.Fullname),
		Department: req.Department,
	}

	if trimmed := strings.TrimSpace(req.BirthDate); trimmed != "" {
		birthDate, _ := time.Parse(onboarding.DateLayout, trimmed)
		data.BirthDate = &birthDate
	}

	hireDate, _ := time.Parse(onboarding.DateLayout, strings.TrimSpace(req.HireDate))
	data.HireDate = &hireDate

	result := s.onboarding.Complete(ctx, req.TelegramID, req.Username, data)

	writeJSON(ctx, fasthttp.StatusOK, result)
}

// @Summary Приветственный текст первого шага онбординга
// @Tags    Onboarding
// @Produce json
// @Success 200 {object} textResponse
// @Router  /onboarding/welcome [get]
func (s *Service) welcomeHandler(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, textResponse{Text: onboarding.WelcomeText()})
}

type completionMessageReq struct {
	TelegramID int64 `json:"telegram_id" example:"123456789"` // Идентификатор пользователя в Telegram
}

// @Summary Итоговое сообщение после успешной регистрации
// @Tags    Onboarding
// @Accept  json
// @Produce json
// @Param   request body completionMessageReq true "Зарегистрированный пользователь"
// @Success 200 {object} textResponse
// @Failure 404 {object} errorResponse "user not found"
// @Router  /onboarding/completion-message [post]
func (s *Service) completionMessage(ctx *fasthttp.RequestCtx) {
	var req completionMessageReq

	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Errorf("json.Unmarshal: %w", err))
		return
	}

	if req.TelegramID == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, ErrTelegramIDRequired)
		return
	}

	user, err := s.users.GetByTelegramID(ctx, req.TelegramID)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			writeError(ctx, fasthttp.StatusNotFound, ErrUserNotFound)
			return
		}

		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("usersRepository.GetByTelegramID: %w", err))
		return
	}

	text := onboarding.FormatCompletionMessage(
		dto.OnboardingData{
			Fullname:   user.Fullname,
			BirthDate:  user.BirthDate,
			HireDate:   user.HireDate,
			Department: user.Department,
		},
		onboarding.ExtractFirstName(user.Fullname),
		user.TPoints,
	)

	writeJSON(ctx, fasthttp.StatusOK, textResponse{Text: text})
}
