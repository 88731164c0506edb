package api

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Artexxx/HR-Support-Bot/internal/departments"
	"github.com/Artexxx/HR-Support-Bot/internal/dto"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
)

// @title           HR Support Bot — Onboarding API
// @version         1.0
// @description     Бэкенд HR-бота: валидация полей онбординга, справочник отделов, завершение регистрации, журнал HR-уведомлений.
//
//@license.name  MIT
// @license.url   https://opensource.org/license/mit
//
// @BasePath  /
// @schemes   http
// @accept    json
// @produce   json

type Onboarding interface {
	ValidateFullname(fullname string) dto.NameResult
	ValidateBirthDate(dateString string) dto.BirthDateResult
	ValidateHireDate(dateString string) dto.HireDateResult
	ProcessDepartmentSelection(callbackData string) dto.DepartmentResult
	Complete(ctx context.Context, telegramID int64, username string, data dto.OnboardingData) dto.CompletionResult
}

type UsersRepository interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*dto.User, error)
	ListAll(ctx context.Context) ([]dto.User, error)
	SetRole(ctx context.Context, telegramID int64, role string) error
	SetActive(ctx context.Context, telegramID int64, active bool) error
	AddTPoints(ctx context.Context, telegramID int64, points int) error
}

type NotificationsRepository interface {
	ListRecent(ctx context.Context, limit int) ([]dto.NotificationRecord, error)
}

type ServiceDeps struct {
	Port int

	Onboarding        Onboarding
	Registry          *departments.Registry
	UsersRepo         UsersRepository
	NotificationsRepo NotificationsRepository
}

type Service struct {
	r      *router.Router
	server *fasthttp.Server
	port   int

	onboarding    Onboarding
	registry      *departments.Registry
	users         UsersRepository
	notifications NotificationsRepository
}

func NewService(d ServiceDeps) *Service {
	rt := router.New()

	s := &Service{
		r:             rt,
		port:          d.Port,
		onboarding:    d.Onboarding,
		registry:      d.Registry,
		users:         d.UsersRepo,
		notifications: d.NotificationsRepo,
	}

	s.mountRoutes()

	s.server = &fasthttp.Server{
		Handler:            RecoveryMiddleware(LoggingMiddleware(CORS(s.r.Handler))),
		Name:               "hr-support-bot",
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       15 * time.Second,
		MaxRequestBodySize: 2 << 20, // 2 MiB
	}

	return s
}

func (s *Service) Start(ctx context.Context) error {
	log.Info().Int("port", s.port).Msg("Starting onboarding API")

	emergencyShutdown := make(chan error)
	go func() {
		err := s.server.ListenAndServe(fmt.Sprintf(":%d", s.port))
		emergencyShutdown <- err
	}()

	select {
	case <-ctx.Done():
		return s.server.Shutdown()
	case e := <-emergencyShutdown:
		return e
	}
}

func (s *Service) mountRoutes() {
	// Onboarding
	s.r.POST("/onboarding/fullname", s.validateFullname)
	s.r.POST("/onboarding/birth-date", s.validateBirthDate)
	s.r.POST("/onboarding/hire-date", s.validateHireDate)
	s.r.POST("/onboarding/department", s.selectDepartment)
	s.r.POST("/onboarding/complete", s.completeOnboarding)
	s.r.GET("/onboarding/welcome", s.welcomeHandler)
	s.r.POST("/onboarding/completion-message", s.completionMessage)

	// Departments
	s.r.GET("/departments", s.listDepartments)
	s.r.POST("/departments", s.addDepartment)
	s.r.DELETE("/departments/{name}", s.removeDepartment)
	s.r.GET("/departments/render", s.renderDepartments)
	s.r.GET("/departments/prompt", s.departmentPrompt)

	// Users
	s.r.GET("/users", s.listUsers)
	s.r.GET("/users/{telegram_id}", s.getUser)
	s.r.POST("/users/{telegram_id}/role", s.setUserRole)
	s.r.POST("/users/{telegram_id}/active", s.setUserActive)
	s.r.POST("/users/{telegram_id}/tpoints", s.addUserTPoints)

	// Admin & Health
	s.r.GET("/notifications", s.listNotifications)
	s.r.GET("/health", s.healthHandler)
}
