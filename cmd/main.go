package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Artexxx/HR-Support-Bot/internal/api"
	"github.com/Artexxx/HR-Support-Bot/internal/config"
	"github.com/Artexxx/HR-Support-Bot/internal/departments"
	"github.com/Artexxx/HR-Support-Bot/internal/exchange/consumer"
	"github.com/Artexxx/HR-Support-Bot/internal/exchange/producer"
	"github.com/Artexxx/HR-Support-Bot/internal/onboarding"
	"github.com/Artexxx/HR-Support-Bot/internal/repository/notifications"
	"github.com/Artexxx/HR-Support-Bot/internal/repository/users"
	"github.com/Artexxx/HR-Support-Bot/library/pg"
	"github.com/Artexxx/HR-Support-Bot/library/yamlreader"

	"github.com/IBM/sarama"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(rootCtx)
	defer cancel()

	cfg := MustNewConfig(parseFlags())

	log.Info().Msgf("pg=%+v", cfg.Postgres.Conn.Value)
	log.Info().Msgf("kafka=%+v", cfg.Kafka.Bootstrap.Value)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimeFieldFormat = time.RFC3339

	pgClient, err := pg.NewPG(rootCtx, cfg.Postgres.Conn.Value, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres init failed")
	}
	defer pgClient.Close()

	usersRepo := users.NewRepository(pgClient.Pool())
	notificationsRepo := notifications.NewRepository(pgClient.Pool())

	// Справочник отделов создаётся один раз здесь и передаётся по ссылке:
	// глобального состояния нет, политика конкурентности у реестра своя.
	initial := cfg.Departments
	if len(initial) == 0 {
		initial = departments.DefaultDepartments
	}
	registry := departments.NewRegistry(initial)

	hrProducer, err := initHRProducer(cfg.Kafka)
	if err != nil {
		log.Fatal().Err(err).Msg("kafka producer init failed")
	}
	defer func() { _ = hrProducer.Close() }()

	onboardingService := onboarding.NewService(usersRepo, hrProducer, registry, log.Logger)

	apiService := api.NewService(api.ServiceDeps{
		Port:              cfg.BotAPI.Port.Value,
		Onboarding:        onboardingService,
		Registry:          registry,
		UsersRepo:         usersRepo,
		NotificationsRepo: notificationsRepo,
	})

	telegramSender := consumer.NewTelegramSender(cfg.Telegram.BotToken.Value, log.Logger)
	consumerNotifications := consumer.NewNotificationsRunner(
		cfg.Kafka.Bootstrap.Value,
		cfg.Kafka.Topics.NewEmployees.Value,
		"consumer_notifications",
		usersRepo,
		notificationsRepo,
		telegramSender,
		log.Logger,
	)

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info().Msg("запуск HTTP API")
		if err := apiService.Start(gctx); err != nil {
			log.Error().Err(err).Msg("HTTP API завершился с ошибкой")

			return err
		}

		log.Info().Msg("HTTP API остановлен")

		return nil
	})

	// Consumer notifications
	group.Go(func() error {
		log.Info().Msg("запуск consumer_notifications")
		if err := consumerNotifications.Start(gctx); err != nil {
			log.Error().Err(err).Msg("consumer_notifications завершился с ошибкой")

			return err
		}

		log.Info().Msg("consumer_notifications остановлен")

		return nil
	})

	// упрощённая остановка (без таймаута)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = group.Wait()
	}()

	select {
	case <-rootCtx.Done():
		log.Info().Msg("signal received, graceful shutdown...")
		<-done
		log.Info().Msg("all services stopped")
	case <-done:
		log.Info().Msg("all services stopped")
	}
}

func initHRProducer(kafkaConfig config.KafkaConfig) (*producer.HRProducer, error) {
	sCfg := sarama.NewConfig()
	sCfg.Version = sarama.V3_3_2_0
	sCfg.Producer.Return.Successes = true
	sCfg.Producer.RequiredAcks = sarama.WaitForAll
	sCfg.Producer.Idempotent = true
	sCfg.Net.MaxOpenRequests = 1
	sCfg.Producer.Retry.Max = 5
	sCfg.Producer.Retry.Backoff = 200 * time.Millisecond

	sp, err := sarama.NewSyncProducer([]string{kafkaConfig.Bootstrap.Value}, sCfg)
	if err != nil {
		return nil, err
	}

	hrProd := producer.NewHRProducer(
		sp,
		producer.Config{
			TopicNewEmployees: kafkaConfig.Topics.NewEmployees.Value,
			Source:            "hr-support-bot",
		},
		log.Logger,
	)

	return hrProd, nil
}

func MustNewConfig(path string) *config.Config {
	cfg, err := yamlreader.NewConfig[config.Config](path)

	if err != nil {
		log.Fatal().Str("path", path).Err(err).Msg("ошибка чтения конфигурации приложения")
		return nil
	}

	return cfg
}

func parseFlags() string {
	var configPath string

	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	godotenv.Load(".env")

	if configPath == "" {
		configPath = "config/application-local.yaml"
	}
	return configPath
}
