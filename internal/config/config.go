package config

import (
	"github.com/Artexxx/HR-Support-Bot/library/pg"
	"github.com/Artexxx/HR-Support-Bot/library/yamlenv"
)

type Config struct {
	Postgres pg.PostgresConfig `yaml:"postgres"`
	Kafka    KafkaConfig       `yaml:"kafka"`
	BotAPI   ApiConfig         `yaml:"botAPI"`
	Telegram TelegramConfig    `yaml:"telegram"`

	// Departments — стартовый список отделов; пустой — берётся встроенный.
	Departments []string `yaml:"departments"`
}

type KafkaConfig struct {
	Bootstrap        *yamlenv.Env[string] `yaml:"bootstrap"`
	ProducerClientID *yamlenv.Env[string] `yaml:"producer_client_id"`
	Topics           struct {
		NewEmployees *yamlenv.Env[string] `yaml:"new_employees"`
	} `yaml:"topics"`
}

type TelegramConfig struct {
	BotToken *yamlenv.Env[string] `yaml:"bot_token"`
}

type ApiConfig struct {
	Port *yamlenv.Env[int] `yaml:"port"`
}
