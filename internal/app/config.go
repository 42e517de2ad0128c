package app

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"calcpad/internal/api/http"
	"calcpad/internal/infrastructure/click"
	"calcpad/internal/infrastructure/kafka"
	"calcpad/internal/infrastructure/mongo"
	"calcpad/internal/infrastructure/pg"
	"calcpad/internal/infrastructure/redis"
	"calcpad/internal/infrastructure/sqlite"
	"calcpad/internal/pkg/logger"
	"calcpad/internal/usecase/calculator"
)

const AppName = "CALCULATOR"

// EnvFileVar — переменная с путём к .env (по умолчанию ".env" в рабочем каталоге).
const EnvFileVar = "CALCULATOR_ENV_FILE"

// Драйверы хранилища истории.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// StorageConfig — выбор бэкенда истории. Переменные: CALCULATOR_STORAGE_DRIVER.
type StorageConfig struct {
	Driver string `envconfig:"DRIVER" default:"sqlite"`
}

// Config — конфиг приложения. Заполняется через envconfig с префиксом CALCULATOR.
type Config struct {
	Log        logger.Config     `envconfig:"LOG"`
	Server     http.ServerConfig `envconfig:"SERVER"`
	Storage    StorageConfig     `envconfig:"STORAGE"`
	SQLite     sqlite.Config     `envconfig:"SQLITE"`
	Redis      redis.Config      `envconfig:"REDIS"`
	DB         pg.Config         `envconfig:"DB"`
	Mongo      mongo.Config      `envconfig:"MONGO"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
	History    calculator.Config `envconfig:"HISTORY"`
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
// Переменные окружения приоритетнее .env: godotenv.Load не перезаписывает уже заданные.
func LoadCfg() (Config, error) {
	envFile := os.Getenv(EnvFileVar)
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("config: %s не найден, используем окружение: %v", envFile, err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
