package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Connectivity probe
	ProbeURL     string        `env:"PROBE_URL" envDefault:"https://www.google.com/generate_204"`
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT" envDefault:"5s"`

	// Push (device notification) Config
	PushURL                string        `env:"PUSH_URL"`
	PushSecret             string        `env:"PUSH_SECRET"`
	PushTimeout            time.Duration `env:"PUSH_TIMEOUT" envDefault:"5s"`
	PushMaxRetries         int           `env:"PUSH_MAX_RETRIES" envDefault:"3"`
	PushBaseDelay          time.Duration `env:"PUSH_BASE_DELAY" envDefault:"1s"`
	NotificationPermission string        `env:"NOTIFICATION_PERMISSION" envDefault:"granted"`

	// Checkpoints
	CheckpointsFile string `env:"CHECKPOINTS_FILE"`

	// Tracker (foreground) Config
	ServerURL    string `env:"SERVER_URL" envDefault:"ws://localhost:8080/api/v1/ws"`
	MQTTBroker   string `env:"MQTT_BROKER" envDefault:"tcp://localhost:1883"`
	MQTTClientID string `env:"MQTT_CLIENT_ID" envDefault:"safewalk-tracker"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		ProbeURL:               getEnv("PROBE_URL", "https://www.google.com/generate_204"),
		ProbeTimeout:           getEnvAsDuration("PROBE_TIMEOUT", 5*time.Second),
		PushURL:                os.Getenv("PUSH_URL"),
		PushSecret:             os.Getenv("PUSH_SECRET"),
		PushTimeout:            getEnvAsDuration("PUSH_TIMEOUT", 5*time.Second),
		PushMaxRetries:         getEnvAsInt("PUSH_MAX_RETRIES", 3),
		PushBaseDelay:          getEnvAsDuration("PUSH_BASE_DELAY", time.Second),
		NotificationPermission: strings.ToLower(getEnv("NOTIFICATION_PERMISSION", "granted")),
		CheckpointsFile:        os.Getenv("CHECKPOINTS_FILE"),
		ServerURL:              getEnv("SERVER_URL", "ws://localhost:8080/api/v1/ws"),
		MQTTBroker:             getEnv("MQTT_BROKER", "tcp://localhost:1883"),
		MQTTClientID:           getEnv("MQTT_CLIENT_ID", "safewalk-tracker"),
	}

	if cfg.PushMaxRetries < 1 {
		return nil, fmt.Errorf("PUSH_MAX_RETRIES must be at least 1, got %d", cfg.PushMaxRetries)
	}

	switch cfg.NotificationPermission {
	case "granted", "denied":
	default:
		return nil, fmt.Errorf("NOTIFICATION_PERMISSION must be granted or denied, got %q", cfg.NotificationPermission)
	}

	return cfg, nil
}

// NotificationsGranted сообщает, разрешены ли уведомления на устройство
func (c *Config) NotificationsGranted() bool {
	return c.NotificationPermission == "granted"
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
