package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Режимы обработки поля html_report во входящем вебхуке
const (
	ReportModeText = "text"
	ReportModeHTML = "html"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`

	// Redis Config
	RedisAddr         string        `env:"REDIS_ADDR"`
	RedisPass         string        `env:"REDIS_PASSWORD"`
	RedisDB           int           `env:"REDIS_DB" envDefault:"0"`
	LocationsCacheTTL time.Duration `env:"LOCATIONS_CACHE_TTL" envDefault:"30s"`

	// Webhook Config
	WebhookSecret  string `env:"WEBHOOK_SECRET"`
	ReportHTMLMode string `env:"REPORT_HTML_MODE" envDefault:"text"`

	// LLM Config
	OpenAIAPIKey    string        `env:"OPENAI_API_KEY"`
	OpenAIModel     string        `env:"OPENAI_MODEL" envDefault:"gpt-4"`
	SummaryCacheTTL time.Duration `env:"SUMMARY_CACHE_TTL" envDefault:"5m"`

	// PDF Config
	ChromePath string        `env:"CHROME_PATH"`
	PDFTimeout time.Duration `env:"PDF_TIMEOUT" envDefault:"30s"`

	// Dashboard Config
	MapTilesToken         string        `env:"MAP_TILES_TOKEN"`
	DashboardPollInterval time.Duration `env:"DASHBOARD_POLL_INTERVAL" envDefault:"30s"`

	// API Keys for admin endpoints
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             getEnv("LOG_FORMAT", "json"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		RedisPass:             os.Getenv("REDIS_PASSWORD"),
		RedisDB:               getEnvAsInt("REDIS_DB", 0),
		LocationsCacheTTL:     getEnvAsDuration("LOCATIONS_CACHE_TTL", 30*time.Second),
		WebhookSecret:         os.Getenv("WEBHOOK_SECRET"),
		ReportHTMLMode:        strings.ToLower(getEnv("REPORT_HTML_MODE", ReportModeText)),
		OpenAIAPIKey:          os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:           getEnv("OPENAI_MODEL", "gpt-4"),
		SummaryCacheTTL:       getEnvAsDuration("SUMMARY_CACHE_TTL", 5*time.Minute),
		ChromePath:            os.Getenv("CHROME_PATH"),
		PDFTimeout:            getEnvAsDuration("PDF_TIMEOUT", 30*time.Second),
		MapTilesToken:         os.Getenv("MAP_TILES_TOKEN"),
		DashboardPollInterval: getEnvAsDuration("DASHBOARD_POLL_INTERVAL", 30*time.Second),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		for _, key := range strings.Split(apiKeysStr, ",") {
			if key = strings.TrimSpace(key); key != "" {
				cfg.APIKeys = append(cfg.APIKeys, key)
			}
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if cfg.ReportHTMLMode != ReportModeText && cfg.ReportHTMLMode != ReportModeHTML {
		return nil, fmt.Errorf("REPORT_HTML_MODE must be %q or %q, got %q", ReportModeText, ReportModeHTML, cfg.ReportHTMLMode)
	}

	return cfg, nil
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
