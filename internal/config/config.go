package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Значения по умолчанию для необязательных параметров
const (
	DefaultAddress      = ":5000"
	DefaultDatabasePath = "neonsoul.db"

	// TokenTTL задает время жизни access token (1 день)
	TokenTTL = 24 * time.Hour
)

// Config содержит конфигурацию сервера
// Загружается один раз при старте процесса; отсутствие обязательных
// значений приводит к немедленной ошибке, а не к отказу при первом запросе
type Config struct {
	Address      string // адрес HTTP сервера, например ":5000"
	DatabasePath string // путь к файлу SQLite базы
	JWTSecret    string // секрет для подписи JWT
	OpenAIAPIKey string // API key генеративного провайдера
}

// Load читает конфигурацию из переменных окружения
// .env файл подхватывается, если присутствует рядом с бинарником
func Load() (*Config, error) {
	// Ошибку игнорируем: .env опционален, окружение имеет приоритет
	_ = godotenv.Load()

	cfg := &Config{
		Address:      getEnv("NEONSOUL_ADDRESS", DefaultAddress),
		DatabasePath: getEnv("DATABASE_PATH", DefaultDatabasePath),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate проверяет обязательные поля
func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
