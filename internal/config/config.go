package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	Redis      RedisConfig
	Postgres   PostgresConfig
	Media      MediaConfig
	Generation GenerationConfig
	Logging    LoggingConfig
}

type OpenAIConfig struct {
	APIKey     string
	TextModel  string
	ImageModel string
}

type GeminiConfig struct {
	APIKey         string
	Model          string
	EnableFallback bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type MediaConfig struct {
	Dir string
}

type GenerationConfig struct {
	DefaultPlatform string
	DefaultStyle    string
	MaxSlides       int
	ImageWorkers    int
	BrandColors     []string
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		OpenAI: OpenAIConfig{
			APIKey:     getEnv("OPENAI_API_KEY", ""),
			TextModel:  getEnv("OPENAI_TEXT_MODEL", "gpt-4.1-mini"),
			ImageModel: getEnv("OPENAI_IMAGE_MODEL", "gpt-image-1"),
		},
		Gemini: GeminiConfig{
			APIKey:         getEnv("GEMINI_API_KEY", ""),
			Model:          getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			EnableFallback: getEnvBool("GEMINI_ENABLE_FALLBACK", true),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "carousel"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			Database: getEnv("POSTGRES_DB", "carousel"),
		},
		Media: MediaConfig{
			Dir: getEnv("MEDIA_DIR", "media"),
		},
		Generation: GenerationConfig{
			DefaultPlatform: getEnv("DEFAULT_PLATFORM", "instagram"),
			DefaultStyle:    getEnv("DEFAULT_STYLE", "modern"),
			MaxSlides:       getEnvInt("MAX_SLIDES", 10),
			ImageWorkers:    getEnvInt("IMAGE_WORKERS", 3),
			BrandColors:     parseCommaSeparated(getEnv("BRAND_COLORS", "")),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.Gemini.EnableFallback && c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required when GEMINI_ENABLE_FALLBACK is on")
	}
	if c.Generation.MaxSlides < 1 {
		return fmt.Errorf("MAX_SLIDES must be at least 1")
	}
	if c.Generation.ImageWorkers < 1 {
		return fmt.Errorf("IMAGE_WORKERS must be at least 1")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func parseCommaSeparated(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
