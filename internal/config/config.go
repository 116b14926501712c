package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/medichat/medichat-client/internal/logger"
)

type Config struct {
	API     APIConfig
	Session SessionConfig
	Fitness FitnessConfig
	Logger  LoggerConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	Backend   string // "file" or "redis"
	FileDir   string
	RedisHost string
	RedisPort string
}

type FitnessConfig struct {
	DefaultWeightKg float64
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

func Load() (*Config, error) {
	timeout, err := time.ParseDuration(getEnvOrDefault("API_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_TIMEOUT: %w", err)
	}

	weight, err := strconv.ParseFloat(getEnvOrDefault("DEFAULT_WEIGHT_KG", "70"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_WEIGHT_KG: %w", err)
	}

	backend := getEnvOrDefault("SESSION_BACKEND", "file")
	if backend != "file" && backend != "redis" {
		return nil, fmt.Errorf("invalid SESSION_BACKEND %q: use \"file\" or \"redis\"", backend)
	}

	return &Config{
		API: APIConfig{
			BaseURL: getEnvOrDefault("API_BASE_URL", "http://localhost:5000"),
			Timeout: timeout,
		},
		Session: SessionConfig{
			Backend:   backend,
			FileDir:   getEnvOrDefault("SESSION_DIR", ""),
			RedisHost: getEnvOrDefault("REDIS_HOST", "localhost"),
			RedisPort: getEnvOrDefault("REDIS_PORT", "6379"),
		},
		Fitness: FitnessConfig{
			DefaultWeightKg: weight,
		},
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "logs/client.log"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}, nil
}
