package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	RiotAPIKey       string
	AnthropicAPIKey  string
	AnthropicModelID string
	DBPath           string
	ServerPort       string
	CORSOrigin       string
	LogLevel         string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		RiotAPIKey:       getEnv("RIOT_API_KEY", ""),
		AnthropicAPIKey:  getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModelID: getEnv("ANTHROPIC_MODEL_ID", "claude-sonnet-4-20250514"),
		DBPath:           getEnv("DB_PATH", "riftrewind.db"),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		CORSOrigin:       getEnv("CORS_ORIGIN", "http://localhost:3000"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}

	if cfg.RiotAPIKey == "" {
		return nil, fmt.Errorf("RIOT_API_KEY is required")
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("cors_origin", cfg.CORSOrigin).
		Str("log_level", cfg.LogLevel).
		Bool("recap_configured", cfg.AnthropicAPIKey != "").
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
