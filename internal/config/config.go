package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/leengari/constrec/internal/logging"
)

// Config aggregates every setting of the binary
type Config struct {
	LogLevel slog.Level
	SeqURL   string
	Prompt   string
}

// Load reads configuration from the environment.
// Call godotenv.Load first to pick up a .env file.
func Load() (*Config, error) {
	level, err := loadLogLevel()
	if err != nil {
		return nil, err
	}

	prompt, ok := os.LookupEnv("CONSTREC_PROMPT")
	if !ok {
		prompt = "> "
	}

	return &Config{
		LogLevel: level,
		SeqURL:   strings.TrimSpace(os.Getenv("CONSTREC_SEQ_URL")),
		Prompt:   prompt,
	}, nil
}

func loadLogLevel() (slog.Level, error) {
	raw := strings.TrimSpace(os.Getenv("CONSTREC_LOG_LEVEL"))
	if raw == "" {
		return slog.LevelInfo, nil
	}
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid CONSTREC_LOG_LEVEL value: %q", raw)
	}
	return level, nil
}

// LoggingOptions converts the config into logger setup options
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{Level: c.LogLevel, SeqURL: c.SeqURL}
}
