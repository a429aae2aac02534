package common

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	MinGuessConfidence = 0
	MaxGuessConfidence = 100
)

type Config struct {
	LogLevel        string
	LogFormat       string
	GuessConfidence int
}

// LoadConfig reads an optional .env file and then the FIXUTF8_* variables.
func LoadConfig() *Config {
	_ = godotenv.Load()

	confidence := getEnvInt("FIXUTF8_GUESS_CONFIDENCE", 50)
	if confidence > MaxGuessConfidence {
		confidence = MaxGuessConfidence
	} else if confidence < MinGuessConfidence {
		confidence = MinGuessConfidence
	}

	return &Config{
		LogLevel:        getEnv("FIXUTF8_LOG_LEVEL", "INFO"),
		LogFormat:       getEnv("FIXUTF8_LOG_FORMAT", "TEXT"),
		GuessConfidence: confidence,
	}
}

// SetupLogger builds the diagnostics logger. Status lines for the user are
// printed separately, so w is normally stderr.
func SetupLogger(cfg *Config, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToUpper(cfg.LogLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: level}

	if strings.ToUpper(cfg.LogFormat) == "JSON" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
