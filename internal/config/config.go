package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Base URL of the design assistant backend.
	ServerURL string
	// Theme for the interactive UI: "light" or "dark".
	Theme string
	// LogFile receives debug logs; the TUI owns the terminal, so nothing is
	// logged to stderr while it runs.
	LogFile string
	Debug   bool
}

func Load() Config {
	_ = godotenv.Load()
	return Config{
		ServerURL: getEnvDefault("DOBBY_SERVER_URL", "http://127.0.0.1:5000"),
		Theme:     getEnvDefault("DOBBY_THEME", "dark"),
		LogFile:   getEnvDefault("DOBBY_LOG_FILE", ""),
		Debug:     getEnvBoolDefault("DOBBY_DEBUG", false),
	}
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBoolDefault(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return def
}
