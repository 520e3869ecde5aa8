package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Groq completion provider. An empty API key is not fatal: the chat
	// service answers with a configuration-error response instead.
	GroqAPIKey  string
	GroqBaseURL string
	GroqModel   string

	// LLMTimeout bounds a single completion call. The original service had
	// no bound at all; 30s is the hardening default.
	LLMTimeout time.Duration

	// MaxMessageChars rejects oversized chat messages with a 400.
	MaxMessageChars int

	// HistoryWindow is how many trailing history turns are sent to the model.
	HistoryWindow int

	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "3000"),
		Env:             getEnv("ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		GroqAPIKey:      getEnv("GROQ_API_KEY", ""),
		GroqBaseURL:     getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqModel:       getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		LLMTimeout:      getEnvAsDuration("LLM_TIMEOUT", 30*time.Second),
		MaxMessageChars: getEnvAsInt("MAX_MESSAGE_CHARS", 500),
		HistoryWindow:   getEnvAsInt("HISTORY_WINDOW", 4),
		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{
			"https://nicolas2456.github.io",
			"https://escaleras-ferre.github.io",
			"http://localhost:3000",
			"http://localhost:5500",
			"http://127.0.0.1:5500",
		}),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsSlice splits a comma-separated environment variable into a slice.
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
