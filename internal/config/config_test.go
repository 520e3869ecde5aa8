package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "3000" {
		t.Fatalf("port = %q, want 3000", cfg.Port)
	}
	if cfg.GroqModel != "llama-3.3-70b-versatile" {
		t.Fatalf("model = %q", cfg.GroqModel)
	}
	if cfg.GroqBaseURL != "https://api.groq.com/openai/v1" {
		t.Fatalf("base url = %q", cfg.GroqBaseURL)
	}
	if cfg.LLMTimeout != 30*time.Second {
		t.Fatalf("timeout = %v, want 30s", cfg.LLMTimeout)
	}
	if cfg.MaxMessageChars != 500 {
		t.Fatalf("max chars = %d, want 500", cfg.MaxMessageChars)
	}
	if cfg.HistoryWindow != 4 {
		t.Fatalf("history window = %d, want 4", cfg.HistoryWindow)
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		t.Fatalf("expected default CORS origins")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GROQ_MODEL", "llama-3.1-8b-instant")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("MAX_MESSAGE_CHARS", "200")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("port = %q", cfg.Port)
	}
	if cfg.GroqModel != "llama-3.1-8b-instant" {
		t.Fatalf("model = %q", cfg.GroqModel)
	}
	if cfg.LLMTimeout != 5*time.Second {
		t.Fatalf("timeout = %v", cfg.LLMTimeout)
	}
	if cfg.MaxMessageChars != 200 {
		t.Fatalf("max chars = %d", cfg.MaxMessageChars)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("origins = %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("MAX_MESSAGE_CHARS", "not-a-number")
	t.Setenv("LLM_TIMEOUT", "soon")

	cfg := Load()

	if cfg.MaxMessageChars != 500 {
		t.Fatalf("max chars = %d, want default 500", cfg.MaxMessageChars)
	}
	if cfg.LLMTimeout != 30*time.Second {
		t.Fatalf("timeout = %v, want default 30s", cfg.LLMTimeout)
	}
}
