// Package router assembles the chi route tree for the chatbot API.
package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nicolas2456/Escaleras-Ferre/internal/conversation"
	httpmiddleware "github.com/nicolas2456/Escaleras-Ferre/internal/http/middleware"
	"github.com/nicolas2456/Escaleras-Ferre/internal/stats"
	"github.com/nicolas2456/Escaleras-Ferre/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger             *logging.Logger
	ChatHandler        *conversation.Handler
	StatsHandler       *stats.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
	EmergencyContact   string
}

// New creates the chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Compress(5))
	r.Use(httpmiddleware.Recoverer(cfg.Logger, cfg.EmergencyContact))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/", cfg.StatsHandler.Banner)
	r.Get("/health", cfg.StatsHandler.Health)
	r.Post("/chat", cfg.ChatHandler.Chat)
	r.Get("/stats", cfg.StatsHandler.GetStats)
	r.Post("/stats/reset", cfg.StatsHandler.Reset)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": "Ruta no encontrada",
			"rutas_disponibles": []string{
				"GET /",
				"GET /health",
				"POST /chat",
				"GET /stats",
				"POST /stats/reset",
			},
		})
	})

	return r
}
