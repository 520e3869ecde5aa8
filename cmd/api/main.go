package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nicolas2456/Escaleras-Ferre/internal/api/router"
	"github.com/nicolas2456/Escaleras-Ferre/internal/catalog"
	"github.com/nicolas2456/Escaleras-Ferre/internal/chatbot"
	appconfig "github.com/nicolas2456/Escaleras-Ferre/internal/config"
	"github.com/nicolas2456/Escaleras-Ferre/internal/conversation"
	"github.com/nicolas2456/Escaleras-Ferre/internal/observability/metrics"
	"github.com/nicolas2456/Escaleras-Ferre/internal/stats"
	"github.com/nicolas2456/Escaleras-Ferre/pkg/logging"
)

const version = "2.0.0"

func main() {
	// A missing .env is fine in production; env vars win either way.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting escaleras-ferre chatbot API",
		"env", cfg.Env,
		"port", cfg.Port,
		"model", cfg.GroqModel,
	)

	cat := catalog.Default()
	kb := chatbot.NewKnowledgeBase(catalog.CannedResponses())
	gate := chatbot.NewGate(kb)
	handoff := chatbot.NewHandoffGenerator(cat)

	tracker := stats.NewTracker()
	registry := prometheus.NewRegistry()
	chatMetrics := metrics.NewChatMetrics(registry)

	var llm conversation.LLMClient
	if cfg.GroqAPIKey != "" {
		client, err := conversation.NewGroqClient(cfg.GroqAPIKey, cfg.GroqBaseURL)
		if err != nil {
			logger.Error("failed to build Groq client", "error", err)
			os.Exit(1)
		}
		llm = client
	} else {
		logger.Warn("GROQ_API_KEY not set, AI responses disabled")
	}

	service := conversation.NewService(cat, kb, gate, handoff, llm, tracker, chatMetrics, conversation.Options{
		Model:         cfg.GroqModel,
		HistoryWindow: cfg.HistoryWindow,
		LLMTimeout:    cfg.LLMTimeout,
	}, logger)

	chatHandler := conversation.NewHandler(service, cfg.MaxMessageChars, logger)
	statsHandler := stats.NewHandler(tracker, cfg.Env, version, logger)

	bogota, _ := cat.ContactByKey("bogota")
	bucaramanga, _ := cat.ContactByKey("bucaramanga")
	emergencyContact := fmt.Sprintf("Para atención inmediata contacta: 📱 Bogotá %s / 📱 Bucaramanga %s",
		bogota.Phone, bucaramanga.Phone)

	r := router.New(&router.Config{
		Logger:             logger,
		ChatHandler:        chatHandler,
		StatsHandler:       statsHandler,
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		EmergencyContact:   emergencyContact,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}
