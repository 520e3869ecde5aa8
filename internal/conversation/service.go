package conversation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/nicolas2456/Escaleras-Ferre/internal/catalog"
	"github.com/nicolas2456/Escaleras-Ferre/internal/chatbot"
	"github.com/nicolas2456/Escaleras-Ferre/internal/observability/metrics"
	"github.com/nicolas2456/Escaleras-Ferre/internal/stats"
	"github.com/nicolas2456/Escaleras-Ferre/pkg/logging"
)

// Response sources, reported to the client so it can distinguish canned
// answers from model completions.
const (
	SourceLocal         = "local"
	SourceLocalFallback = "local_fallback"
	SourceAI            = "ai"
	SourceEmergency     = "emergency"
	SourceErrorNoAPIKey = "error_no_api_key"
)

const fallbackText = "Te puedo ayudar con escaleras industriales. ¿Buscas fibra de vidrio o aluminio? 😊"

var serviceTracer = otel.Tracer("ferre.internal.conversation.service")

// Result is the outcome of routing one chat message.
type Result struct {
	Response string
	Source   string
	Intent   chatbot.LeadLabel
	Info     chatbot.ExtractedInfo
	Model    string
}

// Options configures a Service.
type Options struct {
	Model         string
	HistoryWindow int
	LLMTimeout    time.Duration
}

// Service routes an incoming message to a canned response, the local
// fallback, or the completion provider, and keeps the usage counters.
type Service struct {
	kb            *chatbot.KnowledgeBase
	gate          *chatbot.Gate
	handoff       *chatbot.HandoffGenerator
	llm           LLMClient
	tracker       *stats.Tracker
	metrics       *metrics.ChatMetrics
	systemPrompt  string
	model         string
	window        int
	timeout       time.Duration
	emergencyText string
	noKeyText     string
	logger        *logging.Logger
}

// NewService wires the routing service. llm may be nil when no API key is
// configured; AI-eligible messages then get the configuration-error response.
func NewService(cat *catalog.Catalog, kb *chatbot.KnowledgeBase, gate *chatbot.Gate, handoff *chatbot.HandoffGenerator, llm LLMClient, tracker *stats.Tracker, m *metrics.ChatMetrics, opts Options, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if opts.Model == "" {
		opts.Model = "llama-3.3-70b-versatile"
	}
	if opts.HistoryWindow <= 0 {
		opts.HistoryWindow = 4
	}
	if opts.LLMTimeout <= 0 {
		opts.LLMTimeout = 30 * time.Second
	}

	bogota, _ := cat.ContactByKey("bogota")
	bucaramanga, _ := cat.ContactByKey("bucaramanga")
	emergencyText := fmt.Sprintf(
		"Disculpa, tuve un problema técnico. Para atención inmediata contacta:\n\n📱 Bogotá: %s (Virtual)\n📱 Bucaramanga: %s (%s)\n\n¿Con cuál te conecto? 😊",
		bogota.Phone, bucaramanga.Phone, bucaramanga.Address)
	noKeyText := fmt.Sprintf(
		"Disculpa, hay un problema de configuración. Para atención inmediata contacta:\n📱 Bogotá: %s\n📱 Bucaramanga: %s",
		bogota.Phone, bucaramanga.Phone)

	return &Service{
		kb:            kb,
		gate:          gate,
		handoff:       handoff,
		llm:           llm,
		tracker:       tracker,
		metrics:       m,
		systemPrompt:  BuildSystemPrompt(cat),
		model:         opts.Model,
		window:        opts.HistoryWindow,
		timeout:       opts.LLMTimeout,
		emergencyText: emergencyText,
		noKeyText:     noKeyText,
		logger:        logger,
	}
}

// Route processes one validated chat message and returns the response to
// send. It never returns an error: provider failures map to the emergency
// response.
func (s *Service) Route(ctx context.Context, message string, history []ChatMessage) Result {
	ctx, span := serviceTracer.Start(ctx, "conversation.route")
	defer span.End()

	s.tracker.RecordMessage()

	// 1. Canned table first. These never hit the model.
	if canned := s.kb.LookupCanned(message); canned != "" {
		s.tracker.RecordLocal()
		s.metrics.ObserveMessage(SourceLocal)
		intent := chatbot.ClassifyIntent(message, len(history))
		span.SetAttributes(attribute.String("ferre.source", SourceLocal))
		s.logger.Info("canned response served", "intent", string(intent))
		return Result{Response: canned, Source: SourceLocal, Intent: intent}
	}

	// 2. Messages the eligibility gate rejects get the generic nudge.
	if !s.gate.Eligible(message) {
		s.tracker.RecordLocal()
		s.metrics.ObserveMessage(SourceLocalFallback)
		span.SetAttributes(attribute.String("ferre.source", SourceLocalFallback))
		return Result{Response: fallbackText, Source: SourceLocalFallback, Intent: chatbot.LeadCurious}
	}

	// 3. No provider configured.
	if s.llm == nil {
		s.metrics.ObserveMessage(SourceErrorNoAPIKey)
		span.SetAttributes(attribute.String("ferre.source", SourceErrorNoAPIKey))
		s.logger.Error("completion requested without API key")
		return Result{Response: s.noKeyText, Source: SourceErrorNoAPIKey}
	}

	// 4. Model completion.
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()
	resp, err := s.llm.Complete(callCtx, LLMRequest{
		Model:       s.model,
		Messages:    BuildMessages(s.systemPrompt, history, message, s.window),
		MaxTokens:   250,
		Temperature: 0.8,
		TopP:        0.9,
	})
	s.metrics.ObserveCompletionLatency(time.Since(started).Seconds())
	if err != nil {
		span.RecordError(err)
		s.metrics.ObserveMessage(SourceEmergency)
		s.logger.Error("completion failed", "error", err)
		return Result{Response: s.emergencyText, Source: SourceEmergency}
	}

	s.tracker.RecordAI()
	s.metrics.ObserveMessage(SourceAI)

	intent := chatbot.ClassifyIntent(message, len(history))
	info := chatbot.ExtractInfo(message)
	s.metrics.ObserveLead(string(intent))

	switch intent {
	case chatbot.LeadHot:
		s.tracker.RecordHotLead()
	case chatbot.LeadWarm, chatbot.LeadWarmHot:
		s.tracker.RecordWarmLead()
	}

	text := resp.Text
	if intent == chatbot.LeadHot || intent == chatbot.LeadWarmHot {
		if handoff := s.handoff.Generate(intent, info); handoff != "" {
			text += "\n\n" + handoff
		}
	}

	span.SetAttributes(
		attribute.String("ferre.source", SourceAI),
		attribute.String("ferre.intent", string(intent)),
		attribute.Int("ferre.tokens_total", int(resp.Usage.TotalTokens)),
	)
	s.logger.Info("completion served",
		"intent", string(intent),
		"tokens", resp.Usage.TotalTokens,
		"latency_ms", time.Since(started).Milliseconds(),
	)

	return Result{Response: text, Source: SourceAI, Intent: intent, Info: info, Model: s.model}
}
