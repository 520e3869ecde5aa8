package conversation

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/nicolas2456/Escaleras-Ferre/internal/catalog"
	"github.com/nicolas2456/Escaleras-Ferre/internal/chatbot"
	"github.com/nicolas2456/Escaleras-Ferre/internal/stats"
	"github.com/nicolas2456/Escaleras-Ferre/pkg/logging"
)

// stubLLM returns a fixed response or error and records the last request.
type stubLLM struct {
	resp    LLMResponse
	err     error
	calls   int
	lastReq LLMRequest
}

func (s *stubLLM) Complete(_ context.Context, req LLMRequest) (LLMResponse, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return LLMResponse{}, s.err
	}
	return s.resp, nil
}

func newTestService(t *testing.T, llm LLMClient) (*Service, *stats.Tracker) {
	t.Helper()
	cat := catalog.Default()
	kb := chatbot.NewKnowledgeBase(catalog.CannedResponses())
	tracker := stats.NewTracker()
	logger := logging.NewWithWriter("error", io.Discard)
	svc := NewService(cat, kb, chatbot.NewGate(kb), chatbot.NewHandoffGenerator(cat), llm, tracker, nil, Options{
		Model:         "llama-3.3-70b-versatile",
		HistoryWindow: 4,
		LLMTimeout:    time.Second,
	}, logger)
	return svc, tracker
}

func TestRouteCannedResponse(t *testing.T) {
	llm := &stubLLM{resp: LLMResponse{Text: "should not be called"}}
	svc, tracker := newTestService(t, llm)

	res := svc.Route(context.Background(), "hola", nil)

	if res.Source != SourceLocal {
		t.Fatalf("source = %q, want %q", res.Source, SourceLocal)
	}
	if !strings.Contains(res.Response, "Diana") {
		t.Fatalf("unexpected canned response %q", res.Response)
	}
	if llm.calls != 0 {
		t.Fatalf("canned path must not call the provider")
	}

	snap := tracker.Snapshot()
	if snap.TotalMessages != 1 || snap.LocalResponses != 1 || snap.AIResponses != 0 {
		t.Fatalf("counters = %+v", snap)
	}
}

func TestRouteCannedBeatsEligibility(t *testing.T) {
	// "cotizacion" is both a canned phrase and an AI-worthy keyword; canned
	// must win.
	llm := &stubLLM{resp: LLMResponse{Text: "model answer"}}
	svc, _ := newTestService(t, llm)

	res := svc.Route(context.Background(), "cotizacion", nil)
	if res.Source != SourceLocal {
		t.Fatalf("source = %q, want %q", res.Source, SourceLocal)
	}
	if llm.calls != 0 {
		t.Fatalf("provider called on canned-covered message")
	}
}

func TestRouteIneligibleFallback(t *testing.T) {
	llm := &stubLLM{resp: LLMResponse{Text: "model answer"}}
	svc, tracker := newTestService(t, llm)

	res := svc.Route(context.Background(), "me gusta el futbol", nil)

	if res.Source != SourceLocalFallback {
		t.Fatalf("source = %q, want %q", res.Source, SourceLocalFallback)
	}
	if res.Intent != chatbot.LeadCurious {
		t.Fatalf("intent = %q, want Curioso", res.Intent)
	}
	if !strings.Contains(res.Response, "fibra de vidrio o aluminio") {
		t.Fatalf("unexpected fallback text %q", res.Response)
	}
	if llm.calls != 0 {
		t.Fatalf("provider called on ineligible message")
	}
	if snap := tracker.Snapshot(); snap.LocalResponses != 1 {
		t.Fatalf("fallback must count as local, got %+v", snap)
	}
}

func TestRouteNoAPIKey(t *testing.T) {
	svc, tracker := newTestService(t, nil)

	res := svc.Route(context.Background(), "necesito una escalera de 8 metros", nil)

	if res.Source != SourceErrorNoAPIKey {
		t.Fatalf("source = %q, want %q", res.Source, SourceErrorNoAPIKey)
	}
	if !strings.Contains(res.Response, "3008611868") || !strings.Contains(res.Response, "3181027047") {
		t.Fatalf("config-error response must carry both phones, got %q", res.Response)
	}
	snap := tracker.Snapshot()
	if snap.AIResponses != 0 || snap.LocalResponses != 0 {
		t.Fatalf("no-key path must not count ai or local, got %+v", snap)
	}
	if snap.TotalMessages != 1 {
		t.Fatalf("message must still be counted, got %+v", snap)
	}
}

func TestRouteAISuccess(t *testing.T) {
	llm := &stubLLM{resp: LLMResponse{Text: "Te recomiendo la extensión EF 8,60.", Usage: TokenUsage{TotalTokens: 42}}}
	svc, tracker := newTestService(t, llm)

	res := svc.Route(context.Background(), "necesito una escalera de 8 metros para trabajo electrico", nil)

	if res.Source != SourceAI {
		t.Fatalf("source = %q, want %q", res.Source, SourceAI)
	}
	if res.Model != "llama-3.3-70b-versatile" {
		t.Fatalf("model = %q", res.Model)
	}
	if res.Intent != chatbot.LeadCurious {
		t.Fatalf("intent = %q, want Curioso", res.Intent)
	}
	if res.Info.Height != "8 metros" || res.Info.ProjectType != "electrico" {
		t.Fatalf("info = %+v", res.Info)
	}
	if strings.Contains(res.Response, "WhatsApp Bogotá") {
		t.Fatalf("curious lead must not get a hand-off: %q", res.Response)
	}

	snap := tracker.Snapshot()
	if snap.AIResponses != 1 || snap.LeadsDetected != 0 {
		t.Fatalf("counters = %+v", snap)
	}
}

func TestRouteHotLeadHandoff(t *testing.T) {
	llm := &stubLLM{resp: LLMResponse{Text: "¡Claro!"}}
	svc, tracker := newTestService(t, llm)

	res := svc.Route(context.Background(), "quiero comprar una escalera de tijera ya", nil)

	if res.Intent != chatbot.LeadHot {
		t.Fatalf("intent = %q, want Caliente", res.Intent)
	}
	if !strings.Contains(res.Response, "listo para comprar") {
		t.Fatalf("hot response must append the hand-off, got %q", res.Response)
	}
	if snap := tracker.Snapshot(); snap.HotLeads != 1 || snap.LeadsDetected != 1 {
		t.Fatalf("counters = %+v", snap)
	}
}

func TestRouteWarmLeadNoHandoff(t *testing.T) {
	llm := &stubLLM{resp: LLMResponse{Text: "Depende del modelo."}}
	svc, tracker := newTestService(t, llm)

	// Warm (Tibio) counts as a lead but does not get the hand-off block.
	res := svc.Route(context.Background(), "que presupuesto necesito para una escalera de fibra", nil)

	if res.Intent != chatbot.LeadWarm {
		t.Fatalf("intent = %q, want Tibio", res.Intent)
	}
	if strings.Contains(res.Response, "WhatsApp") {
		t.Fatalf("warm lead must not get the hand-off, got %q", res.Response)
	}
	if snap := tracker.Snapshot(); snap.WarmLeads != 1 {
		t.Fatalf("counters = %+v", snap)
	}
}

func TestRouteWarmHotLeadHandoff(t *testing.T) {
	llm := &stubLLM{resp: LLMResponse{Text: "Con gusto."}}
	svc, _ := newTestService(t, llm)

	history := make([]ChatMessage, 5)
	for i := range history {
		history[i] = ChatMessage{Role: ChatRoleUser, Content: "mensaje"}
	}
	res := svc.Route(context.Background(), "cuanto vale la escalera de tijera", history)

	if res.Intent != chatbot.LeadWarmHot {
		t.Fatalf("intent = %q, want Tibio-Caliente", res.Intent)
	}
	if !strings.Contains(res.Response, "cotización exacta") {
		t.Fatalf("warm-hot response must append the hand-off, got %q", res.Response)
	}
}

func TestRouteEmergency(t *testing.T) {
	llm := &stubLLM{err: errors.New("provider down")}
	svc, tracker := newTestService(t, llm)

	res := svc.Route(context.Background(), "necesito una escalera de 8 metros", nil)

	if res.Source != SourceEmergency {
		t.Fatalf("source = %q, want %q", res.Source, SourceEmergency)
	}
	if !strings.Contains(res.Response, "3008611868") || !strings.Contains(res.Response, "3181027047") {
		t.Fatalf("emergency response must carry both phones, got %q", res.Response)
	}

	// local + ai never exceeds total, even on the failure path.
	snap := tracker.Snapshot()
	if snap.TotalMessages != 1 || snap.AIResponses != 0 || snap.LocalResponses != 0 {
		t.Fatalf("counters = %+v", snap)
	}
}

func TestRouteRequestParameters(t *testing.T) {
	llm := &stubLLM{resp: LLMResponse{Text: "ok"}}
	svc, _ := newTestService(t, llm)

	svc.Route(context.Background(), "necesito una escalera de extension", nil)

	req := llm.lastReq
	if req.MaxTokens != 250 {
		t.Fatalf("max tokens = %d, want 250", req.MaxTokens)
	}
	if req.Temperature != 0.8 || req.TopP != 0.9 {
		t.Fatalf("sampling params = %v/%v, want 0.8/0.9", req.Temperature, req.TopP)
	}
	if len(req.Messages) < 2 || req.Messages[0].Role != ChatRoleSystem {
		t.Fatalf("request must start with the system prompt, got %+v", req.Messages)
	}
	if last := req.Messages[len(req.Messages)-1]; last.Role != ChatRoleUser || last.Content != "necesito una escalera de extension" {
		t.Fatalf("request must end with the user message, got %+v", last)
	}
}
