package conversation

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nicolas2456/Escaleras-Ferre/internal/chatbot"
	"github.com/nicolas2456/Escaleras-Ferre/pkg/logging"
)

// ChatRequest is the POST /chat payload.
type ChatRequest struct {
	Message string        `json:"message"`
	History []ChatMessage `json:"history"`
}

// ChatResponse is the POST /chat reply.
type ChatResponse struct {
	Response  string                 `json:"response"`
	Source    string                 `json:"source"`
	Intent    string                 `json:"intencion,omitempty"`
	Info      *chatbot.ExtractedInfo `json:"info_extraida,omitempty"`
	Model     string                 `json:"model,omitempty"`
	Timestamp string                 `json:"timestamp"`
}

// Handler wires POST /chat to the routing service.
type Handler struct {
	service  *Service
	maxChars int
	logger   *logging.Logger
}

// NewHandler creates the chat handler. maxChars caps the accepted message
// length in characters, not bytes.
func NewHandler(service *Service, maxChars int, logger *logging.Logger) *Handler {
	if maxChars <= 0 {
		maxChars = 500
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, maxChars: maxChars, logger: logger}
}

// Chat handles POST /chat.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode chat request", "error", err)
		h.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":    "Mensaje requerido",
			"response": "¿Podrías escribir tu pregunta de nuevo? 😊",
		})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":    "Mensaje requerido",
			"response": "¿Podrías escribir tu pregunta de nuevo? 😊",
		})
		return
	}
	if chars := len([]rune(message)); chars > h.maxChars {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":    "Mensaje muy largo",
			"response": fmt.Sprintf("Tu mensaje es muy largo. ¿Puedes resumirlo en menos de %d caracteres? 😊", h.maxChars),
		})
		return
	}

	result := h.service.Route(r.Context(), message, req.History)

	resp := ChatResponse{
		Response:  result.Response,
		Source:    result.Source,
		Intent:    string(result.Intent),
		Model:     result.Model,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if result.Source == SourceAI && !result.Info.Empty() {
		info := result.Info
		resp.Info = &info
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}
