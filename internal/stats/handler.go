package stats

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/nicolas2456/Escaleras-Ferre/pkg/logging"
)

// Handler serves the banner, liveness and statistics endpoints.
type Handler struct {
	tracker *Tracker
	env     string
	version string
	logger  *logging.Logger
}

// NewHandler creates a stats HTTP handler.
func NewHandler(tracker *Tracker, env, version string, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		tracker: tracker,
		env:     env,
		version: version,
		logger:  logger,
	}
}

// Banner handles GET / with a service banner and a stats snapshot.
func (h *Handler) Banner(w http.ResponseWriter, r *http.Request) {
	snap := h.tracker.Snapshot()
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":          "✅ Escaleras Ferre Chatbot API funcionando",
		"version":         h.version,
		"entorno":         h.env,
		"uptime_segundos": snap.UptimeSeconds,
		"estadisticas":    snap,
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	})
}

// Health handles GET /health as a liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GetStats handles GET /stats.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.tracker.Snapshot())
}

// Reset handles POST /stats/reset. Development use only.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	h.tracker.Reset()
	h.logger.Info("stats counters reset")
	h.writeJSON(w, http.StatusOK, map[string]any{
		"mensaje":      "Estadísticas reseteadas",
		"estadisticas": h.tracker.Snapshot(),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}
