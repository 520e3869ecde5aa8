package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/nicolas2456/Escaleras-Ferre/pkg/logging"
)

// Recoverer converts handler panics into a JSON 500 that still points the
// customer at a human, instead of a dropped connection.
func Recoverer(logger *logging.Logger, contactLine string) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						"panic", rec,
						"method", r.Method,
						"path", r.URL.Path,
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"error":    "Error interno del servidor",
						"response": contactLine,
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
