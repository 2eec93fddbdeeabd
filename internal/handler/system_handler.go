package handlers

import (
	"net/http"

	"reel/internal/logging"
)

func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]interface{}{
		"service": "reel-api",
		"modules": []string{"/admin", "/analytics", "/creator", "/social"},
	}, http.StatusOK)
}

// Health checks only the database; object storage problems show up in system-metrics.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.SystemService.Health(r.Context()); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("health check failed")
		writeSuccess(w, map[string]string{"status": "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	writeSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, "resource not found", http.StatusNotFound)
}

func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
}
