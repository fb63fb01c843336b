package handler

import (
	"net/http"
	"strconv"
)

// AccountCounter reports how many accounts the directory holds.
type AccountCounter interface {
	Count() int
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	directory AccountCounter
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(directory AccountCounter) *HealthHandler {
	return &HealthHandler{directory: directory}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 once the directory is loaded.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ready",
		"accounts": strconv.Itoa(h.directory.Count()),
	})
}
