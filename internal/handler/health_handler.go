package handlers

import (
	"net/http"
)

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"service": "blogspace",
		"status":  "ok",
	}, http.StatusOK)
}

// HealthHandler reports whether the database is reachable.
func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		writeJSON(w, map[string]string{
			"status":   "unhealthy",
			"database": err.Error(),
		}, http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, map[string]string{
		"status":   "healthy",
		"database": "up",
	}, http.StatusOK)
}
