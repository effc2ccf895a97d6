package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"blogspace/internal/models"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError sends the standard JSON error envelope.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError maps the service-layer sentinel errors onto HTTP
// statuses; anything unrecognized is a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		WriteError(w, "not found", http.StatusNotFound)
	case errors.Is(err, models.ErrForbidden):
		WriteError(w, "you don't have permission to modify this post", http.StatusForbidden)
	case errors.Is(err, models.ErrEmailTaken):
		WriteError(w, "email already registered", http.StatusConflict)
	case errors.Is(err, models.ErrInvalidCredentials):
		WriteError(w, "invalid email or password", http.StatusUnauthorized)
	default:
		WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}
