package http

import (
	"encoding/json"
	"net/http"

	"equiprent-backend/internal/logger"
)

// Envelope is the standard response wrapper: a boolean success flag, a
// human-readable message, and data only on success.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

// Success writes a 200 envelope with the given payload and message.
func Success(w http.ResponseWriter, data any, message string) {
	write(w, http.StatusOK, Envelope{Success: true, Data: data, Message: message})
}

// Fail writes an error envelope with the given status and message.
func Fail(w http.ResponseWriter, status int, message string) {
	write(w, status, Envelope{Success: false, Message: message})
}

func write(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response payload", "error", err)
	}
}
