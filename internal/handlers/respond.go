package handlers

import (
	"encoding/json"
	"net/http"
)

// Envelope is the response convention shared by every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func respondData(w http.ResponseWriter, status int, data any) {
	respond(w, status, Envelope{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respond(w, status, Envelope{Success: false, Error: msg})
}

func respond(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}
