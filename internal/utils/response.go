package utils

import (
	"encoding/json"
	"net/http"
)

// Envelope is the response shape shared by every route.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func JSONError(w http.ResponseWriter, msg string, code int) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(Envelope{Success: false, Message: msg})
}

func JSONErrorDetail(w http.ResponseWriter, msg, detail string, code int) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(Envelope{Success: false, Message: msg, Error: detail})
}

func JSONSuccess(w http.ResponseWriter, code int, env Envelope) {
	env.Success = true
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(env)
}
