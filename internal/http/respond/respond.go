// Package respond writes the uniform JSON envelopes every endpoint uses.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ashiqdev/taka/internal/money"
	"github.com/ashiqdev/taka/internal/repo"
)

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Data writes a 200 {success:true, data:...} envelope.
func Data(w http.ResponseWriter, data any) {
	write(w, http.StatusOK, envelope{Success: true, Data: data})
}

// Message writes a 200 {success:true, message:...} envelope.
func Message(w http.ResponseWriter, msg string) {
	write(w, http.StatusOK, envelope{Success: true, Message: msg})
}

// Error writes a {success:false, message:...} envelope with the given status.
func Error(w http.ResponseWriter, status int, msg string) {
	write(w, status, envelope{Success: false, Message: msg})
}

// AuthError writes the {error:...} shape the auth endpoints and the
// bearer-token middleware use.
func AuthError(w http.ResponseWriter, status int, msg string) {
	write(w, status, map[string]string{"error": msg})
}

// StoreError maps a service/store error onto the HTTP taxonomy. noun names
// the entity for the 404/409 messages. Anything unrecognized is logged with
// full detail and reported to the caller as a bare internal error, so driver
// internals never leak.
func StoreError(w http.ResponseWriter, err error, noun string) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		Error(w, http.StatusNotFound, noun+" not found")
	case errors.Is(err, repo.ErrConflict):
		Error(w, http.StatusConflict, noun+" already exists")
	case errors.Is(err, money.ErrUnknownCurrency):
		Error(w, http.StatusBadRequest, "unknown currency code")
	default:
		slog.Error("request failed", "entity", noun, "error", err)
		Error(w, http.StatusInternalServerError, "internal error")
	}
}
