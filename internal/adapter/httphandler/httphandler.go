// Package httphandler exposes the shop's public JSON API.
package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

var validTypeTokens = []string{"sticker", "magnet", "fridge"}

func writeJSON(w http.ResponseWriter, status int, body any) {
	const op = "writeJSON"

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.With("op", op).Error("failed to write response body", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
