package handler

import (
	"log/slog"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/dto"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("failed to encode JSON response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, &dto.ErrorResponse{Detail: detail})
}
