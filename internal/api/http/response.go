package http

import (
	"encoding/json"
	"net/http"

	"sandevex-hiring-backend/internal/logger"
	"sandevex-hiring-backend/internal/records"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeAPIError surfaces a records API failure: the server's own message and
// status when present, a generic 502 otherwise.
func writeAPIError(w http.ResponseWriter, err error) {
	if apiErr, ok := records.AsAPIError(err); ok {
		msg := apiErr.Message
		if msg == "" {
			msg = "Request failed"
		}
		status := apiErr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		writeError(w, status, msg)
		return
	}
	writeError(w, http.StatusBadGateway, "Unable to reach the records service")
}
