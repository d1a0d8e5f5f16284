package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"donorlink-backend/internal/domain"
	"donorlink-backend/internal/logger"
	"donorlink-backend/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": status < 400,
		"message": message,
	})
}

// writeError maps the domain error taxonomy onto HTTP statuses. Unrecognized
// errors are treated as storage failures: logged in full, surfaced as a
// generic 500.
func writeError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeMessage(w, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, domain.ErrUnauthenticated):
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrAccountNotActive):
		writeMessage(w, http.StatusForbidden, "Account is not active. Please contact admin.")
	case errors.Is(err, domain.ErrForbidden):
		writeMessage(w, http.StatusForbidden, firstLine(err))
	case errors.Is(err, domain.ErrUnavailable):
		writeMessage(w, http.StatusNotFound, "Donation not found or already claimed")
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrConflict):
		writeMessage(w, http.StatusBadRequest, firstLine(err))
	default:
		logger.Error("Request failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

// firstLine strips the wrapped sentinel suffix (": forbidden" etc.) so the
// client sees the handler's sentence, not the taxonomy marker.
func firstLine(err error) string {
	msg := err.Error()
	for i := range msg {
		if msg[i] == ':' {
			return msg[:i]
		}
	}
	return msg
}
