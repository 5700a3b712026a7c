package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/icannDevTeam/language-hub/internal/models"
	"github.com/icannDevTeam/language-hub/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}

// handleServiceError maps typed service errors onto HTTP statuses. Unknown
// errors become a generic 500; detail stays in the server log, never in the
// response.
func handleServiceError(w http.ResponseWriter, err error, fallbackMessage string) {
	switch e := err.(type) {
	case *services.ValidationError:
		writeError(w, http.StatusBadRequest, e.Message)
	case *services.NotFoundError:
		writeError(w, http.StatusNotFound, e.Message)
	case *services.UnauthorizedError:
		writeError(w, http.StatusUnauthorized, e.Message)
	case *services.ConflictError:
		writeError(w, http.StatusConflict, e.Message)
	default:
		writeError(w, http.StatusInternalServerError, fallbackMessage)
	}
}
