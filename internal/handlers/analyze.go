package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/icannDevTeam/language-hub/internal/models"
	"github.com/icannDevTeam/language-hub/internal/services"
)

type AnalyzeHandler struct {
	feedback *services.FeedbackService
}

func NewAnalyzeHandler(feedback *services.FeedbackService) *AnalyzeHandler {
	return &AnalyzeHandler{feedback: feedback}
}

// Analyze returns AI feedback for a practice attempt. Upstream failures are
// absorbed by the service's deterministic fallback, so a parseable request
// always gets a 200.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	feedback := h.feedback.Analyze(r.Context(), req)
	writeJSON(w, http.StatusOK, map[string]string{"feedback": feedback})
}
