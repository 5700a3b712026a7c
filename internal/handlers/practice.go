package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/icannDevTeam/language-hub/internal/models"
	"github.com/icannDevTeam/language-hub/internal/services"
)

type PracticeHandler struct {
	practice *services.PracticeService
}

func NewPracticeHandler(practice *services.PracticeService) *PracticeHandler {
	return &PracticeHandler{practice: practice}
}

func (h *PracticeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitPracticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.practice.Submit(r.Context(), req)
	if err != nil {
		handleServiceError(w, err, "Failed to save practice session")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Practice session saved",
		"session": session,
	})
}

func (h *PracticeHandler) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.practice.History(r.Context())
	if err != nil {
		log.Printf("failed to read practice history: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve practice history")
		return
	}
	writeJSON(w, http.StatusOK, history)
}

func (h *PracticeHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.practice.Stats(r.Context())
	if err != nil {
		log.Printf("failed to compute practice stats: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve statistics")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
