package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/icannDevTeam/language-hub/internal/models"
	"github.com/icannDevTeam/language-hub/internal/services"
)

type LessonHandler struct {
	lessons *services.LessonService
}

func NewLessonHandler(lessons *services.LessonService) *LessonHandler {
	return &LessonHandler{lessons: lessons}
}

// List returns lesson metadata without audio payloads.
func (h *LessonHandler) List(w http.ResponseWriter, r *http.Request) {
	meta, err := h.lessons.List(r.Context())
	if err != nil {
		log.Printf("failed to list lessons: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve lessons")
		return
	}
	writeJSON(w, http.StatusOK, meta)
}

// Get returns the full lesson, audio included.
func (h *LessonHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Lesson not found")
		return
	}

	lesson, err := h.lessons.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, err, "Failed to retrieve lesson")
		return
	}
	writeJSON(w, http.StatusOK, lesson)
}

func (h *LessonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lesson, err := h.lessons.Create(r.Context(), req)
	if err != nil {
		handleServiceError(w, err, "Failed to create lesson")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Lesson created successfully",
		"lesson":  lesson,
	})
}

func (h *LessonHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Lesson not found")
		return
	}

	var req models.UpdateLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lesson, err := h.lessons.Update(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, err, "Failed to update lesson")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Lesson updated successfully",
		"lesson":  lesson,
	})
}

func (h *LessonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Lesson not found")
		return
	}

	if err := h.lessons.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err, "Failed to delete lesson")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Lesson deleted successfully"})
}
