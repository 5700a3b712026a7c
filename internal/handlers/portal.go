package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"github.com/icannDevTeam/language-hub/internal/middleware"
	"github.com/icannDevTeam/language-hub/internal/models"
	"github.com/icannDevTeam/language-hub/internal/repository"
	"github.com/icannDevTeam/language-hub/internal/services"
)

// PortalHandler exposes the optional database-backed teacher portal. It is
// only mounted when a database is configured and is fully independent of the
// flat-file lesson and practice paths.
type PortalHandler struct {
	auth     *services.PortalAuthService
	teachers *repository.TeacherRepo
	lessons  *repository.PortalLessonRepo
	progress *repository.ProgressRepo
}

func NewPortalHandler(
	auth *services.PortalAuthService,
	teachers *repository.TeacherRepo,
	lessons *repository.PortalLessonRepo,
	progress *repository.ProgressRepo,
) *PortalHandler {
	return &PortalHandler{
		auth:     auth,
		teachers: teachers,
		lessons:  lessons,
		progress: progress,
	}
}

func (h *PortalHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	teacher, err := h.auth.SignUp(r.Context(), req)
	if err != nil {
		handleServiceError(w, err, "Failed to create account")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Account created",
		"teacher": teacher,
	})
}

func (h *PortalHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, teacher, err := h.auth.SignIn(r.Context(), req)
	if err != nil {
		handleServiceError(w, err, "Failed to sign in")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token":   token,
		"teacher": teacher,
	})
}

// SignOut exists for API symmetry; tokens are stateless, so the client just
// discards its copy.
func (h *PortalHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Signed out"})
}

func (h *PortalHandler) Me(w http.ResponseWriter, r *http.Request) {
	teacher, err := h.auth.CurrentTeacher(r.Context(), middleware.GetTeacherEmail(r.Context()))
	if err != nil {
		handleServiceError(w, err, "Failed to load account")
		return
	}
	writeJSON(w, http.StatusOK, teacher)
}

func (h *PortalHandler) ListTeachers(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.teachers.List(r.Context())
	if err != nil {
		log.Printf("failed to list teachers: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve teachers")
		return
	}
	writeJSON(w, http.StatusOK, teachers)
}

func (h *PortalHandler) GetTeacher(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	teacher, err := h.teachers.GetApprovedByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Teacher not found")
			return
		}
		log.Printf("failed to load teacher %s: %v", email, err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve teacher")
		return
	}
	writeJSON(w, http.StatusOK, teacher)
}

func (h *PortalHandler) CreateLesson(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePortalLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Type == "" || req.Text == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	lesson := &models.PortalLesson{
		TeacherEmail: middleware.GetTeacherEmail(r.Context()),
		Title:        req.Title,
		Type:         req.Type,
		Text:         req.Text,
		IsPublic:     req.IsPublic,
	}
	if err := h.lessons.Create(r.Context(), lesson); err != nil {
		log.Printf("failed to create portal lesson: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create lesson")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Lesson created successfully",
		"lesson":  lesson,
	})
}

func (h *PortalHandler) MyLessons(w http.ResponseWriter, r *http.Request) {
	lessons, err := h.lessons.ListByTeacher(r.Context(), middleware.GetTeacherEmail(r.Context()))
	if err != nil {
		log.Printf("failed to list portal lessons: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve lessons")
		return
	}
	writeJSON(w, http.StatusOK, lessons)
}

func (h *PortalHandler) PublicLessons(w http.ResponseWriter, r *http.Request) {
	lessons, err := h.lessons.ListPublic(r.Context())
	if err != nil {
		log.Printf("failed to list public lessons: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve lessons")
		return
	}
	writeJSON(w, http.StatusOK, lessons)
}

func (h *PortalHandler) SaveProgress(w http.ResponseWriter, r *http.Request) {
	var req models.SaveProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.StudentName == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	progress := &models.StudentProgress{
		StudentName:  req.StudentName,
		LessonID:     req.LessonID,
		XPEarned:     req.XPEarned,
		Achievements: req.Achievements,
	}
	if err := h.progress.Save(r.Context(), progress); err != nil {
		log.Printf("failed to save student progress: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save progress")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Progress saved",
		"progress": progress,
	})
}

func (h *PortalHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	student := chi.URLParam(r, "student")

	progress, err := h.progress.ListByStudent(r.Context(), student)
	if err != nil {
		log.Printf("failed to load progress for %s: %v", student, err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve progress")
		return
	}
	writeJSON(w, http.StatusOK, progress)
}
