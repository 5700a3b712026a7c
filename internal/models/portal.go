package models

import (
	"time"

	"github.com/google/uuid"
)

// Teacher account statuses in the portal layer.
const (
	TeacherStatusPending  = "pending"
	TeacherStatusApproved = "approved"
)

// TeacherAccount is a portal teacher record. Accounts start pending unless the
// email belongs to the configured auto-approval domain.
type TeacherAccount struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Status       string     `json:"status"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	ApprovedAt   *time.Time `json:"approved_at"`
}

// PortalLesson is a lesson shared through the database-backed portal, separate
// from the flat-file lesson store.
type PortalLesson struct {
	ID           uuid.UUID `json:"id"`
	TeacherEmail string    `json:"teacher_email"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	Text         string    `json:"text"`
	IsPublic     bool      `json:"is_public"`
	CreatedAt    time.Time `json:"created_at"`
}

// StudentProgress tracks per-student, per-lesson progress. Saves are upserts
// keyed on (student_name, lesson_id).
type StudentProgress struct {
	ID           uuid.UUID `json:"id"`
	StudentName  string    `json:"student_name"`
	LessonID     uuid.UUID `json:"lesson_id"`
	XPEarned     int       `json:"xp_earned"`
	Achievements []string  `json:"achievements"`
	LastActivity time.Time `json:"last_activity"`
}

type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreatePortalLessonRequest struct {
	Title    string `json:"title"`
	Type     string `json:"type"`
	Text     string `json:"text"`
	IsPublic bool   `json:"is_public"`
}

type SaveProgressRequest struct {
	StudentName  string    `json:"student_name"`
	LessonID     uuid.UUID `json:"lesson_id"`
	XPEarned     int       `json:"xp_earned"`
	Achievements []string  `json:"achievements"`
}
