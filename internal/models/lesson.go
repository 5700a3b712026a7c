package models

import "time"

// Lesson is a teacher-recorded pronunciation exercise. AudioData holds the
// master recording as a base64 data URI, which is why list views strip it.
type Lesson struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Type      string     `json:"type"`
	Text      string     `json:"text"`
	AudioData string     `json:"audioData"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// LessonMeta is the browse-view projection of a lesson, without the audio
// payload.
type LessonMeta struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Meta returns the audio-free projection of l.
func (l *Lesson) Meta() LessonMeta {
	return LessonMeta{
		ID:        l.ID,
		Title:     l.Title,
		Type:      l.Type,
		Text:      l.Text,
		CreatedAt: l.CreatedAt,
	}
}

type CreateLessonRequest struct {
	Title     string `json:"title"`
	Type      string `json:"type"`
	Text      string `json:"text"`
	AudioData string `json:"audioData"`
}

// UpdateLessonRequest carries a partial lesson edit. Nil fields are left
// untouched; id and createdAt can never be overwritten.
type UpdateLessonRequest struct {
	Title     *string `json:"title"`
	Type      *string `json:"type"`
	Text      *string `json:"text"`
	AudioData *string `json:"audioData"`
}
