package services

import (
	"context"
	"time"

	"github.com/icannDevTeam/language-hub/internal/models"
	"github.com/icannDevTeam/language-hub/internal/store"
)

type LessonService struct {
	lessons *store.Collection[models.Lesson]
	ids     *store.IDSource
}

func NewLessonService(lessons *store.Collection[models.Lesson], ids *store.IDSource) *LessonService {
	return &LessonService{lessons: lessons, ids: ids}
}

// List returns lesson metadata only. Audio payloads are large data URIs, so
// browse views never receive them.
func (s *LessonService) List(ctx context.Context) ([]models.LessonMeta, error) {
	lessons, err := s.lessons.All()
	if err != nil {
		return nil, err
	}

	meta := make([]models.LessonMeta, 0, len(lessons))
	for i := range lessons {
		meta = append(meta, lessons[i].Meta())
	}
	return meta, nil
}

// Get returns the full lesson, audio included.
func (s *LessonService) Get(ctx context.Context, id int64) (*models.Lesson, error) {
	lessons, err := s.lessons.All()
	if err != nil {
		return nil, err
	}

	for i := range lessons {
		if lessons[i].ID == id {
			return &lessons[i], nil
		}
	}
	return nil, &NotFoundError{Message: "Lesson not found"}
}

func (s *LessonService) Create(ctx context.Context, req models.CreateLessonRequest) (*models.Lesson, error) {
	if req.Title == "" || req.Type == "" || req.Text == "" || req.AudioData == "" {
		return nil, &ValidationError{Message: "Missing required fields"}
	}

	lesson := models.Lesson{
		ID:        s.ids.Next(),
		Title:     req.Title,
		Type:      req.Type,
		Text:      req.Text,
		AudioData: req.AudioData,
		CreatedAt: time.Now().UTC(),
	}

	err := s.lessons.Mutate(func(lessons []models.Lesson) ([]models.Lesson, error) {
		return append(lessons, lesson), nil
	})
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

// Update merges the non-nil fields of req onto the stored lesson. The id and
// createdAt of the original always win.
func (s *LessonService) Update(ctx context.Context, id int64, req models.UpdateLessonRequest) (*models.Lesson, error) {
	var updated models.Lesson

	err := s.lessons.Mutate(func(lessons []models.Lesson) ([]models.Lesson, error) {
		for i := range lessons {
			if lessons[i].ID != id {
				continue
			}
			if req.Title != nil {
				lessons[i].Title = *req.Title
			}
			if req.Type != nil {
				lessons[i].Type = *req.Type
			}
			if req.Text != nil {
				lessons[i].Text = *req.Text
			}
			if req.AudioData != nil {
				lessons[i].AudioData = *req.AudioData
			}
			now := time.Now().UTC()
			lessons[i].UpdatedAt = &now
			updated = lessons[i]
			return lessons, nil
		}
		return nil, &NotFoundError{Message: "Lesson not found"}
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *LessonService) Delete(ctx context.Context, id int64) error {
	return s.lessons.Mutate(func(lessons []models.Lesson) ([]models.Lesson, error) {
		for i := range lessons {
			if lessons[i].ID == id {
				return append(lessons[:i], lessons[i+1:]...), nil
			}
		}
		return nil, &NotFoundError{Message: "Lesson not found"}
	})
}
