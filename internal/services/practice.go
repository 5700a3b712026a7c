package services

import (
	"context"
	"math"
	"time"

	"github.com/icannDevTeam/language-hub/internal/models"
	"github.com/icannDevTeam/language-hub/internal/store"
)

const recentSessionLimit = 10

type PracticeService struct {
	history *store.Collection[models.PracticeSession]
	ids     *store.IDSource
}

func NewPracticeService(history *store.Collection[models.PracticeSession], ids *store.IDSource) *PracticeService {
	return &PracticeService{history: history, ids: ids}
}

// Submit appends a practice attempt. A score of 0 is a valid submission;
// only an absent score (or lessonId/lessonTitle) is rejected.
func (s *PracticeService) Submit(ctx context.Context, req models.SubmitPracticeRequest) (*models.PracticeSession, error) {
	if req.LessonID == nil || req.LessonTitle == "" || req.Score == nil {
		return nil, &ValidationError{Message: "Missing required fields"}
	}

	session := models.PracticeSession{
		ID:           s.ids.Next(),
		LessonID:     *req.LessonID,
		LessonTitle:  req.LessonTitle,
		Score:        *req.Score,
		Timestamp:    time.Now().UTC(),
		StudentAudio: req.StudentAudio,
	}

	err := s.history.Mutate(func(sessions []models.PracticeSession) ([]models.PracticeSession, error) {
		return append(sessions, session), nil
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// History returns every session in storage order, oldest first.
func (s *PracticeService) History(ctx context.Context) ([]models.PracticeSession, error) {
	sessions, err := s.history.All()
	if err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = []models.PracticeSession{}
	}
	return sessions, nil
}

// Stats aggregates the full history. An empty history yields a zeroed
// structure rather than an error.
func (s *PracticeService) Stats(ctx context.Context) (*models.PracticeStats, error) {
	sessions, err := s.history.All()
	if err != nil {
		return nil, err
	}

	stats := &models.PracticeStats{RecentSessions: []models.PracticeSession{}}
	if len(sessions) == 0 {
		return stats, nil
	}

	var sum float64
	best := sessions[0].Score
	for _, session := range sessions {
		sum += session.Score
		if session.Score > best {
			best = session.Score
		}
	}

	stats.TotalAttempts = len(sessions)
	stats.AvgScore = int(math.Round(sum / float64(len(sessions))))
	stats.BestScore = best

	start := len(sessions) - recentSessionLimit
	if start < 0 {
		start = 0
	}
	// Most recent first.
	for i := len(sessions) - 1; i >= start; i-- {
		stats.RecentSessions = append(stats.RecentSessions, sessions[i])
	}

	return stats, nil
}
