package models

import "time"

// PracticeSession is one student attempt against a lesson. Sessions are
// append-only; LessonTitle is a denormalized snapshot so history survives
// lesson deletion.
type PracticeSession struct {
	ID           int64     `json:"id"`
	LessonID     int64     `json:"lessonId"`
	LessonTitle  string    `json:"lessonTitle"`
	Score        float64   `json:"score"`
	Timestamp    time.Time `json:"timestamp"`
	StudentAudio *string   `json:"studentAudio"`
}

// SubmitPracticeRequest uses pointers for lessonId and score so a legitimate
// zero score is distinguishable from a missing field.
type SubmitPracticeRequest struct {
	LessonID     *int64   `json:"lessonId"`
	LessonTitle  string   `json:"lessonTitle"`
	Score        *float64 `json:"score"`
	StudentAudio *string  `json:"studentAudio"`
}

type PracticeStats struct {
	TotalAttempts  int               `json:"totalAttempts"`
	AvgScore       int               `json:"avgScore"`
	BestScore      float64           `json:"bestScore"`
	RecentSessions []PracticeSession `json:"recentSessions"`
}

type AnalyzeRequest struct {
	LessonTitle string  `json:"lessonTitle"`
	LessonText  string  `json:"lessonText"`
	LessonType  string  `json:"lessonType"`
	Score       float64 `json:"score"`
}
