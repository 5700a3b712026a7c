package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/icannDevTeam/language-hub/internal/handlers"
	"github.com/icannDevTeam/language-hub/internal/models"
	"github.com/icannDevTeam/language-hub/internal/router"
	"github.com/icannDevTeam/language-hub/internal/services"
	"github.com/icannDevTeam/language-hub/internal/store"
)

// newTestServer wires the real router against temp-dir file stores. The
// feedback service has no API key, so /api/analyze exercises the fallback
// path deterministically.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	dir := t.TempDir()

	lessonStore, err := store.Open[models.Lesson](filepath.Join(dir, "lessons.json"))
	if err != nil {
		t.Fatalf("failed to open lesson store: %v", err)
	}
	historyStore, err := store.Open[models.PracticeSession](filepath.Join(dir, "practice_history.json"))
	if err != nil {
		t.Fatalf("failed to open history store: %v", err)
	}

	ids := store.NewIDSource()
	return router.New(
		handlers.NewPagesHandler(dir),
		handlers.NewLessonHandler(services.NewLessonService(lessonStore, ids)),
		handlers.NewPracticeHandler(services.NewPracticeService(historyStore, ids)),
		handlers.NewAnalyzeHandler(services.NewFeedbackService("", "claude-sonnet-4-20250514", time.Second)),
		nil,
		nil,
		dir,
	)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

func createLesson(t *testing.T, h http.Handler) models.Lesson {
	t.Helper()
	rr := doJSON(t, h, http.MethodPost, "/api/lessons", map[string]string{
		"title":     "Greetings",
		"type":      "word",
		"text":      "你好",
		"audioData": "data:audio/webm;base64,AAAA",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Message string        `json:"message"`
		Lesson  models.Lesson `json:"lesson"`
	}
	decodeBody(t, rr, &resp)
	return resp.Lesson
}

// ─── Lesson API ───

func TestCreateLesson(t *testing.T) {
	h := newTestServer(t)

	lesson := createLesson(t, h)
	if lesson.ID == 0 {
		t.Error("expected assigned id")
	}
	if lesson.CreatedAt.IsZero() {
		t.Error("expected createdAt timestamp")
	}
}

func TestCreateLessonMissingField(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing title", map[string]string{"type": "word", "text": "好", "audioData": "d"}},
		{"missing type", map[string]string{"title": "t", "text": "好", "audioData": "d"}},
		{"missing text", map[string]string{"title": "t", "type": "word", "audioData": "d"}},
		{"missing audio", map[string]string{"title": "t", "type": "word", "text": "好"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := doJSON(t, h, http.MethodPost, "/api/lessons", tc.body)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rr.Code)
			}

			var errResp models.ErrorResponse
			decodeBody(t, rr, &errResp)
			if errResp.Error == "" {
				t.Error("expected error message in body")
			}
		})
	}

	// Store must be untouched after the rejected creates.
	rr := doJSON(t, h, http.MethodGet, "/api/lessons", nil)
	var metas []models.LessonMeta
	decodeBody(t, rr, &metas)
	if len(metas) != 0 {
		t.Errorf("expected empty store after rejected creates, got %d lessons", len(metas))
	}
}

func TestListLessonsOmitsAudio(t *testing.T) {
	h := newTestServer(t)
	createLesson(t, h)

	rr := doJSON(t, h, http.MethodGet, "/api/lessons", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var raw []map[string]interface{}
	decodeBody(t, rr, &raw)
	if len(raw) != 1 {
		t.Fatalf("expected 1 lesson, got %d", len(raw))
	}
	if _, present := raw[0]["audioData"]; present {
		t.Error("expected audioData stripped from list view")
	}
	if raw[0]["title"] != "Greetings" {
		t.Errorf("unexpected title %v", raw[0]["title"])
	}
}

func TestGetLessonIncludesAudio(t *testing.T) {
	h := newTestServer(t)
	created := createLesson(t, h)

	rr := doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/lessons/%d", created.ID), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var lesson models.Lesson
	decodeBody(t, rr, &lesson)
	if lesson.AudioData != "data:audio/webm;base64,AAAA" {
		t.Errorf("expected full audio payload, got %q", lesson.AudioData)
	}
}

func TestGetLessonNotFound(t *testing.T) {
	h := newTestServer(t)

	for _, path := range []string{"/api/lessons/12345", "/api/lessons/not-a-number"} {
		rr := doJSON(t, h, http.MethodGet, path, nil)
		if rr.Code != http.StatusNotFound {
			t.Errorf("GET %s: expected 404, got %d", path, rr.Code)
		}
	}
}

func TestUpdateLessonPreservesIdentity(t *testing.T) {
	h := newTestServer(t)
	created := createLesson(t, h)

	rr := doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/lessons/%d", created.ID), map[string]string{
		"title": "Updated Greetings",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Lesson models.Lesson `json:"lesson"`
	}
	decodeBody(t, rr, &resp)

	if resp.Lesson.ID != created.ID {
		t.Errorf("expected id preserved, got %d", resp.Lesson.ID)
	}
	if !resp.Lesson.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("expected createdAt preserved, got %v", resp.Lesson.CreatedAt)
	}
	if resp.Lesson.Title != "Updated Greetings" {
		t.Errorf("expected updated title, got %q", resp.Lesson.Title)
	}
	if resp.Lesson.Text != "你好" {
		t.Errorf("expected untouched field preserved, got %q", resp.Lesson.Text)
	}
	if resp.Lesson.UpdatedAt == nil {
		t.Error("expected updatedAt stamped")
	}
}

func TestUpdateLessonNotFound(t *testing.T) {
	h := newTestServer(t)

	rr := doJSON(t, h, http.MethodPut, "/api/lessons/999", map[string]string{"title": "x"})
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}
}

func TestDeleteLessonTwice(t *testing.T) {
	h := newTestServer(t)
	created := createLesson(t, h)
	path := fmt.Sprintf("/api/lessons/%d", created.ID)

	rr := doJSON(t, h, http.MethodDelete, path, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("first delete: expected 200, got %d", rr.Code)
	}

	rr = doJSON(t, h, http.MethodDelete, path, nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("second delete: expected 404, got %d", rr.Code)
	}
}

// ─── Practice API ───

func submitPractice(t *testing.T, h http.Handler, score float64) {
	t.Helper()
	rr := doJSON(t, h, http.MethodPost, "/api/practice", map[string]interface{}{
		"lessonId":    1700000000000,
		"lessonTitle": "Greetings",
		"score":       score,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestSubmitPracticeZeroScore(t *testing.T) {
	h := newTestServer(t)
	submitPractice(t, h, 0)

	rr := doJSON(t, h, http.MethodGet, "/api/practice/history", nil)
	var history []models.PracticeSession
	decodeBody(t, rr, &history)
	if len(history) != 1 || history[0].Score != 0 {
		t.Errorf("expected zero-score session recorded, got %+v", history)
	}
}

func TestSubmitPracticeMissingScore(t *testing.T) {
	h := newTestServer(t)

	rr := doJSON(t, h, http.MethodPost, "/api/practice", map[string]interface{}{
		"lessonId":    1,
		"lessonTitle": "Greetings",
	})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing score, got %d", rr.Code)
	}
}

func TestPracticeStatsEmpty(t *testing.T) {
	h := newTestServer(t)

	rr := doJSON(t, h, http.MethodGet, "/api/practice/stats", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var stats models.PracticeStats
	decodeBody(t, rr, &stats)
	if stats.TotalAttempts != 0 || stats.AvgScore != 0 || stats.BestScore != 0 {
		t.Errorf("expected zeroed stats, got %+v", stats)
	}
	if stats.RecentSessions == nil || len(stats.RecentSessions) != 0 {
		t.Errorf("expected empty recentSessions array, got %v", stats.RecentSessions)
	}
}

func TestPracticeStatsAggregation(t *testing.T) {
	h := newTestServer(t)
	for _, score := range []float64{55, 70, 88} {
		submitPractice(t, h, score)
	}

	rr := doJSON(t, h, http.MethodGet, "/api/practice/stats", nil)
	var stats models.PracticeStats
	decodeBody(t, rr, &stats)

	if stats.TotalAttempts != 3 {
		t.Errorf("expected 3 attempts, got %d", stats.TotalAttempts)
	}
	// mean of 55, 70, 88 is 71
	if stats.AvgScore != 71 {
		t.Errorf("expected avgScore 71, got %d", stats.AvgScore)
	}
	if stats.BestScore != 88 {
		t.Errorf("expected bestScore 88, got %v", stats.BestScore)
	}
	if len(stats.RecentSessions) != 3 || stats.RecentSessions[0].Score != 88 {
		t.Errorf("expected most-recent-first sessions, got %+v", stats.RecentSessions)
	}
}

// ─── Analyze API ───

func TestAnalyzeAlwaysSucceedsWithFallback(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{"high score", 90, "Excellent work!"},
		{"middle score", 75, "Good effort!"},
		{"low score", 40, "Keep practicing!"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := doJSON(t, h, http.MethodPost, "/api/analyze", map[string]interface{}{
				"lessonTitle": "Greetings",
				"lessonText":  "你好",
				"lessonType":  "word",
				"score":       tc.score,
			})
			if rr.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rr.Code)
			}

			var resp struct {
				Feedback string `json:"feedback"`
			}
			decodeBody(t, rr, &resp)
			if !strings.Contains(resp.Feedback, tc.want) {
				t.Errorf("expected feedback containing %q, got %q", tc.want, resp.Feedback)
			}
		})
	}
}

// ─── Misc ───

func TestHealthEndpoint(t *testing.T) {
	h := newTestServer(t)

	rr := doJSON(t, h, http.MethodGet, "/health", nil)
	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "ok") {
		t.Errorf("unexpected health body %q", rr.Body.String())
	}
}

func TestRequestIDHeaderSet(t *testing.T) {
	h := newTestServer(t)

	rr := doJSON(t, h, http.MethodGet, "/api/lessons", nil)
	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header on response")
	}
}
