package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/icannDevTeam/language-hub/internal/models"
)

const feedbackMaxTokens = 1500

// messageCreator is the slice of the Anthropic client the feedback service
// needs; tests substitute a stub.
type messageCreator interface {
	New(ctx context.Context, body anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// FeedbackService asks the Anthropic Messages API for pronunciation feedback.
// The upstream is best-effort only: every failure path lands on a canned
// score-band template, so Analyze can never fail.
type FeedbackService struct {
	messages messageCreator
	model    string
	timeout  time.Duration
}

func NewFeedbackService(apiKey, model string, timeout time.Duration) *FeedbackService {
	s := &FeedbackService{model: model, timeout: timeout}
	if apiKey != "" {
		// Retries are handled here, not by the SDK, so the bound on upstream
		// attempts stays explicit.
		client := anthropic.NewClient(option.WithAPIKey(apiKey), option.WithMaxRetries(0))
		s.messages = &client.Messages
	}
	return s
}

// Analyze returns feedback text for a practice attempt. The upstream call is
// bounded by a per-attempt timeout and retried once; after that the fallback
// template for the score band is returned.
func (s *FeedbackService) Analyze(ctx context.Context, req models.AnalyzeRequest) string {
	if s.messages == nil {
		return fallbackFeedback(req.Score)
	}

	prompt := buildAnalysisPrompt(req)
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: feedbackMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}

	for attempt := 0; attempt < 2; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		msg, err := s.messages.New(callCtx, params)
		cancel()
		if err != nil {
			log.Printf("analysis request failed (attempt %d): %v", attempt+1, err)
			continue
		}

		if text := extractText(msg); text != "" {
			return text
		}
		log.Printf("analysis response had no text content (attempt %d)", attempt+1)
	}

	return fallbackFeedback(req.Score)
}

func extractText(msg *anthropic.Message) string {
	for _, block := range msg.Content {
		if block.Type == "text" {
			return block.Text
		}
	}
	return ""
}

func buildAnalysisPrompt(req models.AnalyzeRequest) string {
	return fmt.Sprintf(`Analyze this Mandarin pronunciation practice session:

Lesson: %s
Text: %s
Type: %s
Student Score: %s/100

Provide detailed, constructive feedback in the following format:
1. Overall Assessment (2-3 sentences)
2. Strengths (2-3 specific points)
3. Areas for Improvement (2-3 specific points with actionable advice)
4. Specific Pronunciation Tips for this %s
5. Practice Recommendations

Be encouraging and specific. Focus on common Mandarin pronunciation challenges.`,
		req.LessonTitle, req.LessonText, req.LessonType,
		strconv.FormatFloat(req.Score, 'f', -1, 64), req.LessonType)
}

// fallbackFeedback derives deterministic feedback from the score alone. The
// three bands are fixed at 85 and 70.
func fallbackFeedback(score float64) string {
	switch {
	case score >= 85:
		return `**Overall Assessment:**
Excellent work! Your pronunciation demonstrates strong command of Mandarin tones and sounds.

**Strengths:**
- Clear articulation
- Good tone accuracy
- Natural rhythm

**Areas for Improvement:**
- Continue practicing to maintain this high level
- Work on subtle tone transitions

**Practice Recommendations:**
Keep up the consistent practice. Try more challenging material to further improve.`
	case score >= 70:
		return `**Overall Assessment:**
Good effort! You're making solid progress with room for improvement.

**Strengths:**
- Decent pronunciation clarity
- Understanding of basic tones

**Areas for Improvement:**
- Focus on tone accuracy and consistency
- Work on challenging sound combinations
- Practice rhythm and pacing

**Practice Recommendations:**
Regular daily practice focusing on difficult tones and sounds will help you improve significantly.`
	default:
		return `**Overall Assessment:**
Keep practicing! Building good pronunciation takes time and consistent effort.

**Strengths:**
- You're making an effort to learn
- Starting to understand the basics

**Areas for Improvement:**
- Focus on mastering the four tones
- Listen carefully to the master recording
- Practice individual sounds before full sentences

**Practice Recommendations:**
Start with simpler exercises. Practice each tone separately, then combine. Listen to native speakers frequently.`
	}
}
