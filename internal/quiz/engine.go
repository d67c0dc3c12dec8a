package quiz

import (
	"errors"
	"time"

	"github.com/ocean-explorer/backend/internal/models"
)

var (
	ErrSessionCompleted = errors.New("quiz session already completed")
	ErrWrongQuestion    = errors.New("answer does not match the current question")
	ErrAlreadyRevealed  = errors.New("question already answered")
	ErrNotRevealed      = errors.New("current question not yet answered")
)

// Session is the per-attempt quiz state machine:
// InProgress(index, answers, runningScore) → Completed(finalScore).
// Once completed a session is immutable; restarting means constructing a new
// one. Sessions are not safe for concurrent use; the owning service
// serializes access.
type Session struct {
	ID        string
	ChapterID string
	Quiz      models.ChapterQuiz

	index        int
	revealed     []bool
	results      []models.AnswerResult
	runningScore int
	deadline     time.Time
	perQuestion  time.Duration
	completed    bool
	finalScore   float64

	now func() time.Time
}

func NewSession(id string, quiz models.ChapterQuiz, perQuestion time.Duration, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{
		ID:          id,
		ChapterID:   quiz.ChapterID,
		Quiz:        quiz,
		revealed:    make([]bool, len(quiz.Questions)),
		results:     make([]models.AnswerResult, len(quiz.Questions)),
		perQuestion: perQuestion,
		deadline:    now().Add(perQuestion),
		now:         now,
	}
}

// Answer submits one answer for the current question and reveals the result.
// An answer arriving after the question's deadline is recorded as a null
// (always-incorrect) answer, the same as an explicit timeout.
func (s *Session) Answer(questionID string, choice int) (models.AnswerResult, error) {
	if s.now().After(s.deadline) {
		return s.reveal(questionID, nil)
	}
	return s.reveal(questionID, &choice)
}

// Timeout records the countdown expiring for the current question: a null
// answer, always incorrect. A question that was already answered manually is
// left alone, the manual answer cancelled the timer.
func (s *Session) Timeout(questionID string) (models.AnswerResult, error) {
	return s.reveal(questionID, nil)
}

func (s *Session) reveal(questionID string, choice *int) (models.AnswerResult, error) {
	if s.completed {
		return models.AnswerResult{}, ErrSessionCompleted
	}
	q := s.Quiz.Questions[s.index]
	if q.ID != questionID {
		return models.AnswerResult{}, ErrWrongQuestion
	}
	if s.revealed[s.index] {
		return models.AnswerResult{}, ErrAlreadyRevealed
	}

	points := q.Points
	if points == 0 {
		points = 1
	}

	result := models.AnswerResult{
		QuestionID:    q.ID,
		TimedOut:      choice == nil,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
	}
	if choice != nil && *choice == q.CorrectAnswer {
		result.Correct = true
		result.PointsEarned = points
		s.runningScore += points
	}

	s.revealed[s.index] = true
	s.results[s.index] = result
	return result, nil
}

// Advance moves past the current (revealed) question. Advancing past the
// last question completes the session and fixes the final score as a
// percentage of total possible points.
func (s *Session) Advance() (completed bool, err error) {
	if s.completed {
		return false, ErrSessionCompleted
	}
	if !s.revealed[s.index] {
		return false, ErrNotRevealed
	}

	if s.index+1 < len(s.Quiz.Questions) {
		s.index++
		s.deadline = s.now().Add(s.perQuestion)
		return false, nil
	}

	s.completed = true
	total := s.Quiz.TotalPoints()
	if total > 0 {
		s.finalScore = float64(s.runningScore) / float64(total) * 100
	}
	return true, nil
}

func (s *Session) Completed() bool {
	return s.completed
}

// FinalScore is only meaningful once the session is completed.
func (s *Session) FinalScore() float64 {
	return s.finalScore
}

func (s *Session) RunningScore() int {
	return s.runningScore
}

// View projects the session for the browser: the current question comes
// without its answer until revealed.
func (s *Session) View() models.QuizSessionResponse {
	resp := models.QuizSessionResponse{
		SessionID:     s.ID,
		ChapterID:     s.ChapterID,
		QuestionIndex: s.index,
		QuestionCount: len(s.Quiz.Questions),
		RunningScore:  s.runningScore,
		Completed:     s.completed,
	}
	if s.completed {
		score := s.finalScore
		resp.FinalScore = &score
		return resp
	}
	q := models.PublicQuestion(s.Quiz.Questions[s.index])
	resp.Question = &q
	deadline := s.deadline
	resp.Deadline = &deadline
	return resp
}
