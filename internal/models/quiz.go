package models

import "time"

// ── Quiz Content ──────────────────────────────────────────

// Question is a single multiple-choice quiz question. CorrectAnswer is the
// index into Options. Points defaults to 1 when a source omits it.
type Question struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Points        int      `json:"points"`
}

// ChapterQuiz is the quiz definition one chapter exposes. The engine is
// agnostic to where the questions came from (builtin catalog or generated).
type ChapterQuiz struct {
	ChapterID   string     `json:"chapter_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// TotalPoints sums the point values of all questions.
func (q ChapterQuiz) TotalPoints() int {
	total := 0
	for _, question := range q.Questions {
		p := question.Points
		if p == 0 {
			p = 1
		}
		total += p
	}
	return total
}

// ── Public (answer-free) projections ──────────────────────

// QuestionPublic is a question with the correct answer and explanation
// stripped, safe to hand to the browser before the reveal.
type QuestionPublic struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Points  int      `json:"points"`
}

type ChapterQuizPublic struct {
	ChapterID     string           `json:"chapter_id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	QuestionCount int              `json:"question_count"`
	Questions     []QuestionPublic `json:"questions,omitempty"`
}

func PublicQuestion(q Question) QuestionPublic {
	points := q.Points
	if points == 0 {
		points = 1
	}
	return QuestionPublic{ID: q.ID, Text: q.Text, Options: q.Options, Points: points}
}

// ── Request Types ─────────────────────────────────────────

type AnswerRequest struct {
	QuestionID string `json:"question_id"`
	Answer     int    `json:"answer"`
}

type TimeoutRequest struct {
	QuestionID string `json:"question_id"`
}

type GenerateQuestionsRequest struct {
	Count int `json:"count"`
}

// ── Response Types ────────────────────────────────────────

type AnswerResult struct {
	QuestionID    string `json:"question_id"`
	Correct       bool   `json:"correct"`
	TimedOut      bool   `json:"timed_out"`
	CorrectAnswer int    `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	PointsEarned  int    `json:"points_earned"`
}

type QuizSessionResponse struct {
	SessionID     string          `json:"session_id"`
	ChapterID     string          `json:"chapter_id"`
	QuestionIndex int             `json:"question_index"`
	QuestionCount int             `json:"question_count"`
	Question      *QuestionPublic `json:"question,omitempty"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	RunningScore  int             `json:"running_score"`
	Completed     bool            `json:"completed"`
	FinalScore    *float64        `json:"final_score,omitempty"`
}
