package quiz

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ocean-explorer/backend/internal/gamification"
	"github.com/ocean-explorer/backend/internal/generator"
	"github.com/ocean-explorer/backend/internal/models"
	"github.com/ocean-explorer/backend/internal/progress"
)

// DefaultQuestionTime is the per-question countdown.
const DefaultQuestionTime = 30 * time.Second

// ExperiencePerPoint converts quiz points earned into gamification
// experience on completion.
const ExperiencePerPoint = 100

// firstQuizThreshold is the score (percent) at or above which the
// first-quiz challenge completes.
const firstQuizThreshold = 80

var (
	ErrChapterNotFound = errors.New("chapter not found")
	ErrSessionNotFound = errors.New("quiz session not found")
)

// Service owns all live quiz sessions and the chapter quiz content. Each
// session carries the progress and gamification stores of the browser
// session that started it, so completion can report scores without the
// engine knowing about either store.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry

	builtin     map[string]models.ChapterQuiz
	store       *Store
	gen         *generator.Generator
	perQuestion time.Duration
	now         func() time.Time
}

type sessionEntry struct {
	session *Session
	prog    *progress.Store
	gam     *gamification.Store
}

// NewService builds the quiz service. store and gen may be nil (builtin
// content only, generation disabled).
func NewService(builtin map[string]models.ChapterQuiz, store *Store, gen *generator.Generator, perQuestion time.Duration) *Service {
	if perQuestion <= 0 {
		perQuestion = DefaultQuestionTime
	}
	return &Service{
		sessions:    make(map[string]*sessionEntry),
		builtin:     builtin,
		store:       store,
		gen:         gen,
		perQuestion: perQuestion,
		now:         time.Now,
	}
}

// ── Content ─────────────────────────────────────────────

// ChapterQuiz returns the full quiz for a chapter: builtin questions plus
// any generated ones. The engine is agnostic to the mix.
func (s *Service) ChapterQuiz(chapterID string) (models.ChapterQuiz, error) {
	quiz, ok := s.builtin[chapterID]
	if !ok {
		return models.ChapterQuiz{}, ErrChapterNotFound
	}

	if s.store != nil {
		generated, err := s.store.ListByChapter(chapterID)
		if err != nil {
			log.Printf("[quiz] failed to load generated questions for %s: %v", chapterID, err)
		} else if len(generated) > 0 {
			quiz.Questions = append(append([]models.Question{}, quiz.Questions...), generated...)
		}
	}
	return quiz, nil
}

// ListChapters returns the answer-free chapter catalog, sorted by id.
func (s *Service) ListChapters() []models.ChapterQuizPublic {
	ids := make([]string, 0, len(s.builtin))
	for id := range s.builtin {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	chapters := make([]models.ChapterQuizPublic, 0, len(ids))
	for _, id := range ids {
		quiz, err := s.ChapterQuiz(id)
		if err != nil {
			continue
		}
		chapters = append(chapters, models.ChapterQuizPublic{
			ChapterID:     quiz.ChapterID,
			Title:         quiz.Title,
			Description:   quiz.Description,
			QuestionCount: len(quiz.Questions),
		})
	}
	return chapters
}

// ── Sessions ────────────────────────────────────────────

// Start constructs a new session for a chapter. Completed sessions are never
// restarted in place; every attempt gets a fresh id.
func (s *Service) Start(chapterID string, prog *progress.Store, gam *gamification.Store) (models.QuizSessionResponse, error) {
	quiz, err := s.ChapterQuiz(chapterID)
	if err != nil {
		return models.QuizSessionResponse{}, err
	}
	if len(quiz.Questions) == 0 {
		return models.QuizSessionResponse{}, fmt.Errorf("chapter %s has no questions", chapterID)
	}

	session := NewSession(uuid.NewString(), quiz, s.perQuestion, s.now)

	s.mu.Lock()
	s.sessions[session.ID] = &sessionEntry{session: session, prog: prog, gam: gam}
	s.mu.Unlock()

	return session.View(), nil
}

// Answer submits a manual answer. A correct answer adds the question's
// points to the session's progress store immediately, as the browser app
// did per reveal.
func (s *Service) Answer(sessionID, questionID string, choice int) (models.AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return models.AnswerResult{}, ErrSessionNotFound
	}

	result, err := entry.session.Answer(questionID, choice)
	if err != nil {
		return models.AnswerResult{}, err
	}
	if result.Correct && entry.prog != nil {
		entry.prog.Dispatch(progress.AddPoints{Amount: result.PointsEarned})
	}
	return result, nil
}

// Timeout records an expired countdown for the current question.
func (s *Service) Timeout(sessionID, questionID string) (models.AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return models.AnswerResult{}, ErrSessionNotFound
	}
	return entry.session.Timeout(questionID)
}

// Advance moves to the next question, or completes the session after the
// last reveal. Completion reports the normalized percentage to the progress
// store exactly once, feeds experience to gamification, and completes the
// first-quiz challenge on a qualifying score.
func (s *Service) Advance(sessionID string) (models.QuizSessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return models.QuizSessionResponse{}, ErrSessionNotFound
	}

	completed, err := entry.session.Advance()
	if err != nil {
		return models.QuizSessionResponse{}, err
	}
	if completed {
		s.reportCompletion(entry)
	}
	return entry.session.View(), nil
}

// Get returns the current view of a session.
func (s *Service) Get(sessionID string) (models.QuizSessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return models.QuizSessionResponse{}, ErrSessionNotFound
	}
	return entry.session.View(), nil
}

func (s *Service) reportCompletion(entry *sessionEntry) {
	session := entry.session
	final := session.FinalScore()

	if entry.prog != nil {
		entry.prog.Dispatch(progress.SetQuizScore{ChapterID: session.ChapterID, Score: final})
	}
	if entry.gam != nil {
		if earned := session.RunningScore(); earned > 0 {
			entry.gam.Dispatch(gamification.AddExperience{Amount: earned * ExperiencePerPoint})
		}
		if final >= firstQuizThreshold {
			entry.gam.Dispatch(gamification.CompleteChallenge{ChallengeID: gamification.ChallengeFirstQuiz})
		}
	}
}

// ── Generation ──────────────────────────────────────────

// Generate produces LLM-authored questions for a chapter and persists the
// ones that pass structural validation.
func (s *Service) Generate(ctx context.Context, chapterID string, count int) ([]models.Question, error) {
	if s.gen == nil || s.store == nil {
		return nil, fmt.Errorf("generation is not configured")
	}
	quiz, ok := s.builtin[chapterID]
	if !ok {
		return nil, ErrChapterNotFound
	}

	batch, err := s.gen.GenerateChapterBatch(ctx, chapterID, quiz.Title, count)
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	questions := make([]models.Question, 0, len(batch.Questions))
	for _, gq := range batch.Questions {
		questions = append(questions, models.Question{
			ID:            uuid.NewString(),
			Text:          gq.Text,
			Options:       gq.Options,
			CorrectAnswer: gq.CorrectAnswer,
			Explanation:   gq.Explanation,
			Points:        1,
		})
	}

	if err := s.store.Insert(chapterID, questions); err != nil {
		return nil, fmt.Errorf("store generated questions: %w", err)
	}
	log.Printf("[quiz] generated %d questions for chapter %s", len(questions), chapterID)
	return questions, nil
}
