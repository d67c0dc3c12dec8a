package quiz

import (
	"errors"
	"testing"
	"time"

	"github.com/ocean-explorer/backend/internal/gamification"
	"github.com/ocean-explorer/backend/internal/models"
	"github.com/ocean-explorer/backend/internal/progress"
)

func testService(t *testing.T) *Service {
	t.Helper()
	builtin := map[string]models.ChapterQuiz{
		"circulation": fiveQuestionQuiz(),
	}
	return NewService(builtin, nil, nil, 30*time.Second)
}

// runQuiz starts a session and plays it to completion with the given
// answers (-1 means timeout).
func runQuiz(t *testing.T, svc *Service, prog *progress.Store, gam *gamification.Store, answers []int) models.QuizSessionResponse {
	t.Helper()

	view, err := svc.Start("circulation", prog, gam)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	for _, choice := range answers {
		if view.Question == nil {
			t.Fatal("session has no current question")
		}
		if choice < 0 {
			if _, err := svc.Timeout(view.SessionID, view.Question.ID); err != nil {
				t.Fatalf("Timeout: %v", err)
			}
		} else {
			if _, err := svc.Answer(view.SessionID, view.Question.ID, choice); err != nil {
				t.Fatalf("Answer: %v", err)
			}
		}
		view, err = svc.Advance(view.SessionID)
		if err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
	return view
}

func TestCompletionReportsScoreAndExperience(t *testing.T) {
	svc := testService(t)
	prog := progress.NewStore("s1", nil)
	gam := gamification.NewStore()

	// Four of five correct: 80 percent, above the first-quiz threshold.
	view := runQuiz(t, svc, prog, gam, []int{0, 0, 0, 1, 0})

	if !view.Completed {
		t.Fatal("session not completed")
	}
	if view.FinalScore == nil || *view.FinalScore != 80 {
		t.Fatalf("final score = %v, want 80", view.FinalScore)
	}

	progState := prog.State()
	if got := progState.QuizScores["circulation"]; got != 80 {
		t.Errorf("recorded quiz score = %v, want 80", got)
	}
	// One point per correct answer, awarded at reveal time.
	if progState.TotalPoints != 4 {
		t.Errorf("total points = %d, want 4", progState.TotalPoints)
	}

	gamState := gam.State()
	wantXP := 4*ExperiencePerPoint + gamification.ChallengeBonus
	if gamState.Experience != wantXP {
		t.Errorf("experience = %d, want %d", gamState.Experience, wantXP)
	}
	if !completedChallenge(gamState, gamification.ChallengeFirstQuiz) {
		t.Error("first-quiz challenge not completed at 80 percent")
	}
}

func TestCompletionBelowThresholdSkipsChallenge(t *testing.T) {
	svc := testService(t)
	prog := progress.NewStore("s1", nil)
	gam := gamification.NewStore()

	// Two of five correct: 40 percent.
	view := runQuiz(t, svc, prog, gam, []int{0, 0, 1, 1, 1})

	if view.FinalScore == nil || *view.FinalScore != 40 {
		t.Fatalf("final score = %v, want 40", view.FinalScore)
	}
	if got := prog.State().QuizScores["circulation"]; got != 40 {
		t.Errorf("recorded quiz score = %v, want 40", got)
	}
	if completedChallenge(gam.State(), gamification.ChallengeFirstQuiz) {
		t.Error("first-quiz challenge must not complete below 80 percent")
	}
	if got := gam.State().Experience; got != 2*ExperiencePerPoint {
		t.Errorf("experience = %d, want %d", got, 2*ExperiencePerPoint)
	}
}

func TestTimeoutsEarnNothing(t *testing.T) {
	svc := testService(t)
	prog := progress.NewStore("s1", nil)
	gam := gamification.NewStore()

	view := runQuiz(t, svc, prog, gam, []int{-1, -1, -1, -1, -1})

	if view.FinalScore == nil || *view.FinalScore != 0 {
		t.Fatalf("final score = %v, want 0", view.FinalScore)
	}
	if got := prog.State().TotalPoints; got != 0 {
		t.Errorf("total points = %d, want 0", got)
	}
	if got := gam.State().Experience; got != 0 {
		t.Errorf("experience = %d, want 0", got)
	}
	// A zero score is still recorded as the attempt's result.
	if _, ok := prog.State().QuizScores["circulation"]; !ok {
		t.Error("completed attempt left no recorded score")
	}
}

func TestRetakeKeepsBestScore(t *testing.T) {
	svc := testService(t)
	prog := progress.NewStore("s1", nil)
	gam := gamification.NewStore()

	runQuiz(t, svc, prog, gam, []int{0, 0, 0, 0, 0})
	runQuiz(t, svc, prog, gam, []int{0, 1, 1, 1, 1})

	if got := prog.State().QuizScores["circulation"]; got != 100 {
		t.Errorf("quiz score after weaker retake = %v, want 100", got)
	}
}

func TestCompletedSessionStaysTerminal(t *testing.T) {
	svc := testService(t)
	prog := progress.NewStore("s1", nil)
	gam := gamification.NewStore()

	view := runQuiz(t, svc, prog, gam, []int{0, 0, 0, 0, 0})

	if _, err := svc.Advance(view.SessionID); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("advance after completion error = %v, want ErrSessionCompleted", err)
	}
	// The score was written exactly once; the terminal session cannot
	// write it again.
	if got := prog.State().QuizScores["circulation"]; got != 100 {
		t.Errorf("quiz score = %v, want 100", got)
	}
}

func TestStartUnknownChapter(t *testing.T) {
	svc := testService(t)

	_, err := svc.Start("abyssal", nil, nil)
	if !errors.Is(err, ErrChapterNotFound) {
		t.Errorf("error = %v, want ErrChapterNotFound", err)
	}
}

func TestUnknownSession(t *testing.T) {
	svc := testService(t)

	if _, err := svc.Get("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get error = %v, want ErrSessionNotFound", err)
	}
	if _, err := svc.Answer("nope", "a", 0); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Answer error = %v, want ErrSessionNotFound", err)
	}
	if _, err := svc.Advance("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Advance error = %v, want ErrSessionNotFound", err)
	}
}

func TestListChaptersSorted(t *testing.T) {
	builtin := map[string]models.ChapterQuiz{
		"ecosystem":   {ChapterID: "ecosystem", Title: "Ecosystem", Questions: fiveQuestionQuiz().Questions[:2]},
		"circulation": fiveQuestionQuiz(),
	}
	svc := NewService(builtin, nil, nil, 30*time.Second)

	chapters := svc.ListChapters()
	if len(chapters) != 2 {
		t.Fatalf("chapter count = %d, want 2", len(chapters))
	}
	if chapters[0].ChapterID != "circulation" || chapters[1].ChapterID != "ecosystem" {
		t.Errorf("chapters out of order: %s, %s", chapters[0].ChapterID, chapters[1].ChapterID)
	}
	if chapters[0].QuestionCount != 5 {
		t.Errorf("question count = %d, want 5", chapters[0].QuestionCount)
	}
	if len(chapters[0].Questions) != 0 {
		t.Error("catalog listing must not include question bodies")
	}
}

func completedChallenge(state models.GamificationState, id string) bool {
	for _, c := range state.Challenges {
		if c.ID == id {
			return c.Completed
		}
	}
	return false
}
