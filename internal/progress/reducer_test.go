package progress

import (
	"testing"

	"github.com/ocean-explorer/backend/internal/models"
)

func TestCompleteChapterDeduplicates(t *testing.T) {
	state := models.NewProgressState()
	state = Reduce(state, CompleteChapter{ChapterID: "circulation"})
	state = Reduce(state, CompleteChapter{ChapterID: "circulation"})
	state = Reduce(state, CompleteChapter{ChapterID: "ecosystem"})

	if len(state.CompletedChapters) != 2 {
		t.Fatalf("expected 2 completed chapters, got %v", state.CompletedChapters)
	}
	if state.CompletedChapters[0] != "circulation" || state.CompletedChapters[1] != "ecosystem" {
		t.Errorf("unexpected chapters: %v", state.CompletedChapters)
	}
}

func TestQuizScoreMonotonic(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   float64
	}{
		{"increasing", []float64{60, 80}, 80},
		{"decreasing", []float64{80, 60}, 80},
		{"equal", []float64{75, 75}, 75},
		{"single", []float64{40}, 40},
		{"zero then higher", []float64{0, 90, 10}, 90},
	}

	for _, tt := range tests {
		state := models.NewProgressState()
		for _, s := range tt.scores {
			state = Reduce(state, SetQuizScore{ChapterID: "circulation", Score: s})
		}
		if got := state.QuizScores["circulation"]; got != tt.want {
			t.Errorf("%s: quizScores[circulation] = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFindConnectionDeduplicates(t *testing.T) {
	state := models.NewProgressState()
	state = Reduce(state, FindConnection{ChapterID: "heart", ConnectionID: "x"})
	state = Reduce(state, FindConnection{ChapterID: "heart", ConnectionID: "x"})

	if got := state.FoundConnections["heart"]; len(got) != 1 || got[0] != "x" {
		t.Errorf("foundConnections[heart] = %v, want exactly [x]", got)
	}

	// Same connection id under a different chapter is a distinct discovery.
	state = Reduce(state, FindConnection{ChapterID: "lungs", ConnectionID: "x"})
	if got := state.FoundConnections["lungs"]; len(got) != 1 {
		t.Errorf("foundConnections[lungs] = %v, want [x]", got)
	}
}

func TestUnlockAchievementIdempotent(t *testing.T) {
	state := models.NewProgressState()
	once := Reduce(state, UnlockAchievement{AchievementID: "explore_all_systems"})
	twice := Reduce(once, UnlockAchievement{AchievementID: "explore_all_systems"})

	if len(twice.Achievements) != 1 {
		t.Errorf("achievements = %v, want exactly one entry", twice.Achievements)
	}
}

func TestAddPointsAcceptsAnyAmount(t *testing.T) {
	state := models.NewProgressState()
	state = Reduce(state, AddPoints{Amount: 10})
	state = Reduce(state, AddPoints{Amount: -3})

	if state.TotalPoints != 7 {
		t.Errorf("totalPoints = %d, want 7", state.TotalPoints)
	}
}

func TestUpdateTimeOverwrites(t *testing.T) {
	state := models.NewProgressState()
	state = Reduce(state, UpdateTime{Seconds: 120})
	state = Reduce(state, UpdateTime{Seconds: 45})

	if state.TimeSpent != 45 {
		t.Errorf("timeSpent = %d, want 45 (last report wins)", state.TimeSpent)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	state := models.NewProgressState()
	state = Reduce(state, FindConnection{ChapterID: "heart", ConnectionID: "x"})

	next := Reduce(state, FindConnection{ChapterID: "heart", ConnectionID: "y"})
	if len(state.FoundConnections["heart"]) != 1 {
		t.Errorf("input state mutated: %v", state.FoundConnections["heart"])
	}
	if len(next.FoundConnections["heart"]) != 2 {
		t.Errorf("next state missing connection: %v", next.FoundConnections["heart"])
	}
}
