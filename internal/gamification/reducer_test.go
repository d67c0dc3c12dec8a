package gamification

import (
	"testing"
	"time"

	"github.com/ocean-explorer/backend/internal/models"
)

var noon = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestLevelDerivation(t *testing.T) {
	tests := []struct {
		experience int
		want       int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{1999, 2},
		{2500, 3},
		{10000, 11},
	}

	for _, tt := range tests {
		state := models.GamificationState{Experience: tt.experience}
		if got := state.Level(); got != tt.want {
			t.Errorf("Level() with experience=%d = %d, want %d", tt.experience, got, tt.want)
		}
	}
}

func TestAddExperienceUpdatesActivity(t *testing.T) {
	state := Reduce(NewState(), AddExperience{Amount: 250}, noon)

	if state.Experience != 250 {
		t.Errorf("experience = %d, want 250", state.Experience)
	}
	if state.LastActivity == nil || !state.LastActivity.Equal(noon) {
		t.Errorf("lastActivity = %v, want %v", state.LastActivity, noon)
	}
}

func TestUnlockAchievementBonusOnce(t *testing.T) {
	state := NewState()
	state = Reduce(state, UnlockAchievement{AchievementID: "explore_all_systems"}, noon)
	state = Reduce(state, UnlockAchievement{AchievementID: "explore_all_systems"}, noon)

	if state.Experience != AchievementBonus {
		t.Errorf("experience = %d, want %d (bonus granted exactly once)", state.Experience, AchievementBonus)
	}
	if len(state.Achievements) != 1 {
		t.Errorf("achievements = %v, want one entry", state.Achievements)
	}
}

func TestEarnBadgeBonusOnce(t *testing.T) {
	state := NewState()
	state = Reduce(state, EarnBadge{BadgeID: "deep_diver"}, noon)
	state = Reduce(state, EarnBadge{BadgeID: "deep_diver"}, noon)

	if state.Experience != BadgeBonus {
		t.Errorf("experience = %d, want %d", state.Experience, BadgeBonus)
	}
}

func TestCompleteChallenge(t *testing.T) {
	state := NewState()
	state = Reduce(state, CompleteChallenge{ChallengeID: ChallengeFirstQuiz}, noon)

	var challenge models.Challenge
	for _, c := range state.Challenges {
		if c.ID == ChallengeFirstQuiz {
			challenge = c
		}
	}
	if !challenge.Completed || challenge.Progress != 100 {
		t.Errorf("challenge = %+v, want completed with progress 100", challenge)
	}
	if state.Experience != ChallengeBonus {
		t.Errorf("experience = %d, want %d", state.Experience, ChallengeBonus)
	}

	// Completing again grants nothing further.
	again := Reduce(state, CompleteChallenge{ChallengeID: ChallengeFirstQuiz}, noon)
	if again.Experience != ChallengeBonus {
		t.Errorf("experience after repeat = %d, want %d", again.Experience, ChallengeBonus)
	}
}

func TestCompleteUnknownChallengeIsNoOp(t *testing.T) {
	state := NewState()
	next := Reduce(state, CompleteChallenge{ChallengeID: "does_not_exist"}, noon)

	if next.Experience != 0 || len(next.Challenges) != len(state.Challenges) {
		t.Errorf("unknown challenge changed state: %+v", next)
	}
}

func TestChallengeTerminality(t *testing.T) {
	state := NewState()
	state = Reduce(state, CompleteChallenge{ChallengeID: "system_explorer"}, noon)

	// No action can lower a completed challenge's progress or revert it.
	state = Reduce(state, SetChallengeProgress{ChallengeID: "system_explorer", Progress: 10}, noon)

	for _, c := range state.Challenges {
		if c.ID == "system_explorer" {
			if !c.Completed || c.Progress != 100 {
				t.Errorf("completed challenge reverted: %+v", c)
			}
		}
	}
}

func TestSetChallengeProgressClamps(t *testing.T) {
	state := NewState()
	state = Reduce(state, SetChallengeProgress{ChallengeID: "connection_finder", Progress: 150}, noon)
	if state.Challenges[2].Progress != 100 {
		t.Errorf("progress = %d, want clamped to 100", state.Challenges[2].Progress)
	}

	state = Reduce(state, SetChallengeProgress{ChallengeID: "connection_finder", Progress: -5}, noon)
	if state.Challenges[2].Progress != 0 {
		t.Errorf("progress = %d, want clamped to 0", state.Challenges[2].Progress)
	}
}

func TestUpdateStreak(t *testing.T) {
	tests := []struct {
		name         string
		lastActivity time.Time
		now          time.Time
		startStreak  int
		want         int
	}{
		{"one day later", date(2026, 3, 14), date(2026, 3, 15), 4, 5},
		{"same day", date(2026, 3, 15), date(2026, 3, 15), 4, 1},
		{"two day gap", date(2026, 3, 13), date(2026, 3, 15), 4, 1},
		{"month boundary", date(2026, 1, 31), date(2026, 2, 1), 2, 3},
		{"year boundary", date(2025, 12, 31), date(2026, 1, 1), 9, 10},
	}

	for _, tt := range tests {
		last := tt.lastActivity
		state := models.GamificationState{StreakDays: tt.startStreak, LastActivity: &last}
		next := Reduce(state, UpdateStreak{}, tt.now)
		if next.StreakDays != tt.want {
			t.Errorf("%s: streakDays = %d, want %d", tt.name, next.StreakDays, tt.want)
		}
		if next.LastActivity == nil || !next.LastActivity.Equal(tt.now) {
			t.Errorf("%s: lastActivity not advanced", tt.name)
		}
	}
}

func TestUpdateStreakWithoutHistory(t *testing.T) {
	next := Reduce(NewState(), UpdateStreak{}, noon)
	if next.StreakDays != 1 {
		t.Errorf("streakDays = %d, want 1 on first activity", next.StreakDays)
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 30, 0, 0, time.UTC)
}
