package gamification

import (
	"time"

	"github.com/ocean-explorer/backend/internal/models"
)

// One-time experience bonuses. Each unlock grants its bonus exactly once;
// re-dispatching the same unlock is a no-op.
const (
	AchievementBonus = 200
	BadgeBonus       = 300
	ChallengeBonus   = 500
)

// Action is the closed set of gamification store transitions.
type Action interface {
	isGamificationAction()
}

type AddExperience struct {
	Amount int
}

type CompleteChallenge struct {
	ChallengeID string
}

type UnlockAchievement struct {
	AchievementID string
}

type EarnBadge struct {
	BadgeID string
}

type SetChallengeProgress struct {
	ChallengeID string
	Progress    int
}

type UpdateStreak struct{}

func (AddExperience) isGamificationAction()        {}
func (CompleteChallenge) isGamificationAction()    {}
func (UnlockAchievement) isGamificationAction()    {}
func (EarnBadge) isGamificationAction()            {}
func (SetChallengeProgress) isGamificationAction() {}
func (UpdateStreak) isGamificationAction()         {}

// Reduce applies one action at the given instant and returns the new state.
// Pure: the input state is never mutated. Unknown challenge ids are silently
// ignored; experience amounts are not range-checked.
func Reduce(state models.GamificationState, action Action, now time.Time) models.GamificationState {
	switch a := action.(type) {
	case AddExperience:
		next := clone(state)
		next.Experience += a.Amount
		next.LastActivity = &now
		return next

	case CompleteChallenge:
		idx := findChallenge(state.Challenges, a.ChallengeID)
		if idx < 0 || state.Challenges[idx].Completed {
			return state
		}
		next := clone(state)
		next.Challenges[idx].Completed = true
		next.Challenges[idx].Progress = 100
		next.Experience += ChallengeBonus
		next.LastActivity = &now
		return next

	case UnlockAchievement:
		if contains(state.Achievements, a.AchievementID) {
			return state
		}
		next := clone(state)
		next.Achievements = append(next.Achievements, a.AchievementID)
		next.Experience += AchievementBonus
		next.LastActivity = &now
		return next

	case EarnBadge:
		if contains(state.Badges, a.BadgeID) {
			return state
		}
		next := clone(state)
		next.Badges = append(next.Badges, a.BadgeID)
		next.Experience += BadgeBonus
		next.LastActivity = &now
		return next

	case SetChallengeProgress:
		idx := findChallenge(state.Challenges, a.ChallengeID)
		if idx < 0 {
			return state
		}
		// A completed challenge's progress is pinned at 100.
		if state.Challenges[idx].Completed {
			return state
		}
		next := clone(state)
		next.Challenges[idx].Progress = clamp(a.Progress, 0, 100)
		return next

	case UpdateStreak:
		next := clone(state)
		if state.LastActivity != nil && calendarDays(*state.LastActivity, now) == 1 {
			next.StreakDays = state.StreakDays + 1
		} else {
			next.StreakDays = 1
		}
		next.LastActivity = &now
		return next
	}
	return state
}

// calendarDays returns the number of UTC calendar days between two instants.
// Truncating to dates keeps month and year boundaries correct (Jan 31 → Feb 1
// is one day).
func calendarDays(from, to time.Time) int {
	fy, fm, fd := from.UTC().Date()
	ty, tm, td := to.UTC().Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

func findChallenge(challenges []models.Challenge, id string) int {
	for i, c := range challenges {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clone(state models.GamificationState) models.GamificationState {
	next := state
	next.Achievements = append([]string{}, state.Achievements...)
	next.Badges = append([]string{}, state.Badges...)
	next.Challenges = append([]models.Challenge{}, state.Challenges...)
	if state.LastActivity != nil {
		t := *state.LastActivity
		next.LastActivity = &t
	}
	return next
}
