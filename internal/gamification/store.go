package gamification

import (
	"sync"
	"time"

	"github.com/ocean-explorer/backend/internal/models"
)

// Store owns the current gamification state for one browser session.
// Dispatch serializes actions under a mutex so each one is processed to
// completion before the next.
type Store struct {
	mu    sync.Mutex
	state models.GamificationState
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{state: NewState(), now: time.Now}
}

// NewStoreAt builds a store with an injected clock, for tests.
func NewStoreAt(now func() time.Time) *Store {
	return &Store{state: NewState(), now: now}
}

// Dispatch applies an action. Before any action that touches lastActivity,
// the streak is re-evaluated as an implicit follow-up transition: a one-day
// gap since the last activity extends the streak, a longer gap breaks it.
// Same-day activity leaves the streak alone.
func (s *Store) Dispatch(action Action) models.GamificationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if touchesActivity(action) && s.state.LastActivity != nil {
		if calendarDays(*s.state.LastActivity, now) >= 1 {
			s.state = Reduce(s.state, UpdateStreak{}, now)
		}
	}
	s.state = Reduce(s.state, action, now)
	return clone(s.state)
}

// touchesActivity reports whether the action is experience-earning and will
// therefore update lastActivity.
func touchesActivity(action Action) bool {
	switch action.(type) {
	case AddExperience, CompleteChallenge, UnlockAchievement, EarnBadge:
		return true
	}
	return false
}

// State returns a copy of the current state.
func (s *Store) State() models.GamificationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.state)
}
