package models

import "time"

// ── Core Gamification Structs ─────────────────────────────

// Challenge is a longer-running objective with incremental progress and a
// one-way completed transition.
type Challenge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
	Completed   bool   `json:"completed"`
}

// GamificationState holds experience, streak, and unlock state for one
// session. Level is derived from experience and is never stored.
type GamificationState struct {
	Experience   int         `json:"experience"`
	StreakDays   int         `json:"streak_days"`
	LastActivity *time.Time  `json:"last_activity"`
	Achievements []string    `json:"achievements"`
	Badges       []string    `json:"badges"`
	Challenges   []Challenge `json:"challenges"`
}

// Level is computed on read so it can never drift out of sync with
// experience: floor(experience/1000) + 1.
func (s GamificationState) Level() int {
	return s.Experience/1000 + 1
}

// CompletedChallenges returns the ids of all completed challenges, in
// catalog order.
func (s GamificationState) CompletedChallenges() []string {
	ids := []string{}
	for _, c := range s.Challenges {
		if c.Completed {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// ── Request Types ─────────────────────────────────────────

type AddExperienceRequest struct {
	Amount int `json:"amount"`
}

type ChallengeProgressRequest struct {
	Progress int `json:"progress"`
}

// ── Response Types ────────────────────────────────────────

type GamificationResponse struct {
	Level        int         `json:"level"`
	Experience   int         `json:"experience"`
	StreakDays   int         `json:"streak_days"`
	LastActivity *time.Time  `json:"last_activity"`
	Achievements []string    `json:"achievements"`
	Badges       []string    `json:"badges"`
	Challenges   []Challenge `json:"challenges"`
}

func NewGamificationResponse(s GamificationState) GamificationResponse {
	return GamificationResponse{
		Level:        s.Level(),
		Experience:   s.Experience,
		StreakDays:   s.StreakDays,
		LastActivity: s.LastActivity,
		Achievements: s.Achievements,
		Badges:       s.Badges,
		Challenges:   s.Challenges,
	}
}
