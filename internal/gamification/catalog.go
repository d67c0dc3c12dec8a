package gamification

import "github.com/ocean-explorer/backend/internal/models"

// ChallengeFirstQuiz completes automatically when a quiz session finishes
// with a score of 80% or higher.
const ChallengeFirstQuiz = "first_quiz"

// DefaultChallenges returns the fixed challenge catalog every session starts
// with. The catalog itself never changes at runtime, only per-challenge
// progress and completion.
func DefaultChallenges() []models.Challenge {
	return []models.Challenge{
		{
			ID:          ChallengeFirstQuiz,
			Title:       "Quiz Master",
			Description: "Complete your first quiz with a score of 80% or higher",
		},
		{
			ID:          "system_explorer",
			Title:       "System Explorer",
			Description: "Discover all parallel systems between ocean and human body",
		},
		{
			ID:          "connection_finder",
			Title:       "Connection Finder",
			Description: "Find 10 unique connections between systems",
		},
	}
}

// NewState returns the starting gamification state with the challenge
// catalog seeded.
func NewState() models.GamificationState {
	return models.GamificationState{
		Achievements: []string{},
		Badges:       []string{},
		Challenges:   DefaultChallenges(),
	}
}
