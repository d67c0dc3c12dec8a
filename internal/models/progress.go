package models

// ProgressState is the full per-session learning progress record. Its JSON
// shape is the persisted snapshot format, so field names stay camelCase to
// match what the browser app stores and reads back.
type ProgressState struct {
	CompletedChapters []string            `json:"completedChapters"`
	FoundConnections  map[string][]string `json:"foundConnections"`
	QuizScores        map[string]float64  `json:"quizScores"`
	Achievements      []string            `json:"achievements"`
	TotalPoints       int                 `json:"totalPoints"`
	TimeSpent         int                 `json:"timeSpent"`
}

// NewProgressState returns the all-empty starting state used when no snapshot
// exists for a session.
func NewProgressState() ProgressState {
	return ProgressState{
		CompletedChapters: []string{},
		FoundConnections:  map[string][]string{},
		QuizScores:        map[string]float64{},
		Achievements:      []string{},
	}
}

// ── Request Types ─────────────────────────────────────────

type FindConnectionRequest struct {
	ChapterID    string `json:"chapter_id"`
	ConnectionID string `json:"connection_id"`
}

type AddPointsRequest struct {
	Amount int `json:"amount"`
}

type UpdateTimeRequest struct {
	Seconds int `json:"seconds"`
}
