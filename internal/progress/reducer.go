package progress

import "github.com/ocean-explorer/backend/internal/models"

// Action is the closed set of progress store transitions.
type Action interface {
	isProgressAction()
}

type CompleteChapter struct {
	ChapterID string
}

type FindConnection struct {
	ChapterID    string
	ConnectionID string
}

type SetQuizScore struct {
	ChapterID string
	Score     float64
}

type UnlockAchievement struct {
	AchievementID string
}

type AddPoints struct {
	Amount int
}

type UpdateTime struct {
	Seconds int
}

func (CompleteChapter) isProgressAction()   {}
func (FindConnection) isProgressAction()    {}
func (SetQuizScore) isProgressAction()      {}
func (UnlockAchievement) isProgressAction() {}
func (AddPoints) isProgressAction()         {}
func (UpdateTime) isProgressAction()        {}

// Reduce applies one action to a progress state and returns the new state.
// It is pure: the input state is never mutated, and every branch is a total
// function of (state, action). No action validates its input: unknown ids
// and negative amounts are accepted as-is.
func Reduce(state models.ProgressState, action Action) models.ProgressState {
	switch a := action.(type) {
	case CompleteChapter:
		if contains(state.CompletedChapters, a.ChapterID) {
			return state
		}
		next := clone(state)
		next.CompletedChapters = append(next.CompletedChapters, a.ChapterID)
		return next

	case FindConnection:
		if contains(state.FoundConnections[a.ChapterID], a.ConnectionID) {
			return state
		}
		next := clone(state)
		next.FoundConnections[a.ChapterID] = append(next.FoundConnections[a.ChapterID], a.ConnectionID)
		return next

	case SetQuizScore:
		// Monotonic: a chapter's score is the max ever submitted for it.
		if existing, ok := state.QuizScores[a.ChapterID]; ok && existing >= a.Score {
			return state
		}
		next := clone(state)
		next.QuizScores[a.ChapterID] = a.Score
		return next

	case UnlockAchievement:
		if contains(state.Achievements, a.AchievementID) {
			return state
		}
		next := clone(state)
		next.Achievements = append(next.Achievements, a.AchievementID)
		return next

	case AddPoints:
		next := clone(state)
		next.TotalPoints += a.Amount
		return next

	case UpdateTime:
		// Absolute value, not a delta: the last report wins.
		next := clone(state)
		next.TimeSpent = a.Seconds
		return next
	}
	return state
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

// clone deep-copies the state so reducers can append freely.
func clone(state models.ProgressState) models.ProgressState {
	next := state
	next.CompletedChapters = append([]string{}, state.CompletedChapters...)
	next.Achievements = append([]string{}, state.Achievements...)
	next.FoundConnections = make(map[string][]string, len(state.FoundConnections))
	for chapter, ids := range state.FoundConnections {
		next.FoundConnections[chapter] = append([]string{}, ids...)
	}
	next.QuizScores = make(map[string]float64, len(state.QuizScores))
	for chapter, score := range state.QuizScores {
		next.QuizScores[chapter] = score
	}
	return next
}
