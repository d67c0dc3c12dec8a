package progress

import (
	"testing"

	"github.com/ocean-explorer/backend/internal/models"
)

// memorySnapshots is an in-memory Snapshots implementation for tests.
type memorySnapshots struct {
	records map[string]models.ProgressState
	saves   int
}

func newMemorySnapshots() *memorySnapshots {
	return &memorySnapshots{records: map[string]models.ProgressState{}}
}

func (m *memorySnapshots) Load(sessionID string) (*models.ProgressState, error) {
	state, ok := m.records[sessionID]
	if !ok {
		return nil, nil
	}
	return &state, nil
}

func (m *memorySnapshots) Save(sessionID string, state models.ProgressState) error {
	m.records[sessionID] = state
	m.saves++
	return nil
}

func TestStorePersistsEveryChange(t *testing.T) {
	snaps := newMemorySnapshots()
	store := NewStore("tab-1", snaps)

	store.Dispatch(CompleteChapter{ChapterID: "circulation"})
	store.Dispatch(AddPoints{Amount: 5})

	if snaps.saves != 2 {
		t.Errorf("saves = %d, want 2 (one per dispatch)", snaps.saves)
	}
	saved := snaps.records["tab-1"]
	if saved.TotalPoints != 5 || len(saved.CompletedChapters) != 1 {
		t.Errorf("persisted snapshot = %+v", saved)
	}
}

func TestStoreSeedsFromSnapshot(t *testing.T) {
	snaps := newMemorySnapshots()
	first := NewStore("tab-1", snaps)
	first.Dispatch(SetQuizScore{ChapterID: "ecosystem", Score: 80})
	first.Dispatch(UpdateTime{Seconds: 300})

	// A fresh store for the same session sees the persisted state.
	second := NewStore("tab-1", snaps)
	state := second.State()
	if state.QuizScores["ecosystem"] != 80 {
		t.Errorf("seeded quizScores = %v, want ecosystem:80", state.QuizScores)
	}
	if state.TimeSpent != 300 {
		t.Errorf("seeded timeSpent = %d, want 300", state.TimeSpent)
	}
}

func TestStoreDefaultsWithoutSnapshot(t *testing.T) {
	store := NewStore("tab-2", newMemorySnapshots())
	state := store.State()

	if len(state.CompletedChapters) != 0 || state.TotalPoints != 0 || state.TimeSpent != 0 {
		t.Errorf("expected all-empty starting state, got %+v", state)
	}
	if state.FoundConnections == nil || state.QuizScores == nil {
		t.Error("collections must be initialized, not nil")
	}
}
