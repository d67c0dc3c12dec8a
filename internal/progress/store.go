package progress

import (
	"log"
	"sync"

	"github.com/ocean-explorer/backend/internal/models"
)

// Snapshots persists full progress snapshots, last-write-wins. Load returns
// nil (no error) when a session has no snapshot yet.
type Snapshots interface {
	Load(sessionID string) (*models.ProgressState, error)
	Save(sessionID string, state models.ProgressState) error
}

// Store owns the current progress snapshot for one browser session. Dispatch
// serializes actions under a mutex so each one is processed to completion,
// the server-side analogue of the browser's single-threaded event loop.
type Store struct {
	mu        sync.Mutex
	sessionID string
	state     models.ProgressState
	snapshots Snapshots
}

// NewStore seeds the store from the persisted snapshot when one exists,
// otherwise from the all-empty starting state.
func NewStore(sessionID string, snapshots Snapshots) *Store {
	state := models.NewProgressState()
	if snapshots != nil {
		loaded, err := snapshots.Load(sessionID)
		if err != nil {
			log.Printf("[progress] failed to load snapshot for session %s: %v", sessionID, err)
		} else if loaded != nil {
			state = *loaded
		}
	}
	return &Store{sessionID: sessionID, state: state, snapshots: snapshots}
}

// Dispatch applies an action and synchronously persists the new snapshot.
// Persistence failures are logged, not surfaced: the in-memory state is the
// source of truth for the session.
func (s *Store) Dispatch(action Action) models.ProgressState {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := Reduce(s.state, action)
	s.state = next

	if s.snapshots != nil {
		if err := s.snapshots.Save(s.sessionID, next); err != nil {
			log.Printf("[progress] failed to save snapshot for session %s: %v", s.sessionID, err)
		}
	}
	return next
}

// State returns a copy of the current snapshot.
func (s *Store) State() models.ProgressState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.state)
}
