package session

import (
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/ocean-explorer/backend/internal/gamification"
	"github.com/ocean-explorer/backend/internal/models"
	"github.com/ocean-explorer/backend/internal/progress"
	"github.com/ocean-explorer/backend/internal/rewards"
)

// Session bundles the three per-browser stores. Each browser identifies
// itself with an opaque session id; the stores are the server-side stand-in
// for what the original app kept in localStorage.
type Session struct {
	ID           string
	Progress     *progress.Store
	Gamification *gamification.Store
	Rewards      *rewards.Store
}

// Snapshot assembles the cross-store view reward eligibility is judged
// against.
func (s *Session) Snapshot() models.UserSnapshot {
	state := s.Gamification.State()
	return models.UserSnapshot{
		Level:               state.Level(),
		Experience:          state.Experience,
		Achievements:        state.Achievements,
		CompletedChallenges: state.CompletedChallenges(),
	}
}

// Manager hands out sessions by id, creating them on first sight. Progress
// is seeded from its persisted snapshot; gamification and rewards start
// fresh per process.
type Manager struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	snapshots progress.Snapshots
}

func NewManager(snapshots progress.Snapshots) *Manager {
	return &Manager{
		sessions:  make(map[string]*Session),
		snapshots: snapshots,
	}
}

// Get returns the session for an id, creating it if needed.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		return s
	}
	s := &Session{
		ID:           id,
		Progress:     progress.NewStore(id, m.snapshots),
		Gamification: gamification.NewStore(),
		Rewards:      rewards.NewStore(),
	}
	m.sessions[id] = s
	log.Printf("[session] created session %s", id)
	return s
}

// NewID mints a fresh session id.
func (m *Manager) NewID() string {
	return uuid.NewString()
}
