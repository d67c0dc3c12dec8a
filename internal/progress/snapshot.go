package progress

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ocean-explorer/backend/internal/models"
)

// SnapshotStore persists progress snapshots in Postgres, one JSON record per
// session, replaced wholesale on every write. There is no merge: a second
// writer for the same session silently overwrites the first.
type SnapshotStore struct {
	db *sql.DB
}

func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

func (s *SnapshotStore) Load(sessionID string) (*models.ProgressState, error) {
	var data []byte
	err := s.db.QueryRow(
		`SELECT data FROM progress_snapshots WHERE session_id = $1`,
		sessionID,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var state models.ProgressState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	normalize(&state)
	return &state, nil
}

func (s *SnapshotStore) Save(sessionID string, state models.ProgressState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO progress_snapshots (session_id, data, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (session_id) DO UPDATE SET data = $2, updated_at = NOW()`,
		sessionID, data,
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// normalize replaces nil collections from older snapshots with empty ones so
// reducers and JSON responses never see nulls.
func normalize(state *models.ProgressState) {
	if state.CompletedChapters == nil {
		state.CompletedChapters = []string{}
	}
	if state.FoundConnections == nil {
		state.FoundConnections = map[string][]string{}
	}
	if state.QuizScores == nil {
		state.QuizScores = map[string]float64{}
	}
	if state.Achievements == nil {
		state.Achievements = []string{}
	}
}
