package rewards

import (
	"sync"

	"github.com/ocean-explorer/backend/internal/models"
)

// Store owns the reward lifecycle state for one browser session, alongside
// the shared read-only catalog.
type Store struct {
	mu      sync.Mutex
	state   models.RewardsState
	catalog []models.Reward
}

func NewStore() *Store {
	return &Store{state: models.NewRewardsState(), catalog: Catalog()}
}

func (s *Store) Dispatch(action Action) models.RewardsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, action)
	return clone(s.state)
}

func (s *Store) State() models.RewardsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.state)
}

// Catalog returns the fixed reward definitions.
func (s *Store) Catalog() []models.Reward {
	return s.catalog
}

// Find returns the catalog entry with the given id.
func (s *Store) Find(rewardID string) (models.Reward, bool) {
	for _, r := range s.catalog {
		if r.ID == rewardID {
			return r, true
		}
	}
	return models.Reward{}, false
}

// Views projects the catalog against the current lifecycle state and a user
// snapshot, computing per-reward eligibility for the dashboard.
func (s *Store) Views(snapshot models.UserSnapshot) []models.RewardView {
	state := s.State()
	views := make([]models.RewardView, 0, len(s.catalog))
	for _, r := range s.catalog {
		views = append(views, models.RewardView{
			Reward:   r,
			Unlocked: contains(state.Unlocked, r.ID),
			Claimed:  contains(state.Claimed, r.ID),
			Active:   contains(state.Active, r.ID),
			Eligible: Eligible(r, snapshot),
		})
	}
	return views
}
