package models

// Reward types and rarities are closed sets; the catalog is fixed at startup.
const (
	RewardTypeBadge       = "badge"
	RewardTypeAchievement = "achievement"
	RewardTypePowerup     = "powerup"

	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// RewardRequirements lists the conditions a user snapshot must satisfy.
// A zero/nil field means the requirement is not declared; a reward with no
// declared requirements is vacuously eligible.
type RewardRequirements struct {
	Level        int      `json:"level,omitempty"`
	Experience   int      `json:"experience,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	Challenges   []string `json:"challenges,omitempty"`
}

// Reward is a single catalog entry. Icon is a symbolic name the frontend
// maps to its own icon set.
type Reward struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Type         string             `json:"type"`
	Icon         string             `json:"icon"`
	Rarity       string             `json:"rarity"`
	Requirements RewardRequirements `json:"requirements"`
}

// RewardsState tracks which catalog entries each session has unlocked,
// claimed, or activated. Claiming and activating do not verify unlocked
// membership; callers are trusted (see DESIGN.md).
type RewardsState struct {
	Unlocked []string `json:"unlocked"`
	Claimed  []string `json:"claimed"`
	Active   []string `json:"active"`
}

func NewRewardsState() RewardsState {
	return RewardsState{Unlocked: []string{}, Claimed: []string{}, Active: []string{}}
}

// UserSnapshot is the read-only composite the caller assembles for reward
// eligibility checks. It keeps the rewards store decoupled from the progress
// and gamification stores.
type UserSnapshot struct {
	Level               int      `json:"level"`
	Experience          int      `json:"experience"`
	Achievements        []string `json:"achievements"`
	CompletedChallenges []string `json:"completed_challenges"`
}

// ── Response Types ────────────────────────────────────────

type RewardView struct {
	Reward
	Unlocked bool `json:"unlocked"`
	Claimed  bool `json:"claimed"`
	Active   bool `json:"active"`
	Eligible bool `json:"eligible"`
}

type RewardsResponse struct {
	Rewards []RewardView `json:"rewards"`
	State   RewardsState `json:"state"`
}
