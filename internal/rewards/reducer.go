package rewards

import "github.com/ocean-explorer/backend/internal/models"

// Action is the closed set of rewards store transitions.
type Action interface {
	isRewardsAction()
}

type UnlockReward struct {
	RewardID string
}

type ClaimReward struct {
	RewardID string
}

type ActivateReward struct {
	RewardID string
}

type DeactivateReward struct {
	RewardID string
}

func (UnlockReward) isRewardsAction()     {}
func (ClaimReward) isRewardsAction()      {}
func (ActivateReward) isRewardsAction()   {}
func (DeactivateReward) isRewardsAction() {}

// Reduce applies one action and returns the new state. Unlock, claim, and
// activate are idempotent set-adds; deactivate is a set-remove. Claim and
// activate do not verify unlocked membership; callers are trusted.
func Reduce(state models.RewardsState, action Action) models.RewardsState {
	switch a := action.(type) {
	case UnlockReward:
		if contains(state.Unlocked, a.RewardID) {
			return state
		}
		next := clone(state)
		next.Unlocked = append(next.Unlocked, a.RewardID)
		return next

	case ClaimReward:
		if contains(state.Claimed, a.RewardID) {
			return state
		}
		next := clone(state)
		next.Claimed = append(next.Claimed, a.RewardID)
		return next

	case ActivateReward:
		if contains(state.Active, a.RewardID) {
			return state
		}
		next := clone(state)
		next.Active = append(next.Active, a.RewardID)
		return next

	case DeactivateReward:
		if !contains(state.Active, a.RewardID) {
			return state
		}
		next := clone(state)
		next.Active = remove(next.Active, a.RewardID)
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

func remove(list []string, id string) []string {
	out := list[:0]
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func clone(state models.RewardsState) models.RewardsState {
	return models.RewardsState{
		Unlocked: append([]string{}, state.Unlocked...),
		Claimed:  append([]string{}, state.Claimed...),
		Active:   append([]string{}, state.Active...),
	}
}
