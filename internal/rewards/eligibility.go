package rewards

import "github.com/ocean-explorer/backend/internal/models"

// Eligible reports whether a user snapshot satisfies every declared
// requirement of a reward. It returns false on the first failing
// requirement, and true for a reward with no requirements at all. It is a
// pure read-only query: unlocking after a positive check is the caller's
// job, the store never polls.
func Eligible(reward models.Reward, snapshot models.UserSnapshot) bool {
	req := reward.Requirements

	if req.Level > 0 && snapshot.Level < req.Level {
		return false
	}

	if req.Experience > 0 && snapshot.Experience < req.Experience {
		return false
	}

	for _, id := range req.Achievements {
		if !contains(snapshot.Achievements, id) {
			return false
		}
	}

	for _, id := range req.Challenges {
		if !contains(snapshot.CompletedChallenges, id) {
			return false
		}
	}

	return true
}
