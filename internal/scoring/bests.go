package scoring

import "braincheck/internal/models"

// IsNewBest reports whether candidate beats the stored personal best.
// A nil stored record means any first score qualifies. Comparison is
// strict: a tie is not a new best. Saving the record is the caller's
// explicit follow-up step, never a side effect of comparing.
func IsNewBest(candidate float64, stored *models.PersonalBest, lowerIsBetter bool) bool {
	if stored == nil {
		return true
	}
	if lowerIsBetter {
		return candidate < stored.Score
	}
	return candidate > stored.Score
}
