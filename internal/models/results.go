// results.go
package models

import (
	"fmt"
	"time"
)

// IQResult is the outcome of one logical reasoning quiz run. It lives
// in the invoking session only and is never persisted.
type IQResult struct {
	Score   int    `json:"score"` // 0-100
	Correct int    `json:"correct"`
	Wrong   int    `json:"wrong"`
	Level   string `json:"level"`
}

// ShareText renders the one-line shareable summary for a quiz result.
func (r IQResult) ShareText() string {
	return fmt.Sprintf("I scored %d/100 (%s) on the logic quiz — %d of %d correct.",
		r.Score, r.Level, r.Correct, r.Correct+r.Wrong)
}

// TraitSample is one answered mental-age question: the question's trait
// and the weight attached to the chosen option.
type TraitSample struct {
	Trait string
	Score int
}

// MentalAgeResult is the outcome of one mental-age assessment run.
type MentalAgeResult struct {
	MentalAge   float64 `json:"mentalAge"`
	Explanation string  `json:"explanation"`
}

// ShareText renders the one-line shareable summary for a mental-age result.
func (r MentalAgeResult) ShareText() string {
	return fmt.Sprintf("My mental age is %.1f. %s", r.MentalAge, r.Explanation)
}

// UsernameIQResult is the entertainment score derived from a handle.
// It is a pure function of the normalized input, recomputed every call.
type UsernameIQResult struct {
	Score    int    `json:"score"`
	Category string `json:"category"`
	Color    string `json:"color"` // cosmetic tier color, not load-bearing
	AgeScore int    `json:"ageScore"` // 1-10
}

// ShareText renders the one-line shareable summary for a username score.
func (r UsernameIQResult) ShareText() string {
	return fmt.Sprintf("My username scored IQ %d (%s).", r.Score, r.Category)
}

// ReactionAttempt is one completed reaction-time round. The bounded
// most-recent-first history of attempts survives across sessions.
type ReactionAttempt struct {
	ID         string    `json:"id"`
	Time       int       `json:"time"` // milliseconds
	RecordedAt time.Time `json:"recordedAt"`
}

// Game identifiers for personal-best records. Fixed set, no dynamic growth.
const (
	GameReaction  = "reaction"
	GamePattern   = "pattern"
	GameSpeedMath = "speed_math"
)

// PersonalBest is the single most favorable recorded score for one game.
// A new qualifying score overwrites the prior record unconditionally.
type PersonalBest struct {
	Score     float64 `json:"score"`
	Timestamp int64   `json:"timestamp"`
	GameName  string  `json:"gameName"`
}
