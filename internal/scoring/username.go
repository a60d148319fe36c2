package scoring

import (
	"errors"
	"strings"

	"braincheck/internal/models"
)

// ErrEmptyHandle is returned when the input normalizes to nothing.
// It is the only checked precondition in the scoring core; callers
// must not display a score for it.
var ErrEmptyHandle = errors.New("handle is empty after normalization")

// Username tiers, highest first. Colors are cosmetic display hints.
var usernameTiers = []struct {
	threshold int
	category  string
	color     string
}{
	{136, "Genius", "purple"},
	{121, "High", "blue"},
	{106, "Smart", "green"},
	{90, "Average", "yellow"},
}

// NormalizeHandle lowercases, trims, and strips a single leading @.
func NormalizeHandle(raw string) string {
	handle := strings.ToLower(strings.TrimSpace(raw))
	return strings.TrimPrefix(handle, "@")
}

// ScoreUsername deterministically derives a pseudo-IQ from a handle.
// This is entertainment, not psychometrics: the arithmetic is fixed so
// the same handle always lands on the same score, and that is the
// whole contract.
func ScoreUsername(raw string) (models.UsernameIQResult, error) {
	handle := NormalizeHandle(raw)
	if handle == "" {
		return models.UsernameIQResult{}, ErrEmptyHandle
	}

	age := estimateAgeScore(handle)
	score := 80 + age*5 + int(hashHandle(handle)%16)

	category, color := usernameTier(score)
	return models.UsernameIQResult{
		Score:    score,
		Category: category,
		Color:    color,
		AgeScore: age,
	}, nil
}

// hashHandle is the 31-multiplier rolling hash over character codes,
// truncated to a signed 32-bit integer at every step, absolute value
// taken at the end. The wraparound is deliberate and must stay: the
// score only stays stable across implementations if the overflow
// semantics match exactly.
func hashHandle(handle string) int64 {
	var h int32
	for _, r := range handle {
		h = h*31 + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// estimateAgeScore derives the 1-10 age sub-score from surface features
// of the handle. The rules are additive adjustments to a base of 5.
// The "random-looking" check (a run of 4+ characters that are neither
// vowels nor 'y', or anything longer than 12 characters) is an
// arbitrary heuristic carried over as-is.
func estimateAgeScore(handle string) int {
	score := 5
	runes := []rune(handle)

	if len(runes) <= 5 {
		score += 3
	}

	digits := 0
	for _, r := range runes {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	switch {
	case digits == 0:
		score += 2
	case digits <= 3:
		score -= 2
	default:
		score -= 3
	}

	if strings.ContainsRune(handle, '_') {
		score--
	}

	if longestConsonantRun(runes) >= 4 || len(runes) > 12 {
		score -= 2
	}

	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	return score
}

func longestConsonantRun(runes []rune) int {
	longest, run := 0, 0
	for _, r := range runes {
		if strings.ContainsRune("aeiouy", r) {
			run = 0
			continue
		}
		run++
		if run > longest {
			longest = run
		}
	}
	return longest
}

func usernameTier(score int) (string, string) {
	for _, tier := range usernameTiers {
		if score >= tier.threshold {
			return tier.category, tier.color
		}
	}
	return "Low", "gray"
}
