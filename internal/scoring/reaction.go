package scoring

import "math"

// Reaction speed tiers, fastest first.
const (
	ReactionInhuman      = "Inhuman"
	ReactionElite        = "Elite"
	ReactionExcellent    = "Excellent"
	ReactionAverage      = "Average"
	ReactionBelowAverage = "Below Average"
)

// ClassifyReaction buckets a millisecond duration into a speed tier.
// Thresholds are exclusive on the upper side: 179 is still Inhuman,
// 180 is Elite.
func ClassifyReaction(ms int) string {
	switch {
	case ms < 180:
		return ReactionInhuman
	case ms < 220:
		return ReactionElite
	case ms < 280:
		return ReactionExcellent
	case ms < 350:
		return ReactionAverage
	default:
		return ReactionBelowAverage
	}
}

// ReactionStats summarizes a set of recorded reaction times.
type ReactionStats struct {
	Average float64
	SD      float64
	Best    int
	Count   int
}

// SummarizeReactions computes mean, standard deviation and best time
// over a history of attempt durations. An empty history yields zeros.
func SummarizeReactions(times []int) ReactionStats {
	if len(times) == 0 {
		return ReactionStats{}
	}

	var sum float64
	best := times[0]
	for _, t := range times {
		sum += float64(t)
		if t < best {
			best = t
		}
	}
	avg := sum / float64(len(times))

	var sumSquaredDiff float64
	for _, t := range times {
		diff := float64(t) - avg
		sumSquaredDiff += diff * diff
	}
	sd := 0.0
	if len(times) > 1 {
		sd = math.Sqrt(sumSquaredDiff / float64(len(times)))
	}

	return ReactionStats{
		Average: avg,
		SD:      sd,
		Best:    best,
		Count:   len(times),
	}
}
