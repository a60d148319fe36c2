package scoring

import (
	"math"

	"braincheck/internal/models"
)

// Mental-age narrative bands, keyed off the grand trait average.
const (
	explanationHigh     = "You favor long-term thinking and keep your reactions well regulated."
	explanationReactive = "You lean reactive and spontaneous, following the impulse of the moment."
	explanationBalanced = "You sit in the balanced middle: thoughtful when it matters, playful when it doesn't."
)

// EstimateMentalAge derives a single age figure from the trait samples
// of one assessment run. Samples are grouped by trait and averaged per
// trait first; the final average is the mean of those per-trait means,
// so a trait that happened to get more sampled questions does not
// dominate. The raw arithmetic is kept unclamped: author-assigned
// weights may push individual samples past 10 and that is allowed to
// flow through.
func EstimateMentalAge(samples []models.TraitSample) models.MentalAgeResult {
	sums := make(map[string]int)
	counts := make(map[string]int)
	order := make([]string, 0, 8)
	for _, s := range samples {
		if _, seen := sums[s.Trait]; !seen {
			order = append(order, s.Trait)
		}
		sums[s.Trait] += s.Score
		counts[s.Trait]++
	}

	var avg float64
	if len(order) > 0 {
		var total float64
		for _, trait := range order {
			total += float64(sums[trait]) / float64(counts[trait])
		}
		avg = total / float64(len(order))
	}

	mentalAge := math.Round((14+avg*5.6)*10) / 10

	var explanation string
	switch {
	case avg > 8:
		explanation = explanationHigh
	case avg < 4:
		explanation = explanationReactive
	default:
		explanation = explanationBalanced
	}

	return models.MentalAgeResult{
		MentalAge:   mentalAge,
		Explanation: explanation,
	}
}
