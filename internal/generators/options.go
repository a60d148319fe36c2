package generators

import "math/rand"

// optionCount is the size of every generated option set.
const optionCount = 4

// maxOffset bounds the distractor offsets drawn around the answer.
const maxOffset = 10

// buildOptions surrounds the correct answer with plausible distractors:
// random nonzero offsets in [-maxOffset, maxOffset], rejecting
// duplicates and non-positive values, then shuffles the four options.
// The returned set contains the answer exactly once.
func buildOptions(answer int, rng *rand.Rand) []int {
	options := []int{answer}
	for len(options) < optionCount {
		offset := rng.Intn(2*maxOffset+1) - maxOffset
		if offset == 0 {
			continue
		}
		candidate := answer + offset
		if candidate <= 0 || contains(options, candidate) {
			continue
		}
		options = append(options, candidate)
	}
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

func contains(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
