// Package generators synthesizes mini-game question instances: number
// sequences for the pattern game and arithmetic problems for speed
// math. All generation takes an injected *rand.Rand so tests can pin
// the stream; production callers pass a freshly seeded source.
package generators

import "math/rand"

// Sequence families for the pattern game.
const (
	FamilyArithmetic = "arithmetic"
	FamilyGeometric  = "geometric"
	FamilyFibonacci  = "fibonacci"
)

// shownTerms is how many terms of a sequence the player sees before
// guessing the next one.
const shownTerms = 4

// PatternQuestion is one generated pattern-game round.
type PatternQuestion struct {
	Family   string
	Sequence []int
	Answer   int
	Options  []int
}

// eligibleFamilies returns the families allowed at a difficulty level.
// The set grows with difficulty so low levels stay on the simplest
// family.
func eligibleFamilies(difficulty int) []string {
	switch {
	case difficulty <= 1:
		return []string{FamilyArithmetic}
	case difficulty == 2:
		return []string{FamilyArithmetic, FamilyGeometric}
	default:
		return []string{FamilyArithmetic, FamilyGeometric, FamilyFibonacci}
	}
}

// GeneratePattern produces one pattern question at the given
// difficulty: a run of shown terms, the verifiably correct next term,
// and four shuffled options containing it exactly once.
func GeneratePattern(difficulty int, rng *rand.Rand) PatternQuestion {
	if difficulty < 1 {
		difficulty = 1
	}

	families := eligibleFamilies(difficulty)
	family := families[rng.Intn(len(families))]

	terms := make([]int, shownTerms+1)
	switch family {
	case FamilyGeometric:
		start := 2 + rng.Intn(4)
		ratio := 2 + rng.Intn(2)
		value := start
		for i := range terms {
			terms[i] = value
			value *= ratio
		}
	case FamilyFibonacci:
		a := 1 + rng.Intn(10)
		b := 1 + rng.Intn(10)
		terms[0], terms[1] = a, b
		for i := 2; i < len(terms); i++ {
			terms[i] = terms[i-1] + terms[i-2]
		}
	default: // arithmetic
		start := 1 + rng.Intn(10*difficulty)
		step := 2 + rng.Intn(2+2*difficulty)
		for i := range terms {
			terms[i] = start + i*step
		}
	}

	answer := terms[shownTerms]
	return PatternQuestion{
		Family:   family,
		Sequence: terms[:shownTerms],
		Answer:   answer,
		Options:  buildOptions(answer, rng),
	}
}
