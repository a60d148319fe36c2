package generators

import "math/rand"

// Speed-math operators. Multiplication and division unlock as
// difficulty climbs.
const (
	OpAdd = "+"
	OpSub = "-"
	OpMul = "×"
	OpDiv = "÷"
)

const (
	mulDifficulty = 2
	divDifficulty = 3
)

// MathQuestion is one generated speed-math round.
type MathQuestion struct {
	A       int
	B       int
	Op      string
	Answer  int
	Options []int
}

// GenerateMath produces one speed-math problem at the given difficulty.
// Operands are bounded by a difficulty-scaled maximum. Division
// problems are built divisor-and-quotient-first so the dividend is an
// exact product; an arbitrary pair is never truncated into a fake
// integer answer.
func GenerateMath(difficulty int, rng *rand.Rand) MathQuestion {
	if difficulty < 1 {
		difficulty = 1
	}

	ops := []string{OpAdd, OpSub}
	if difficulty >= mulDifficulty {
		ops = append(ops, OpMul)
	}
	if difficulty >= divDifficulty {
		ops = append(ops, OpDiv)
	}
	op := ops[rng.Intn(len(ops))]

	maxOperand := 10 * difficulty
	var a, b, answer int
	switch op {
	case OpSub:
		a = 1 + rng.Intn(maxOperand)
		b = 1 + rng.Intn(maxOperand)
		if b > a {
			a, b = b, a
		}
		answer = a - b
	case OpMul:
		a = 2 + rng.Intn(3+2*difficulty)
		b = 2 + rng.Intn(3+2*difficulty)
		answer = a * b
	case OpDiv:
		b = 2 + rng.Intn(3+difficulty)       // divisor
		answer = 1 + rng.Intn(5+2*difficulty) // quotient
		a = b * answer                        // dividend, exact by construction
	default:
		a = 1 + rng.Intn(maxOperand)
		b = 1 + rng.Intn(maxOperand)
		answer = a + b
	}

	return MathQuestion{
		A:       a,
		B:       b,
		Op:      op,
		Answer:  answer,
		Options: buildOptions(answer, rng),
	}
}
