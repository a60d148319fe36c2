package generators

import (
	"math/rand"
	"testing"
)

func checkOptions(t *testing.T, options []int, answer int) {
	t.Helper()
	if len(options) != optionCount {
		t.Fatalf("got %d options, want %d", len(options), optionCount)
	}
	matches := 0
	seen := make(map[int]bool)
	for _, o := range options {
		if seen[o] {
			t.Fatalf("duplicate option %d in %v", o, options)
		}
		seen[o] = true
		if o == answer {
			matches++
		}
	}
	if matches != 1 {
		t.Fatalf("answer %d appears %d times in %v", answer, matches, options)
	}
}

func TestGeneratePatternInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		difficulty := 1 + i%3
		q := GeneratePattern(difficulty, rng)
		if len(q.Sequence) != shownTerms {
			t.Fatalf("sequence %v has %d terms, want %d", q.Sequence, len(q.Sequence), shownTerms)
		}
		checkOptions(t, q.Options, q.Answer)

		// The answer must actually continue the sequence.
		s := q.Sequence
		switch q.Family {
		case FamilyArithmetic:
			step := s[1] - s[0]
			if q.Answer != s[shownTerms-1]+step {
				t.Fatalf("arithmetic answer %d does not extend %v", q.Answer, s)
			}
		case FamilyGeometric:
			ratio := s[1] / s[0]
			if q.Answer != s[shownTerms-1]*ratio {
				t.Fatalf("geometric answer %d does not extend %v", q.Answer, s)
			}
		case FamilyFibonacci:
			if q.Answer != s[shownTerms-1]+s[shownTerms-2] {
				t.Fatalf("fibonacci answer %d does not extend %v", q.Answer, s)
			}
		default:
			t.Fatalf("unknown family %q", q.Family)
		}
	}
}

func TestGeneratePatternFamilyEligibility(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		if q := GeneratePattern(1, rng); q.Family != FamilyArithmetic {
			t.Fatalf("difficulty 1 produced family %q", q.Family)
		}
	}
	for i := 0; i < 200; i++ {
		if q := GeneratePattern(2, rng); q.Family == FamilyFibonacci {
			t.Fatalf("difficulty 2 produced fibonacci")
		}
	}
}

func TestGenerateMathInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		difficulty := 1 + i%4
		q := GenerateMath(difficulty, rng)
		checkOptions(t, q.Options, q.Answer)

		switch q.Op {
		case OpAdd:
			if q.Answer != q.A+q.B {
				t.Fatalf("%d %s %d != %d", q.A, q.Op, q.B, q.Answer)
			}
		case OpSub:
			if q.Answer != q.A-q.B || q.Answer < 0 {
				t.Fatalf("%d %s %d != %d", q.A, q.Op, q.B, q.Answer)
			}
		case OpMul:
			if difficulty < mulDifficulty {
				t.Fatalf("multiplication at difficulty %d", difficulty)
			}
			if q.Answer != q.A*q.B {
				t.Fatalf("%d %s %d != %d", q.A, q.Op, q.B, q.Answer)
			}
		case OpDiv:
			if difficulty < divDifficulty {
				t.Fatalf("division at difficulty %d", difficulty)
			}
			if q.A != q.B*q.Answer {
				t.Fatalf("division not exact: %d %s %d = %d", q.A, q.Op, q.B, q.Answer)
			}
		default:
			t.Fatalf("unknown operator %q", q.Op)
		}
	}
}

func TestProgressionConsecutive(t *testing.T) {
	p := NewProgression(3, 0, true)
	p.Record(true)
	p.Record(true)
	p.Record(false) // streak broken
	if p.Record(true) || p.Record(true) {
		t.Fatal("leveled up before a full streak")
	}
	if !p.Record(true) {
		t.Fatal("three consecutive correct should level up")
	}
	if p.Level() != 2 {
		t.Fatalf("level=%d, want 2", p.Level())
	}
}

func TestProgressionCumulative(t *testing.T) {
	p := NewProgression(5, 0, false)
	answers := []bool{true, false, true, true, false, true}
	for _, a := range answers {
		if p.Record(a) {
			t.Fatal("leveled up early")
		}
	}
	if !p.Record(true) {
		t.Fatal("fifth cumulative correct should level up")
	}
}

func TestProgressionMonotonic(t *testing.T) {
	p := NewProgression(2, 3, false)
	rng := rand.New(rand.NewSource(4))
	prev := p.Level()
	for i := 0; i < 200; i++ {
		p.Record(rng.Intn(2) == 0)
		if p.Level() < prev {
			t.Fatalf("level decreased from %d to %d", prev, p.Level())
		}
		prev = p.Level()
	}
	if p.Level() > 3 {
		t.Fatalf("level %d exceeded cap 3", p.Level())
	}
}
