package generators

// Progression tracks mini-game difficulty across a session. Difficulty
// only ever climbs: a level-up fires once enough correct answers have
// accumulated, and nothing lowers the level until the session ends.
type Progression struct {
	level       int
	maxLevel    int
	threshold   int
	correct     int
	resetOnMiss bool
}

// NewProgression starts a tracker at level 1. threshold is the number
// of correct answers needed per level-up; it is game balance, not a
// correctness invariant. When resetOnMiss is set the count is
// consecutive correct answers, otherwise cumulative within the level.
func NewProgression(threshold, maxLevel int, resetOnMiss bool) *Progression {
	if threshold < 1 {
		threshold = 1
	}
	return &Progression{
		level:       1,
		maxLevel:    maxLevel,
		threshold:   threshold,
		resetOnMiss: resetOnMiss,
	}
}

// Level returns the current difficulty level.
func (p *Progression) Level() int {
	return p.level
}

// Record feeds one answered question into the tracker and reports
// whether it triggered a level-up.
func (p *Progression) Record(correct bool) bool {
	if !correct {
		if p.resetOnMiss {
			p.correct = 0
		}
		return false
	}

	p.correct++
	if p.correct < p.threshold {
		return false
	}
	p.correct = 0
	if p.maxLevel > 0 && p.level >= p.maxLevel {
		return false
	}
	p.level++
	return true
}
