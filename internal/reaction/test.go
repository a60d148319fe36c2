// Package reaction implements the reaction-time measurement protocol:
// a neutral waiting state, a randomized delay, a go signal, and the
// elapsed time between the signal and the player's input. Input while
// still waiting is a distinct "too early" outcome, never a score.
package reaction

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"braincheck/internal/models"
)

// States of one reaction round.
type State int

const (
	StateIdle State = iota
	StateWaiting
	StateActive
	StateDone
)

// Press outcomes.
type Outcome int

const (
	OutcomeTooEarly Outcome = iota
	OutcomeScored
	OutcomeIgnored // press with no round in flight
)

// Test runs reaction rounds. The timer that flips waiting into active
// is cancelable: Stop tears it down so no callback fires into a dead
// context. All methods are safe for the timer goroutine racing a press.
type Test struct {
	mu         sync.Mutex
	state      State
	minDelayMs int
	maxDelayMs int
	rng        *rand.Rand
	timer      *time.Timer
	goAt       time.Time
	onGo       func()
}

// New creates a reaction test sampling delays uniformly in
// [minDelayMs, maxDelayMs) milliseconds.
func New(minDelayMs, maxDelayMs int, rng *rand.Rand) *Test {
	if maxDelayMs <= minDelayMs {
		maxDelayMs = minDelayMs + 1
	}
	return &Test{
		state:      StateIdle,
		minDelayMs: minDelayMs,
		maxDelayMs: maxDelayMs,
		rng:        rng,
	}
}

// State returns the current round state.
func (t *Test) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Start arms a new round: the test enters the waiting state and, after
// a fresh randomized delay, flips to active and records the go
// timestamp. onGo is invoked once on the transition (from the timer
// goroutine) so the caller can flip its display.
func (t *Test) Start(onGo func()) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelTimerLocked()
	delay := time.Duration(t.minDelayMs+t.rng.Intn(t.maxDelayMs-t.minDelayMs)) * time.Millisecond
	t.state = StateWaiting
	t.onGo = onGo
	t.timer = time.AfterFunc(delay, func() {
		t.fire(time.Now())
	})
	return delay
}

// Stop cancels any pending timer and resets to idle. Safe to call on
// teardown regardless of state.
func (t *Test) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelTimerLocked()
	t.state = StateIdle
	t.onGo = nil
}

// Press records the player's input event. During waiting it is an
// early attempt: the pending go signal is canceled and the caller may
// Start again without penalty. During active it produces a scored
// attempt with the elapsed milliseconds since the go signal.
func (t *Test) Press() (models.ReactionAttempt, Outcome) {
	return t.press(time.Now())
}

// fire is the waiting -> active transition at the given instant.
func (t *Test) fire(now time.Time) {
	t.mu.Lock()
	if t.state != StateWaiting {
		// Stop raced the timer; the round is dead.
		t.mu.Unlock()
		return
	}
	t.state = StateActive
	t.goAt = now
	onGo := t.onGo
	t.mu.Unlock()

	if onGo != nil {
		onGo()
	}
}

func (t *Test) press(now time.Time) (models.ReactionAttempt, Outcome) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.state {
	case StateWaiting:
		t.cancelTimerLocked()
		t.state = StateIdle
		return models.ReactionAttempt{}, OutcomeTooEarly
	case StateActive:
		t.state = StateDone
		elapsed := int(now.Sub(t.goAt) / time.Millisecond)
		return models.ReactionAttempt{
			ID:         uuid.NewString(),
			Time:       elapsed,
			RecordedAt: now,
		}, OutcomeScored
	default:
		return models.ReactionAttempt{}, OutcomeIgnored
	}
}

func (t *Test) cancelTimerLocked() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
