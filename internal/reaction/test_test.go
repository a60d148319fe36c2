package reaction

import (
	"math/rand"
	"testing"
	"time"
)

func newIdle(t *testing.T) *Test {
	t.Helper()
	return New(2000, 5000, rand.New(rand.NewSource(1)))
}

// arm puts the test into the waiting state without a live timer race:
// the real timer is canceled immediately and transitions are driven by
// hand with explicit timestamps.
func arm(t *testing.T, test *Test) {
	t.Helper()
	test.Start(nil)
	test.mu.Lock()
	test.cancelTimerLocked()
	test.mu.Unlock()
}

func TestDelaySampling(t *testing.T) {
	test := newIdle(t)
	for i := 0; i < 200; i++ {
		delay := test.Start(nil)
		test.Stop()
		if delay < 2000*time.Millisecond || delay >= 5000*time.Millisecond {
			t.Fatalf("delay %v outside [2000ms,5000ms)", delay)
		}
	}
}

func TestScoredPress(t *testing.T) {
	test := newIdle(t)
	arm(t, test)

	goAt := time.Now()
	test.fire(goAt)
	if test.State() != StateActive {
		t.Fatalf("state=%v, want active", test.State())
	}

	attempt, outcome := test.press(goAt.Add(237 * time.Millisecond))
	if outcome != OutcomeScored {
		t.Fatalf("outcome=%v, want scored", outcome)
	}
	if attempt.Time != 237 {
		t.Fatalf("time=%d, want 237", attempt.Time)
	}
	if attempt.ID == "" {
		t.Fatal("attempt has no id")
	}
}

func TestTooEarlyPress(t *testing.T) {
	test := newIdle(t)
	arm(t, test)

	attempt, outcome := test.press(time.Now())
	if outcome != OutcomeTooEarly {
		t.Fatalf("outcome=%v, want too early", outcome)
	}
	if attempt.ID != "" {
		t.Fatal("too-early attempt must not be scored")
	}

	// The round restarts cleanly with a fresh delay.
	if test.State() != StateIdle {
		t.Fatalf("state=%v, want idle after early press", test.State())
	}
	test.Start(nil)
	if test.State() != StateWaiting {
		t.Fatalf("state=%v, want waiting after restart", test.State())
	}
	test.Stop()
}

func TestStopCancelsPendingGo(t *testing.T) {
	test := newIdle(t)
	fired := false
	test.Start(func() { fired = true })
	test.Stop()

	// A late timer callback against a stopped test must be a no-op.
	test.fire(time.Now())
	if fired || test.State() != StateIdle {
		t.Fatalf("go signal fired after Stop (fired=%v state=%v)", fired, test.State())
	}
}

func TestPressWithNoRound(t *testing.T) {
	test := newIdle(t)
	if _, outcome := test.Press(); outcome != OutcomeIgnored {
		t.Fatalf("outcome=%v, want ignored", outcome)
	}
}
