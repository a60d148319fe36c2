// Package session holds the explicit per-run state that the original
// design kept in ambient global stores. Callers construct these and
// pass them around; there are no package-level singletons and no
// global event bus.
package session

import (
	"time"

	"go.uber.org/zap"

	"braincheck/internal/models"
	"braincheck/internal/repository"
	"braincheck/internal/scoring"
)

// Results holds the last derived result records for the lifetime of
// the process. Nothing here is persisted; a new run overwrites the
// previous record.
type Results struct {
	LastIQ        *models.IQResult
	LastMentalAge *models.MentalAgeResult
}

// SetIQ records the latest quiz result.
func (r *Results) SetIQ(result models.IQResult) {
	r.LastIQ = &result
}

// SetMentalAge records the latest mental-age result.
func (r *Results) SetMentalAge(result models.MentalAgeResult) {
	r.LastMentalAge = &result
}

// ReactionLog is the persisted, bounded reaction-attempt history.
// Init-time state is loaded from the store; Push mutates memory and
// storage together.
type ReactionLog struct {
	store    *repository.Store
	log      *zap.Logger
	cap      int
	attempts []models.ReactionAttempt
}

// NewReactionLog loads the persisted history.
func NewReactionLog(store *repository.Store, cap int, log *zap.Logger) *ReactionLog {
	return &ReactionLog{
		store:    store,
		log:      log,
		cap:      cap,
		attempts: store.ReactionHistory(),
	}
}

// Attempts returns the history, most recent first.
func (l *ReactionLog) Attempts() []models.ReactionAttempt {
	return l.attempts
}

// Times returns just the millisecond durations, most recent first.
func (l *ReactionLog) Times() []int {
	times := make([]int, len(l.attempts))
	for i, a := range l.attempts {
		times[i] = a.Time
	}
	return times
}

// Push records a scored attempt in memory and storage.
func (l *ReactionLog) Push(attempt models.ReactionAttempt) {
	l.attempts = append([]models.ReactionAttempt{attempt}, l.attempts...)
	if l.cap > 0 && len(l.attempts) > l.cap {
		l.attempts = l.attempts[:l.cap]
	}
	if err := l.store.PushReaction(attempt, l.cap); err != nil {
		l.log.Warn("Failed to persist reaction attempt", zap.Error(err))
	}
}

// BestListener is notified when a game records a new personal best.
// Listeners replace the original design's global celebration event:
// interested display code registers a callback instead of watching an
// ambient bus.
type BestListener func(best models.PersonalBest)

// BestTracker wraps the personal-best comparator and its persistence.
type BestTracker struct {
	store     *repository.Store
	log       *zap.Logger
	listeners []BestListener
}

// NewBestTracker creates a tracker over the store.
func NewBestTracker(store *repository.Store, log *zap.Logger) *BestTracker {
	return &BestTracker{store: store, log: log}
}

// OnNewBest registers a listener for new-best notifications.
func (t *BestTracker) OnNewBest(fn BestListener) {
	t.listeners = append(t.listeners, fn)
}

// Best returns the stored record for a game, nil when unset.
func (t *BestTracker) Best(gameName string) *models.PersonalBest {
	return t.store.PersonalBest(gameName)
}

// Submit compares a candidate score against the stored best and, when
// it qualifies, saves the new record and notifies listeners. Returns
// whether the candidate was a new best.
func (t *BestTracker) Submit(gameName string, score float64, lowerIsBetter bool) bool {
	stored := t.store.PersonalBest(gameName)
	if !scoring.IsNewBest(score, stored, lowerIsBetter) {
		return false
	}

	best := models.PersonalBest{
		Score:     score,
		Timestamp: time.Now().UnixMilli(),
		GameName:  gameName,
	}
	if err := t.store.SavePersonalBest(best); err != nil {
		t.log.Warn("Failed to persist personal best",
			zap.String("game", gameName), zap.Error(err))
	}
	for _, fn := range t.listeners {
		fn(best)
	}
	return true
}
