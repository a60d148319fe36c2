package session

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"braincheck/internal/models"
	"braincheck/internal/repository"
)

func newStore(t *testing.T) *repository.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open in-memory store: %v", err)
	}
	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repository.New(db, zap.NewNop())
}

func TestReactionLogLoadsAndAppends(t *testing.T) {
	store := newStore(t)
	first := NewReactionLog(store, 10, zap.NewNop())
	first.Push(models.ReactionAttempt{ID: "a", Time: 240})
	first.Push(models.ReactionAttempt{ID: "b", Time: 210})

	// A fresh log over the same store sees the persisted attempts.
	second := NewReactionLog(store, 10, zap.NewNop())
	times := second.Times()
	if len(times) != 2 || times[0] != 210 || times[1] != 240 {
		t.Fatalf("times=%v, want [210 240]", times)
	}
}

func TestBestTrackerNotifiesOnlyOnNewBest(t *testing.T) {
	tracker := NewBestTracker(newStore(t), zap.NewNop())

	var notified []float64
	tracker.OnNewBest(func(best models.PersonalBest) {
		notified = append(notified, best.Score)
	})

	if !tracker.Submit(models.GameReaction, 300, true) {
		t.Fatal("first score should be a new best")
	}
	if tracker.Submit(models.GameReaction, 300, true) {
		t.Fatal("tie should not be a new best")
	}
	if tracker.Submit(models.GameReaction, 320, true) {
		t.Fatal("slower time should not be a new best")
	}
	if !tracker.Submit(models.GameReaction, 280, true) {
		t.Fatal("faster time should be a new best")
	}

	if len(notified) != 2 || notified[0] != 300 || notified[1] != 280 {
		t.Fatalf("notifications=%v, want [300 280]", notified)
	}
	if best := tracker.Best(models.GameReaction); best == nil || best.Score != 280 {
		t.Fatalf("stored best=%+v, want 280", best)
	}
}

func TestResultsOverwrite(t *testing.T) {
	var results Results
	results.SetIQ(models.IQResult{Score: 60})
	results.SetIQ(models.IQResult{Score: 93})
	if results.LastIQ == nil || results.LastIQ.Score != 93 {
		t.Fatalf("last IQ=%+v, want score 93", results.LastIQ)
	}
}
