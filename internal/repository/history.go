package repository

import (
	"encoding/json"

	"go.uber.org/zap"

	"braincheck/internal/models"
)

// ReactionHistory returns the stored attempts, most recent first. A
// missing or unparseable record comes back as an empty history.
func (s *Store) ReactionHistory() []models.ReactionAttempt {
	raw, found := s.Get(keyReactionHistory)
	if !found {
		return nil
	}

	var history []models.ReactionAttempt
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		s.log.Warn("Corrupt reaction history, starting fresh", zap.Error(err))
		return nil
	}
	return history
}

// PushReaction prepends an attempt to the stored history and truncates
// it to cap entries before writing back.
func (s *Store) PushReaction(attempt models.ReactionAttempt, cap int) error {
	history := append([]models.ReactionAttempt{attempt}, s.ReactionHistory()...)
	if cap > 0 && len(history) > cap {
		history = history[:cap]
	}

	raw, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return s.Set(keyReactionHistory, string(raw))
}
