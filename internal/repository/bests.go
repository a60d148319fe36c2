package repository

import (
	"encoding/json"

	"go.uber.org/zap"

	"braincheck/internal/models"
)

// PersonalBest returns the stored best for a game, or nil when no
// record exists or the stored record cannot be parsed.
func (s *Store) PersonalBest(gameName string) *models.PersonalBest {
	raw, found := s.Get(keyPersonalBestPrefix + gameName)
	if !found {
		return nil
	}

	var best models.PersonalBest
	if err := json.Unmarshal([]byte(raw), &best); err != nil {
		s.log.Warn("Corrupt personal best, treating as unset",
			zap.String("game", gameName), zap.Error(err))
		return nil
	}
	return &best
}

// SavePersonalBest overwrites the record for the best's game
// unconditionally. Whether a score qualifies is the caller's decision
// (scoring.IsNewBest); only the latest record is kept, never a history.
func (s *Store) SavePersonalBest(best models.PersonalBest) error {
	raw, err := json.Marshal(best)
	if err != nil {
		return err
	}
	return s.Set(keyPersonalBestPrefix+best.GameName, string(raw))
}
