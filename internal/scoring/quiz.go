// Package scoring holds the pure result-derivation functions. Nothing
// here touches storage or timers; callers feed in-memory data and get
// back a result record.
package scoring

import (
	"math"

	"braincheck/internal/models"
)

// Quiz tier labels, highest first.
const (
	LevelHigh         = "High Logical Accuracy"
	LevelStrong       = "Strong Analytical Reasoning"
	LevelDeveloping   = "Developing Logical Skills"
	LevelFoundational = "Foundational Reasoning Ability"
)

// ScoreQuiz grades a quiz run against the question set it was built
// from. answers maps question ID to the chosen option index; a question
// with no entry counts as incorrect, same as a wrong pick.
func ScoreQuiz(questions []models.Question, answers map[string]int) models.IQResult {
	correct := 0
	for _, q := range questions {
		chosen, ok := answers[q.ID]
		if ok && chosen == q.Correct {
			correct++
		}
	}

	total := len(questions)
	score := 0
	if total > 0 {
		score = int(math.Round(float64(correct) / float64(total) * 100))
	}

	return models.IQResult{
		Score:   score,
		Correct: correct,
		Wrong:   total - correct,
		Level:   quizLevel(score),
	}
}

// quizLevel maps a 0-100 score onto a tier label. Evaluated high to
// low, first match wins, thresholds inclusive.
func quizLevel(score int) string {
	switch {
	case score >= 90:
		return LevelHigh
	case score >= 70:
		return LevelStrong
	case score >= 50:
		return LevelDeveloping
	default:
		return LevelFoundational
	}
}
