// question.go
package models

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// Question categories for the logical reasoning quiz.
const (
	CategoryLogic   = "logic"
	CategoryPattern = "pattern"
	CategoryMath    = "math"
	CategoryVisual  = "visual"
)

// Question is a single multiple-choice item from the static bank.
// Questions are loaded once at startup and never mutated.
type Question struct {
	ID          string   `yaml:"id"`
	Text        string   `yaml:"text"`
	Category    string   `yaml:"category"`
	Difficulty  int      `yaml:"difficulty"`
	Options     []string `yaml:"options"`
	Correct     int      `yaml:"correct"`
	Explanation string   `yaml:"explanation"`
}

// QuestionBank holds the full static question set.
type QuestionBank struct {
	Questions []Question `yaml:"questions"`
}

// LoadQuestionBank reads and parses a question bank YAML file.
func LoadQuestionBank(path string) (*QuestionBank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank: %w", err)
	}

	var bank QuestionBank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("failed to unmarshal question bank YAML: %w", err)
	}

	for _, q := range bank.Questions {
		if len(q.Options) < 3 || len(q.Options) > 4 {
			return nil, fmt.Errorf("question %q: expected 3-4 options, got %d", q.ID, len(q.Options))
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return nil, fmt.Errorf("question %q: correct index %d out of range", q.ID, q.Correct)
		}
	}

	return &bank, nil
}

// Sample draws a shuffled subset of n questions without replacement.
// Every call draws fresh; there is no seeding or reproducibility guarantee.
func (b *QuestionBank) Sample(n int, rng *rand.Rand) []Question {
	shuffled := make([]Question, len(b.Questions))
	copy(shuffled, b.Questions)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n < len(shuffled) {
		shuffled = shuffled[:n]
	}
	return shuffled
}
