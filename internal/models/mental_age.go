// mental_age.go
package models

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// Traits group mental-age question weights before averaging. Questions
// are tagged with exactly one trait; the estimator averages per trait
// first so that traits with more sampled questions do not dominate.
const (
	TraitEmotionalRegulation = "emotional_regulation"
	TraitImpulsivity         = "impulsivity"
	TraitCuriosity           = "curiosity"
	TraitResponsibility      = "responsibility"
	TraitPlayfulness         = "playfulness"
	TraitSocialMaturity      = "social_maturity"
	TraitRiskTolerance       = "risk_tolerance"
)

// MentalAgeQuestion is a single item from the mental-age bank. Weights
// align positionally with options; they are author-assigned and not
// required to bound or sum consistently across items.
type MentalAgeQuestion struct {
	ID      string   `yaml:"id"`
	Prompt  string   `yaml:"prompt"`
	Trait   string   `yaml:"trait"`
	Options []string `yaml:"options"`
	Weights []int    `yaml:"weights"`
}

// MentalAgeBank holds the full static mental-age question set.
type MentalAgeBank struct {
	Questions []MentalAgeQuestion `yaml:"questions"`
}

// LoadMentalAgeBank reads and parses the mental-age bank YAML file.
func LoadMentalAgeBank(path string) (*MentalAgeBank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mental-age bank: %w", err)
	}

	var bank MentalAgeBank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mental-age bank YAML: %w", err)
	}

	for _, q := range bank.Questions {
		if len(q.Options) != len(q.Weights) {
			return nil, fmt.Errorf("question %q: %d options but %d weights", q.ID, len(q.Options), len(q.Weights))
		}
		if q.Trait == "" {
			return nil, fmt.Errorf("question %q: missing trait", q.ID)
		}
	}

	return &bank, nil
}

// Sample draws a shuffled subset of n questions without replacement.
func (b *MentalAgeBank) Sample(n int, rng *rand.Rand) []MentalAgeQuestion {
	shuffled := make([]MentalAgeQuestion, len(b.Questions))
	copy(shuffled, b.Questions)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n < len(shuffled) {
		shuffled = shuffled[:n]
	}
	return shuffled
}
