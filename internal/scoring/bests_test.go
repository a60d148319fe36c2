package scoring

import (
	"testing"

	"braincheck/internal/models"
)

func TestIsNewBestFirstScoreAlwaysQualifies(t *testing.T) {
	if !IsNewBest(9999, nil, true) {
		t.Fatal("first score (lower-is-better) should be a new best")
	}
	if !IsNewBest(1, nil, false) {
		t.Fatal("first score (higher-is-better) should be a new best")
	}
}

func TestIsNewBestStrictness(t *testing.T) {
	stored := &models.PersonalBest{Score: 500, GameName: models.GameReaction}

	cases := []struct {
		candidate     float64
		lowerIsBetter bool
		want          bool
	}{
		{500, true, false}, // tie is never a new best
		{499, true, true},
		{501, true, false},
		{500, false, false},
		{501, false, true},
		{499, false, false},
	}
	for _, c := range cases {
		if got := IsNewBest(c.candidate, stored, c.lowerIsBetter); got != c.want {
			t.Fatalf("IsNewBest(%v, stored=500, lower=%v)=%v, want %v",
				c.candidate, c.lowerIsBetter, got, c.want)
		}
	}
}
