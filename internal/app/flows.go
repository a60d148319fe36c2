package app

import (
	"strconv"
	"strings"

	"braincheck/internal/generators"
	"braincheck/internal/models"
	"braincheck/internal/reaction"
	"braincheck/internal/scoring"
)

// runQuiz walks one logical reasoning quiz run: a fresh sampled
// question set, one answer per question (Enter skips), then scoring.
func (a *App) runQuiz() {
	questions := a.questions.Sample(a.cfg.Quiz.QuestionCount, a.rng)
	answers := make(map[string]int)

	for i, q := range questions {
		a.printf("\nQ%d/%d [%s] %s\n", i+1, len(questions), q.Category, q.Text)
		for j, option := range q.Options {
			a.printf("  %d) %s\n", j+1, option)
		}
		if chosen, ok := a.promptChoice("answer: ", len(q.Options)); ok {
			answers[q.ID] = chosen
		}
	}

	result := scoring.ScoreQuiz(questions, answers)
	a.results.SetIQ(result)

	a.printf("\nScore: %d/100 — %s\n", result.Score, result.Level)
	a.printf("Correct: %d, wrong: %d\n", result.Correct, result.Wrong)
	for _, q := range questions {
		if chosen, ok := answers[q.ID]; !ok || chosen != q.Correct {
			a.printf("  %s — %s\n", q.Text, q.Explanation)
		}
	}
	a.printf("%s\n", result.ShareText())
}

// runMentalAge walks one mental-age assessment: a randomized subset of
// the bank, one trait sample per answered question.
func (a *App) runMentalAge() {
	questions := a.mentalAge.Sample(a.cfg.Quiz.QuestionCount, a.rng)
	var samples []models.TraitSample

	for i, q := range questions {
		a.printf("\nQ%d/%d %s\n", i+1, len(questions), q.Prompt)
		for j, option := range q.Options {
			a.printf("  %d) %s\n", j+1, option)
		}
		chosen, ok := a.promptChoice("answer: ", len(q.Options))
		if !ok {
			continue
		}
		samples = append(samples, models.TraitSample{
			Trait: q.Trait,
			Score: q.Weights[chosen],
		})
	}

	result := scoring.EstimateMentalAge(samples)
	a.results.SetMentalAge(result)
	a.printf("\nYour mental age: %.1f\n%s\n", result.MentalAge, result.Explanation)
}

// runUsername scores a typed handle. Purely for fun and says so.
func (a *App) runUsername() {
	handle, ok := a.prompt("\nUsername (with or without @): ")
	if !ok {
		return
	}

	result, err := scoring.ScoreUsername(handle)
	if err != nil {
		a.printf("Type an actual username first.\n")
		return
	}

	a.printf("Estimated IQ: %d — %s\n", result.Score, result.Category)
	a.printf("Handle age score: %d/10\n", result.AgeScore)
	a.printf("(Entertainment only. Your username does not know your IQ.)\n")
}

// runReaction runs the configured number of reaction rounds: wait for
// the GO signal, hit Enter, repeat. Pressing before the signal is a
// false start and re-queues the round without penalty.
func (a *App) runReaction() {
	test := reaction.New(a.cfg.Reaction.MinDelayMs, a.cfg.Reaction.MaxDelayMs, a.rng)
	defer test.Stop()

	scored := 0
	for scored < a.cfg.Reaction.Rounds {
		a.printf("\nRound %d/%d — wait for GO, then hit Enter.\n", scored+1, a.cfg.Reaction.Rounds)
		test.Start(func() { a.printf("GO!\n") })

		if _, ok := a.prompt(""); !ok {
			return
		}

		attempt, outcome := test.Press()
		switch outcome {
		case reaction.OutcomeTooEarly:
			a.printf("Too early! That one doesn't count — again.\n")
		case reaction.OutcomeScored:
			a.printf("%d ms — %s\n", attempt.Time, scoring.ClassifyReaction(attempt.Time))
			a.reactions.Push(attempt)
			a.bests.Submit(models.GameReaction, float64(attempt.Time), true)
			scored++
		}
	}

	a.showHistory()
}

// showHistory prints the stored reaction history and its summary.
func (a *App) showHistory() {
	times := a.reactions.Times()
	if len(times) == 0 {
		a.printf("\nNo reaction attempts recorded yet.\n")
		return
	}

	a.printf("\nRecent attempts (newest first):\n")
	for _, t := range times {
		a.printf("  %4d ms  %s\n", t, scoring.ClassifyReaction(t))
	}
	stats := scoring.SummarizeReactions(times)
	a.printf("Average %.0f ms (SD %.0f) over %d attempts, best %d ms.\n",
		stats.Average, stats.SD, stats.Count, stats.Best)
	if best := a.bests.Best(models.GameReaction); best != nil {
		a.printf("All-time best: %.0f ms.\n", best.Score)
	}
}

// runPattern plays pattern-sprint rounds: guess the next term of a
// generated sequence. Difficulty climbs on a correct streak.
func (a *App) runPattern() {
	progress := generators.NewProgression(a.cfg.Games.PatternLevelUpAfter, 3, true)
	correct := 0
	const rounds = 10

	for i := 0; i < rounds; i++ {
		q := generators.GeneratePattern(progress.Level(), a.rng)
		a.printf("\n[level %d] %s … what comes next?\n", progress.Level(), joinInts(q.Sequence))
		for j, option := range q.Options {
			a.printf("  %d) %d\n", j+1, option)
		}

		chosen, ok := a.promptChoice("answer: ", len(q.Options))
		if !ok {
			break
		}
		right := q.Options[chosen] == q.Answer
		if right {
			correct++
			a.printf("Correct!\n")
		} else {
			a.printf("Nope — it was %d.\n", q.Answer)
		}
		if progress.Record(right) {
			a.printf("Level up!\n")
		}
	}

	a.printf("\nPattern sprint done: %d correct.\n", correct)
	a.bests.Submit(models.GamePattern, float64(correct), false)
}

// runSpeedMath plays speed-math rounds. Difficulty climbs on
// cumulative correct answers.
func (a *App) runSpeedMath() {
	progress := generators.NewProgression(a.cfg.Games.SpeedMathLevelUpAfter, 4, false)
	correct := 0
	const rounds = 10

	for i := 0; i < rounds; i++ {
		q := generators.GenerateMath(progress.Level(), a.rng)
		a.printf("\n[level %d] %d %s %d = ?\n", progress.Level(), q.A, q.Op, q.B)

		answer, ok := a.promptInt("answer: ")
		if !ok {
			break
		}
		right := answer == q.Answer
		if right {
			correct++
			a.printf("Correct!\n")
		} else {
			a.printf("Nope — it was %d.\n", q.Answer)
		}
		if progress.Record(right) {
			a.printf("Level up!\n")
		}
	}

	a.printf("\nSpeed math done: %d correct.\n", correct)
	a.bests.Submit(models.GameSpeedMath, float64(correct), false)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
