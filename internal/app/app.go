// Package app is the interactive front end: it owns the question
// banks, the random source, and the session stores, and walks the user
// through each test. The scoring core never sees any of this.
package app

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"braincheck/internal/config"
	"braincheck/internal/models"
	"braincheck/internal/repository"
	"braincheck/internal/session"
)

// App wires the flows together.
type App struct {
	log       *zap.Logger
	cfg       *config.Config
	questions *models.QuestionBank
	mentalAge *models.MentalAgeBank
	store     *repository.Store
	results   *session.Results
	reactions *session.ReactionLog
	bests     *session.BestTracker
	rng       *rand.Rand
	in        *bufio.Scanner
	out       io.Writer
}

// New builds the app around loaded banks and an opened store.
func New(
	log *zap.Logger,
	cfg *config.Config,
	questions *models.QuestionBank,
	mentalAge *models.MentalAgeBank,
	store *repository.Store,
	in io.Reader,
	out io.Writer,
) *App {
	app := &App{
		log:       log,
		cfg:       cfg,
		questions: questions,
		mentalAge: mentalAge,
		store:     store,
		results:   &session.Results{},
		reactions: session.NewReactionLog(store, cfg.Reaction.HistoryCap, log),
		bests:     session.NewBestTracker(store, log),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		in:        bufio.NewScanner(in),
		out:       out,
	}

	// Celebrate new bests from any game in one place.
	app.bests.OnNewBest(func(best models.PersonalBest) {
		app.printf("*** New personal best for %s: %v ***\n", best.GameName, best.Score)
	})

	return app
}

// Run shows the menu loop until the user quits.
func (a *App) Run() error {
	for {
		a.printf("\n=== braincheck ===\n")
		a.printf("1) Logic quiz\n")
		a.printf("2) Mental age\n")
		a.printf("3) Username IQ\n")
		a.printf("4) Reaction test\n")
		a.printf("5) Pattern sprint\n")
		a.printf("6) Speed math\n")
		a.printf("7) Reaction history\n")
		a.printf("8) Toggle theme (current: %s)\n", a.themeLabel())
		a.printf("q) Quit\n")

		choice, ok := a.prompt("> ")
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			a.runQuiz()
		case "2":
			a.runMentalAge()
		case "3":
			a.runUsername()
		case "4":
			a.runReaction()
		case "5":
			a.runPattern()
		case "6":
			a.runSpeedMath()
		case "7":
			a.showHistory()
		case "8":
			a.toggleTheme()
		case "q", "quit", "exit":
			return nil
		default:
			a.printf("Unknown choice.\n")
		}
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// prompt prints a prompt and reads one line, ok=false on EOF.
func (a *App) prompt(label string) (string, bool) {
	a.printf("%s", label)
	if !a.in.Scan() {
		return "", false
	}
	return a.in.Text(), true
}

// promptChoice reads a 1-based option pick, ok=false when the input is
// blank (a skip) or EOF.
func (a *App) promptChoice(label string, optionCount int) (int, bool) {
	for {
		line, alive := a.prompt(label)
		if !alive {
			return 0, false
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > optionCount {
			a.printf("Pick 1-%d, or press Enter to skip.\n", optionCount)
			continue
		}
		return n - 1, true
	}
}

// promptInt reads an integer answer, ok=false on blank or EOF.
func (a *App) promptInt(label string) (int, bool) {
	for {
		line, alive := a.prompt(label)
		if !alive {
			return 0, false
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			a.printf("Enter a number.\n")
			continue
		}
		return n, true
	}
}

func (a *App) themeLabel() string {
	if theme := a.store.Theme(); theme != "" {
		return theme
	}
	return "light"
}

func (a *App) toggleTheme() {
	next := "dark"
	if a.themeLabel() == "dark" {
		next = "light"
	}
	if err := a.store.SetTheme(next); err != nil {
		a.log.Warn("Failed to persist theme", zap.Error(err))
	}
	a.printf("Theme set to %s.\n", next)
}
