package main

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"braincheck/internal/app"
	"braincheck/internal/config"
	"braincheck/internal/database"
	logger "braincheck/internal/logging"
	"braincheck/internal/models"
	"braincheck/internal/repository"
)

func main() {
	// Local overrides from .env, if present.
	_ = godotenv.Load()

	// The config loader wants a logger and the full logger wants the
	// config, so bootstrap with a console-only logger first.
	log := logger.Console()
	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	logCfg := config.Conf.Logging
	log, err := logger.Init(logger.Config{
		Directory:  logCfg.Directory,
		MaxSize:    logCfg.MaxSize,
		MaxBackups: logCfg.MaxBackups,
		MaxAge:     logCfg.MaxAge,
		Compress:   logCfg.Compress,
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// Open the local store.
	db, err := database.Open(config.Conf.Storage.Path, log)
	if err != nil {
		log.Fatal("Failed to open local store", zap.Error(err))
	}
	store := repository.New(db, log)

	// Load the static question banks at startup.
	questions, err := models.LoadQuestionBank(config.Conf.Banks.Questions)
	if err != nil {
		log.Fatal("Failed to load question bank", zap.Error(err))
	}
	mentalAge, err := models.LoadMentalAgeBank(config.Conf.Banks.MentalAge)
	if err != nil {
		log.Fatal("Failed to load mental-age bank", zap.Error(err))
	}
	log.Info("Question banks loaded",
		zap.Int("questions", len(questions.Questions)),
		zap.Int("mentalAgeQuestions", len(mentalAge.Questions)))

	a := app.New(log, config.Conf, questions, mentalAge, store, os.Stdin, os.Stdout)
	if err := a.Run(); err != nil {
		log.Fatal("App exited with error", zap.Error(err))
	}
}
