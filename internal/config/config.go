package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Conf holds the application configuration, making it accessible globally.
var Conf *Config

// Config struct is the top-level configuration structure.
type Config struct {
	Storage  StorageConfig  `mapstructure:"storage"`
	Banks    BanksConfig    `mapstructure:"banks"`
	Quiz     QuizConfig     `mapstructure:"quiz"`
	Reaction ReactionConfig `mapstructure:"reaction"`
	Games    GamesConfig    `mapstructure:"games"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// StorageConfig holds settings for the local result store.
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// BanksConfig points at the static question bank files.
type BanksConfig struct {
	Questions string `mapstructure:"questions"`
	MentalAge string `mapstructure:"mental_age"`
}

// QuizConfig holds settings for the logical reasoning quiz.
type QuizConfig struct {
	QuestionCount int `mapstructure:"question_count"`
}

// ReactionConfig holds settings for the reaction time test.
type ReactionConfig struct {
	MinDelayMs int `mapstructure:"min_delay_ms"`
	MaxDelayMs int `mapstructure:"max_delay_ms"`
	HistoryCap int `mapstructure:"history_cap"`
	Rounds     int `mapstructure:"rounds"`
}

// GamesConfig holds mini-game balance settings.
type GamesConfig struct {
	PatternLevelUpAfter   int `mapstructure:"pattern_level_up_after"`
	SpeedMathLevelUpAfter int `mapstructure:"speed_math_level_up_after"`
}

// LoggingConfig holds settings for the logger.
type LoggingConfig struct {
	Directory  string `mapstructure:"directory"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// setDefaults sets the default values for the configuration.
func setDefaults(v *viper.Viper) {
	// Storage defaults
	v.SetDefault("storage.path", "braincheck.db")

	// Question bank defaults
	v.SetDefault("banks.questions", "config/questions.yaml")
	v.SetDefault("banks.mental_age", "config/mental_age_questions.yaml")

	// Quiz defaults
	v.SetDefault("quiz.question_count", 15)

	// Reaction test defaults
	v.SetDefault("reaction.min_delay_ms", 2000)
	v.SetDefault("reaction.max_delay_ms", 5000)
	v.SetDefault("reaction.history_cap", 10)
	v.SetDefault("reaction.rounds", 5)

	// Mini-game balance defaults
	v.SetDefault("games.pattern_level_up_after", 3)
	v.SetDefault("games.speed_math_level_up_after", 5)

	// Logging defaults
	v.SetDefault("logging.directory", "logs")
	v.SetDefault("logging.max_size", 10)   // 10 MB
	v.SetDefault("logging.max_backups", 3) // Keep 3 backups
	v.SetDefault("logging.max_age", 7)     // 7 days
	v.SetDefault("logging.compress", true) // Compress old logs
}

// Init initializes the configuration with Viper.
func Init(projectRoot string, log *zap.Logger) error {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// --- File Configuration ---
	v.AddConfigPath(filepath.Join(projectRoot, "config"))
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// --- Environment Variable Binding ---
	v.SetEnvPrefix("BRAINCHECK") // e.g., BRAINCHECK_STORAGE_PATH
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read the initial configuration from the file.
	// It's okay if the file doesn't exist; defaults and env vars will be used.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal the config into our global Conf variable
	if err := v.Unmarshal(&Conf); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Set up a watch for configuration changes for hot-reloading
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Info("Configuration file changed, reloading.", zap.String("file", e.Name))
		if err := v.Unmarshal(&Conf); err != nil {
			log.Error("Error reloading configuration", zap.Error(err))
		}
	})

	log.Info("Configuration loaded successfully")
	return nil
}
