// periodic is a 2048-style merge puzzle over the first twenty chemical
// elements, played in the terminal, over SSH or in a browser.
//
// Usage:
//
//	periodic play            - Play in this terminal
//	periodic serve           - Serve SSH and browser play
//	periodic scores          - Show high scores and trivia accuracy
//	periodic elements        - List the element ladder
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.periodic/scores.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/periodic2048/internal/config"
	"github.com/vovakirdan/periodic2048/internal/trivia"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	// A missing .env is normal; anything else is worth knowing about.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: cannot load .env: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "periodic",
	Short: "Periodic 2048 - merge your way from hydrogen to calcium",
	Long: `Periodic 2048 is the sliding-tile merge puzzle played with chemical
elements. Two equal elements merge into the next one; reach calcium to win.
Every new element you discover brings a trivia question.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH and browser servers
  scores    - View high scores and trivia accuracy
  elements  - List the elements and their levels

Examples:
  periodic play
  periodic play --difficulty easy
  periodic serve --ssh :2222 --http :8080
  periodic scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.periodic/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(elementsCmd)
}

// loadConfig layers file, environment and difficulty preset, then validates.
func loadConfig() (config.PeriodicConfig, error) {
	cfg, err := config.LoadPeriodic(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadBank returns the configured question bank or the built-in one.
func loadBank(cfg config.PeriodicConfig) (*trivia.Bank, error) {
	if cfg.Trivia.QuestionsFile == "" {
		return trivia.DefaultBank(), nil
	}
	return trivia.LoadBankFile(cfg.Trivia.QuestionsFile)
}

func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}
