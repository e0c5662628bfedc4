package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/periodic2048/internal/core"
	"github.com/vovakirdan/periodic2048/internal/games/periodic"
	"github.com/vovakirdan/periodic2048/internal/platform/tui"
	"github.com/vovakirdan/periodic2048/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/HJKL - Slide the tiles
  1-4              - Answer the trivia question
  Enter            - Skip the element card countdown
  R/Space          - Restart
  P/Esc            - Pause
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 6x6 board, more hydrogen, wrong answers are forgiven
  normal - 5x5 board as configured
  hard   - 4x4 board, more helium, short element card, wrong answers restart

Examples:
  periodic play
  periodic play --difficulty hard
  periodic play --seed 42 --log debug.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write a debug log to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if flagDifficulty == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		preset, ok, err := tui.RunDifficultySelector(width, height)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		flagDifficulty = string(preset)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	bank, err := loadBank(cfg)
	if err != nil {
		return err
	}

	// The terminal belongs to Bubble Tea; log to a file or nowhere.
	logger := log.New(io.Discard)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "periodic",
			Level:           log.DebugLevel,
		})
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed(),
	}
	logger.Debug("starting game", "seed", rc.Seed, "size", cfg.Board.Size, "difficulty", flagDifficulty)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// The game still works without scores.
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(periodic.New(cfg, bank), store, rc, logger)
}
