package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/periodic2048/internal/games/periodic"
	"github.com/vovakirdan/periodic2048/internal/platform/tui"
	"github.com/vovakirdan/periodic2048/internal/storage"
	"github.com/vovakirdan/periodic2048/internal/trivia"
)

var (
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and trivia accuracy",
	Long: `Display the top scores with the best element each run reached.

In a terminal this opens the interactive scoreboard; use --plain (or pipe
the output) for a text listing.

Examples:
  periodic scores
  periodic scores --plain
  periodic scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text listing instead of the interactive view")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores and answers")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(periodic.ID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
	if !flagPlain && termErr == nil && term.IsTerminal(int(os.Stdout.Fd())) {
		return tui.RunScoreboard(store, periodic.ID, width, height)
	}
	return printScores(store)
}

func printScores(store *storage.Store) error {
	scores, err := store.TopScores(periodic.ID, 10)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Periodic 2048")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'periodic play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-14s  %s\n", "Rank", "Score", "Element", "Date")
	fmt.Printf("  %-4s  %-10s  %-14s  %s\n", "----", "-----", "-------", "----")
	for i, entry := range scores {
		element := fmt.Sprintf("%s %s", trivia.Symbol(entry.MaxLevel), trivia.Name(entry.MaxLevel))
		fmt.Printf("  %-4d  %-10d  %-14s  %s\n", i+1, entry.Score, element, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.AnswerStats(periodic.ID)
	if err != nil {
		return err
	}
	if len(stats) > 0 {
		fmt.Println()
		fmt.Println("Trivia accuracy")
		for _, s := range stats {
			fmt.Printf("  %-3s %3d/%-3d  %3.0f%%\n", trivia.Symbol(s.Level), s.Correct, s.Asked, s.Accuracy()*100)
		}
	}
	return nil
}
