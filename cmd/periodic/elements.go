package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/periodic2048/internal/trivia"
)

var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "List the element ladder",
	Long: `Shows every element tile in merge order with the number of trivia
questions available for it.`,
	Args: cobra.NoArgs,
	RunE: runElements,
}

func runElements(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	bank, err := loadBank(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("  %-5s  %-6s  %-10s  %s\n", "Level", "Symbol", "Name", "Questions")
	fmt.Printf("  %-5s  %-6s  %-10s  %s\n", "-----", "------", "----", "---------")
	for _, el := range trivia.Elements {
		marker := ""
		if el.Number == cfg.Board.WinLevel {
			marker = "  <- goal"
		}
		fmt.Printf("  %-5d  %-6s  %-10s  %d%s\n", el.Number, el.Symbol, el.Name, len(bank.Questions(el.Number)), marker)
	}
	return nil
}
