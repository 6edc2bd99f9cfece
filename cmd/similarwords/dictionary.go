package main

import (
	"fmt"

	"github.com/Alice-Cartelet/SimilarWords/internal/cli"
	"github.com/spf13/cobra"
)

func newDictionaryCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "dictionary",
		Short: "Inspect the loaded corpus",
	}

	var limit int
	completeCommand := &cobra.Command{
		Use:   "complete",
		Short: "List corpus words starting with a prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return cli.NewDictionaryCLI(loadStore(cfg)).RunComplete(args[0], limit)
		},
	}
	completeCommand.Flags().IntVar(&limit, "limit", 20, "Maximum number of words to list, 0 for no limit")

	statsCommand := &cobra.Command{
		Use:   "stats",
		Short: "Show corpus statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return cli.NewDictionaryCLI(loadStore(cfg)).RunStats()
		},
	}

	rootCommand.AddCommand(completeCommand, statsCommand)
	return &rootCommand
}
