package main

import (
	"fmt"

	"github.com/Alice-Cartelet/SimilarWords/internal/archive"
	"github.com/Alice-Cartelet/SimilarWords/internal/cli"
	"github.com/Alice-Cartelet/SimilarWords/internal/similarity"
	"github.com/spf13/cobra"
)

func newLookupCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "lookup",
		Short: "Look up words in the corpus",
	}
	flags := rootCommand.PersistentFlags()

	var save bool
	flags.BoolVar(&save, "save", false, "Save the results in the query archive")

	var threshold float64
	similarCommand := &cobra.Command{
		Use:   "similar",
		Short: "Find corpus words within a similarity threshold of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if !cmd.Flags().Changed("threshold") {
				threshold = cfg.Similarity.Threshold
			}

			store := loadStore(cfg)
			queryArchive := archive.NewArchive(cfg.Archive.Path)
			lookupCLI := cli.NewLookupCLI(similarity.NewMatcher(store), nil, queryArchive)
			return lookupCLI.RunSimilar(word, threshold, save)
		},
	}
	similarCommand.Flags().Float64Var(&threshold, "threshold", similarity.MinThreshold,
		fmt.Sprintf("Similarity threshold between %v and %v. Defaults to the configured threshold",
			similarity.MinThreshold, similarity.MaxThreshold))

	var noTranslate bool
	synonymsCommand := &cobra.Command{
		Use:   "synonyms",
		Short: "Find corpus words sharing a meaning with a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			store := loadStore(cfg)
			resolver, closeTranslator := newResolver(cfg, store, noTranslate)
			defer closeTranslator()

			queryArchive := archive.NewArchive(cfg.Archive.Path)
			lookupCLI := cli.NewLookupCLI(nil, resolver, queryArchive)
			return lookupCLI.RunSynonyms(cmd.Context(), word, save)
		},
	}
	synonymsCommand.Flags().BoolVar(&noTranslate, "no-translate", false,
		"Skip translating results with the external dictionary")

	rootCommand.AddCommand(similarCommand, synonymsCommand)
	return &rootCommand
}
