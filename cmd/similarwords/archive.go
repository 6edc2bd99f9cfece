package main

import (
	"fmt"

	"github.com/Alice-Cartelet/SimilarWords/internal/archive"
	"github.com/Alice-Cartelet/SimilarWords/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type SortOrder string

func (o *SortOrder) Set(val string) error {
	for _, order := range allSortOrders {
		if val == string(order) {
			*o = order
			return nil
		}
	}
	return fmt.Errorf("invalid sort order: %s", val)
}

func (o SortOrder) String() string {
	return string(o)
}

func (o *SortOrder) Type() string {
	return "SortOrder"
}

const (
	SortOrderLabel   SortOrder = "label"
	SortOrderSavedAt SortOrder = "saved-at"
)

var (
	_             pflag.Value = (*SortOrder)(nil)
	allSortOrders             = []SortOrder{SortOrderLabel, SortOrderSavedAt}
)

func newArchiveCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "archive",
		Short: "Manage saved queries",
	}

	order := SortOrderLabel
	listCommand := &cobra.Command{
		Use:   "list",
		Short: "List saved queries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			queryArchive := archive.NewArchive(cfg.Archive.Path)
			return cli.NewArchiveCLI(queryArchive).RunList(archive.SortOrder(order))
		},
	}
	listCommand.Flags().Var(&order, "sort", fmt.Sprintf("Sort order. Possible values are %v", allSortOrders))

	deleteCommand := &cobra.Command{
		Use:   "delete",
		Short: "Delete a saved query by its label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			queryArchive := archive.NewArchive(cfg.Archive.Path)
			return cli.NewArchiveCLI(queryArchive).RunDelete(args[0])
		},
	}

	rootCommand.AddCommand(listCommand, deleteCommand)
	return &rootCommand
}
