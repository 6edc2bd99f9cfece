package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/Alice-Cartelet/SimilarWords/internal/archive"
	"github.com/fatih/color"
)

// ArchiveCLI runs the commands over saved queries.
type ArchiveCLI struct {
	queryArchive *archive.Archive
	stdoutWriter io.Writer
	bold         *color.Color
}

func NewArchiveCLI(queryArchive *archive.Archive) *ArchiveCLI {
	return &ArchiveCLI{
		queryArchive: queryArchive,
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
	}
}

// RunList prints every saved query in the requested order.
func (c *ArchiveCLI) RunList(order archive.SortOrder) error {
	records := c.queryArchive.List(order)
	if len(records) == 0 {
		fmt.Fprintln(c.stdoutWriter, "No saved queries")
		return nil
	}

	for _, record := range records {
		fmt.Fprintf(c.stdoutWriter, "%s: %d results, saved at %s\n",
			c.bold.Sprintf("%s", record.Label),
			len(record.Results),
			record.SavedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return nil
}

// RunDelete removes the query saved under label.
func (c *ArchiveCLI) RunDelete(label string) error {
	removed, err := c.queryArchive.Delete(label)
	if err != nil {
		return fmt.Errorf("queryArchive.Delete > %w", err)
	}
	if !removed {
		fmt.Fprintf(c.stdoutWriter, "No saved query %q was found\n", label)
		return nil
	}
	fmt.Fprintf(c.stdoutWriter, "Deleted the saved query %q\n", label)
	return nil
}
