package archive

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Alice-Cartelet/SimilarWords/internal/dictionary"
)

// FormatVersion is written into every archive file. Files written by a
// newer version than this are not loaded.
const FormatVersion = 1

// SortOrder selects how List orders the saved records.
type SortOrder string

const (
	SortByLabel             SortOrder = "label"
	SortBySavedAtDescending SortOrder = "saved-at"
)

// Record is a lookup result saved under a user chosen label.
// The ID is the lowercased label and identifies the record for Delete.
type Record struct {
	ID      string             `yaml:"id"`
	Label   string             `yaml:"label"`
	Results []dictionary.Entry `yaml:"results"`
	SavedAt time.Time          `yaml:"saved_at"`
}

type archiveFile struct {
	Version int      `yaml:"version"`
	Records []Record `yaml:"records"`
}

// Archive keeps labeled lookup results in a single YAML file.
// Every mutation rewrites the whole file.
type Archive struct {
	path string

	mutex   sync.RWMutex
	records []Record
}

// NewArchive loads the archive stored at path. A missing, unreadable or
// incompatible file yields an empty archive instead of an error.
func NewArchive(path string) *Archive {
	archive := &Archive{
		path: path,
	}

	contents, err := readYamlFile[archiveFile](path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) && !errors.Is(err, io.EOF) {
			slog.Default().Warn("could not read the archive, starting empty",
				slog.String("path", path),
				slog.Any("error", err),
			)
		}
		return archive
	}
	if contents.Version > FormatVersion {
		slog.Default().Warn("the archive was written by a newer version, starting empty",
			slog.String("path", path),
			slog.Int("version", contents.Version),
		)
		return archive
	}

	archive.records = contents.Records
	return archive
}

// Save stores results under label and reports whether a new record was
// written. It reports false when a record with the same label already
// exists, comparing labels case-insensitively.
func (a *Archive) Save(label string, results []dictionary.Entry) (bool, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	id := strings.ToLower(label)
	for _, record := range a.records {
		if record.ID == id {
			return false, nil
		}
	}

	records := append(a.records, Record{
		ID:      id,
		Label:   label,
		Results: results,
		SavedAt: time.Now(),
	})
	if err := a.persist(records); err != nil {
		return false, fmt.Errorf("persist > %w", err)
	}

	a.records = records
	return true, nil
}

// Delete removes the record saved under label, comparing labels
// case-insensitively, and reports whether a record was removed.
// Deleting an absent label is not an error and leaves the file
// untouched.
func (a *Archive) Delete(label string) (bool, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	id := strings.ToLower(label)
	records := make([]Record, 0, len(a.records))
	for _, record := range a.records {
		if record.ID == id {
			continue
		}
		records = append(records, record)
	}
	if len(records) == len(a.records) {
		return false, nil
	}

	if err := a.persist(records); err != nil {
		return false, fmt.Errorf("persist > %w", err)
	}

	a.records = records
	return true, nil
}

// List returns a copy of the saved records in the requested order.
func (a *Archive) List(order SortOrder) []Record {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	records := make([]Record, len(a.records))
	copy(records, a.records)

	switch order {
	case SortBySavedAtDescending:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].SavedAt.After(records[j].SavedAt)
		})
	default:
		sort.SliceStable(records, func(i, j int) bool {
			return strings.ToLower(records[i].Label) < strings.ToLower(records[j].Label)
		})
	}
	return records
}

func (a *Archive) persist(records []Record) error {
	if err := os.MkdirAll(filepath.Dir(a.path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	if err := writeYamlFile(a.path, archiveFile{
		Version: FormatVersion,
		Records: records,
	}); err != nil {
		return fmt.Errorf("writeYamlFile(%s) > %w", a.path, err)
	}
	return nil
}
