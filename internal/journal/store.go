package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/huvudbok-dev/huvudbok/internal/model"
)

// Store persists a Journal as per-month journal.csv files under
// booksRoot/YYYY/MM/. The in-memory Journal stays the source of truth
// for queries; the store only loads and appends.
type Store struct {
	booksRoot string
}

// NewStore creates a Store rooted at booksRoot.
func NewStore(booksRoot string) *Store {
	return &Store{booksRoot: booksRoot}
}

// Load reads every month's journal.csv into a fresh Journal validated
// against the given chart. Months are loaded in path order so IDs and
// insertion order are reproducible.
func (s *Store) Load(chart AccountChecker) (*Journal, error) {
	pattern := filepath.Join(s.booksRoot, "[0-9][0-9][0-9][0-9]", "[0-9][0-9]", "journal.csv")
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("scanning journal files: %w", err)
	}
	sort.Strings(paths)

	j := New(chart)
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening journal %s: %w", path, err)
		}
		vs, err := ReadVerifications(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("reading journal %s: %w", path, err)
		}
		for _, v := range vs {
			if _, err := j.Append(v); err != nil {
				return nil, fmt.Errorf("journal %s: %w", path, err)
			}
		}
	}
	return j, nil
}

// Append appends v to the in-memory journal and, on success, to the
// month's journal.csv (creating directory and header as needed).
// Returns the verification ID.
func (s *Store) Append(j *Journal, v model.Verification) (string, error) {
	verID, err := j.Append(v)
	if err != nil {
		return "", err
	}
	v.ID = verID

	path := s.monthPath(v.Date.Year(), int(v.Date.Month()))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating journal dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return "", fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendVerification(f, v); err != nil {
		return "", fmt.Errorf("appending verification: %w", err)
	}
	return verID, nil
}

func (s *Store) monthPath(year, month int) string {
	return filepath.Join(s.booksRoot, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), "journal.csv")
}
