// Package postlog keeps an append-only CSV log of posting activity:
// which import batch created which verification, and the commit that
// recorded it.
package postlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is one row in the posting log.
type Entry struct {
	Timestamp      time.Time
	BatchID        string // UUID shared by every posting from one import run
	Source         string // "seb", "manual", ...
	Action         string
	Details        string
	VerificationID string
	CommitHash     string
}

// NewBatchID returns a fresh batch identifier for an import run.
func NewBatchID() string {
	return uuid.NewString()
}

// Header is the CSV header for post-log.csv.
const Header = "timestamp,batch_id,source,action,details,verification_id,commit_hash"

const (
	numFields     = 7
	logDir        = "logs"
	logFile       = "logs/post-log.csv"
	colTimestamp  = 0
	colBatchID    = 1
	colSource     = 2
	colAction     = 3
	colDetails    = 4
	colVerID      = 5
	colCommitHash = 6
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colBatchID] = e.BatchID
	row[colSource] = e.Source
	row[colAction] = e.Action
	row[colDetails] = e.Details
	row[colVerID] = e.VerificationID
	row[colCommitHash] = e.CommitHash
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Entry{
		Timestamp:      ts,
		BatchID:        record[colBatchID],
		Source:         record[colSource],
		Action:         record[colAction],
		Details:        record[colDetails],
		VerificationID: record[colVerID],
		CommitHash:     record[colCommitHash],
	}, nil
}

// Append writes entries to <booksRoot>/logs/post-log.csv, creating the
// file and header if needed.
func Append(booksRoot string, entries []Entry) error {
	dir := filepath.Join(booksRoot, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(booksRoot, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening post log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <booksRoot>/logs/post-log.csv.
// Returns an empty slice if the file does not exist.
func Read(booksRoot string) ([]Entry, error) {
	path := filepath.Join(booksRoot, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening post log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading post log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
