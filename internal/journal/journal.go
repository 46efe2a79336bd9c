package journal

import (
	"sort"
	"sync"
	"time"

	"github.com/huvudbok-dev/huvudbok/internal/id"
	"github.com/huvudbok-dev/huvudbok/internal/model"
)

// AccountChecker tests whether a BAS code exists in the chart of accounts.
type AccountChecker interface {
	Exists(code string) bool
}

type monthKey struct {
	year  int
	month time.Month
}

// Journal is an append-only store of balanced verifications. Entries are
// immutable once appended; corrections are new offsetting verifications.
// Appends are serialized; reads run against a consistent snapshot.
//
// Internally an arena of verifications plus index maps by account code
// and by calendar month, so appends are O(rows) and range queries touch
// only the months they cover.
type Journal struct {
	mu        sync.RWMutex
	accounts  AccountChecker
	entries   []model.Verification
	byAccount map[string][]int
	byMonth   map[monthKey][]int
	seq       map[monthKey]int
}

// New creates an empty Journal validating against the given chart.
func New(accounts AccountChecker) *Journal {
	return &Journal{
		accounts:  accounts,
		byAccount: make(map[string][]int),
		byMonth:   make(map[monthKey][]int),
		seq:       make(map[monthKey]int),
	}
}

// Append validates v and appends it atomically. On a validation failure
// the journal is unchanged and the error is *UnbalancedEntryError,
// *accounts.UnknownAccountError, or *InvalidRowError. When v carries no
// ID one is assigned from the month's sequence. Returns the ID.
func (j *Journal) Append(v model.Verification) (string, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := Validate(v, j.accounts); err != nil {
		return "", err
	}

	key := monthKey{v.Date.Year(), v.Date.Month()}
	if v.ID == "" {
		j.seq[key]++
		v.ID = id.FormatVerificationID(key.year, int(key.month), j.seq[key])
	} else if _, month, seq, err := id.ParseVerificationID(v.ID); err == nil {
		k := monthKey{v.Date.Year(), time.Month(month)}
		if seq > j.seq[k] {
			j.seq[k] = seq
		}
	}

	// Copy the rows so later caller mutations cannot reach the arena.
	v.Rows = append([]model.Row(nil), v.Rows...)

	idx := len(j.entries)
	j.entries = append(j.entries, v)
	j.byMonth[key] = append(j.byMonth[key], idx)
	seen := make(map[string]bool, len(v.Rows))
	for _, r := range v.Rows {
		if !seen[r.AccountCode] {
			seen[r.AccountCode] = true
			j.byAccount[r.AccountCode] = append(j.byAccount[r.AccountCode], idx)
		}
	}
	return v.ID, nil
}

// Len returns the number of appended verifications.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.entries)
}

// All returns a snapshot of every verification in insertion order.
func (j *Journal) All() []model.Verification {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return append([]model.Verification(nil), j.entries...)
}

// EntriesInRange returns a snapshot of verifications whose date falls in
// [start, end], ordered by date then insertion order. The ordering is
// stable so repeated report runs are reproducible. Zero start or end
// leaves that side of the range open.
func (j *Journal) EntriesInRange(start, end time.Time) []model.Verification {
	j.mu.RLock()
	defer j.mu.RUnlock()

	var out []model.Verification
	for _, v := range j.entries {
		if inRange(v.Date, start, end) {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Date.Before(out[b].Date)
	})
	return out
}

// EntriesForAccount returns the verifications touching the given account
// code in [start, end], ordered by date then insertion order.
func (j *Journal) EntriesForAccount(code string, start, end time.Time) []model.Verification {
	j.mu.RLock()
	defer j.mu.RUnlock()

	var out []model.Verification
	for _, idx := range j.byAccount[code] {
		v := j.entries[idx]
		if inRange(v.Date, start, end) {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Date.Before(out[b].Date)
	})
	return out
}

// EntriesInMonth returns the verifications dated in the given calendar
// month, in insertion order.
func (j *Journal) EntriesInMonth(year int, month time.Month) []model.Verification {
	j.mu.RLock()
	defer j.mu.RUnlock()

	idxs := j.byMonth[monthKey{year, month}]
	out := make([]model.Verification, 0, len(idxs))
	for _, idx := range idxs {
		out = append(out, j.entries[idx])
	}
	return out
}

func inRange(date, start, end time.Time) bool {
	if !start.IsZero() && date.Before(start) {
		return false
	}
	if !end.IsZero() && date.After(end) {
		return false
	}
	return true
}
