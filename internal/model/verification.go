package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Row is a single line of a verification (one side of a double-entry).
// Exactly one of Debit/Credit is non-zero.
type Row struct {
	AccountCode string
	Debit       decimal.Decimal // zero if credit side
	Credit      decimal.Decimal // zero if debit side
}

// Amount returns the signed amount of the row, debit minus credit.
func (r Row) Amount() decimal.Decimal {
	return r.Debit.Sub(r.Credit)
}

// Verification is a balanced journal entry (Swedish "verifikation").
// Immutable once appended to the journal; corrections are new
// offsetting verifications, never in-place edits.
type Verification struct {
	ID           string // "YYYY-MM-NNN", assigned by the journal when empty
	Date         time.Time
	Description  string
	Counterparty string
	Reference    string
	Rows         []Row
}

// TotalDebit sums the debit side across all rows.
func (v Verification) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, r := range v.Rows {
		total = total.Add(r.Debit)
	}
	return total
}

// TotalCredit sums the credit side across all rows.
func (v Verification) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, r := range v.Rows {
		total = total.Add(r.Credit)
	}
	return total
}

// Balanced reports whether the verification satisfies the double-entry
// balance law, sum(debit) == sum(credit).
func (v Verification) Balanced() bool {
	return v.TotalDebit().Equal(v.TotalCredit())
}
