package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/huvudbok-dev/huvudbok/internal/accounts"
	"github.com/huvudbok-dev/huvudbok/internal/model"
)

// UnbalancedEntryError reports a verification violating the double-entry
// balance law, sum(debit) != sum(credit).
type UnbalancedEntryError struct {
	VerificationID string
	Debit          decimal.Decimal
	Credit         decimal.Decimal
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("unbalanced verification %q: debits (%s) != credits (%s)",
		e.VerificationID, e.Debit.StringFixed(2), e.Credit.StringFixed(2))
}

// InvalidRowError reports a row that is malformed on its own: both or
// neither side set, a negative amount, or more than two decimal places.
type InvalidRowError struct {
	VerificationID string
	Row            int
	Reason         string
}

func (e *InvalidRowError) Error() string {
	return fmt.Sprintf("verification %q row %d: %s", e.VerificationID, e.Row, e.Reason)
}

var hundred = decimal.NewFromInt(100)

// Validate enforces the journal invariants on a single verification:
// at least one row, exactly one of debit/credit per row, non-negative
// two-decimal amounts, every account code registered, and the balance
// law across rows. The first violation is returned.
func Validate(v model.Verification, chart AccountChecker) error {
	if len(v.Rows) == 0 {
		return &InvalidRowError{VerificationID: v.ID, Row: 0, Reason: "verification has no rows"}
	}

	for i, r := range v.Rows {
		if r.Debit.IsNegative() || r.Credit.IsNegative() {
			return &InvalidRowError{VerificationID: v.ID, Row: i, Reason: "negative amount"}
		}
		hasDebit := !r.Debit.IsZero()
		hasCredit := !r.Credit.IsZero()
		if hasDebit == hasCredit {
			return &InvalidRowError{VerificationID: v.ID, Row: i, Reason: "row must have exactly one of debit or credit"}
		}
		if !exactCents(r.Debit) {
			return &InvalidRowError{VerificationID: v.ID, Row: i,
				Reason: fmt.Sprintf("debit %s has more than 2 decimal places", r.Debit)}
		}
		if !exactCents(r.Credit) {
			return &InvalidRowError{VerificationID: v.ID, Row: i,
				Reason: fmt.Sprintf("credit %s has more than 2 decimal places", r.Credit)}
		}
		if !chart.Exists(r.AccountCode) {
			return &accounts.UnknownAccountError{Code: r.AccountCode}
		}
	}

	debit := v.TotalDebit()
	credit := v.TotalCredit()
	if !debit.Equal(credit) {
		return &UnbalancedEntryError{VerificationID: v.ID, Debit: debit, Credit: credit}
	}
	return nil
}

func exactCents(d decimal.Decimal) bool {
	scaled := d.Mul(hundred)
	return scaled.Equal(scaled.Floor())
}
