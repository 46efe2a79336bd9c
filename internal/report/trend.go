package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/huvudbok-dev/huvudbok/internal/model"
)

// MonthKey identifies a calendar month. Trend buckets are ordered by
// this key, never by a formatted label: month-name string order is not
// chronological across year boundaries.
type MonthKey struct {
	Year  int
	Month time.Month
}

// Before reports whether k precedes other chronologically.
func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

var swedishMonths = [...]string{
	"januari", "februari", "mars", "april", "maj", "juni",
	"juli", "augusti", "september", "oktober", "november", "december",
}

// Label returns the Swedish display label, e.g. "december 2024".
// Display only; ordering always uses the key itself.
func (k MonthKey) Label() string {
	return fmt.Sprintf("%s %d", swedishMonths[k.Month-1], k.Year)
}

// MonthBucket is one month of revenue/expense activity.
type MonthBucket struct {
	Key      MonthKey
	Revenue  decimal.Decimal // intäkter
	Expenses decimal.Decimal // kostnader
	Result   decimal.Decimal // resultat = intäkter - kostnader
}

// TrendJournal is the journal read surface the trend builder needs.
type TrendJournal interface {
	EntriesInRange(start, end time.Time) []model.Verification
}

// Classifier resolves a BAS code to its account type.
type Classifier interface {
	Classify(code string) (model.AccountType, error)
}

// MonthlyTrend buckets every revenue and expense row in [start, end]
// into calendar months, summing |debit - credit| per side. The result
// is sorted chronologically.
func MonthlyTrend(j TrendJournal, chart Classifier, start, end time.Time) ([]MonthBucket, error) {
	buckets := make(map[MonthKey]*MonthBucket)

	for _, v := range j.EntriesInRange(start, end) {
		key := MonthKey{Year: v.Date.Year(), Month: v.Date.Month()}
		for _, row := range v.Rows {
			accountType, err := chart.Classify(row.AccountCode)
			if err != nil {
				return nil, err
			}
			if accountType != model.AccountTypeRevenue && accountType != model.AccountTypeExpense {
				continue
			}

			b, ok := buckets[key]
			if !ok {
				b = &MonthBucket{Key: key, Revenue: decimal.Zero, Expenses: decimal.Zero}
				buckets[key] = b
			}
			amount := row.Amount().Abs()
			if accountType == model.AccountTypeRevenue {
				b.Revenue = b.Revenue.Add(amount)
			} else {
				b.Expenses = b.Expenses.Add(amount)
			}
		}
	}

	out := make([]MonthBucket, 0, len(buckets))
	for _, b := range buckets {
		b.Result = b.Revenue.Sub(b.Expenses)
		out = append(out, *b)
	}
	sort.Slice(out, func(a, b int) bool {
		return out[a].Key.Before(out[b].Key)
	})
	return out, nil
}
