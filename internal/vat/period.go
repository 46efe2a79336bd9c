package vat

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// InvalidPeriodError reports a period string that does not parse as
// "Qn YYYY". Reporting surfaces must refuse to render a report for an
// unparseable period rather than defaulting to Q1.
type InvalidPeriodError struct {
	Input string
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("invalid VAT period %q: want \"Qn YYYY\"", e.Input)
}

// Period is one statutory reporting quarter.
type Period struct {
	Quarter int // 1..4
	Year    int
}

// ParsePeriod parses a period string like "Q3 2024". The quarter letter
// is case-insensitive and surrounding whitespace is ignored.
func ParsePeriod(s string) (Period, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return Period{}, &InvalidPeriodError{Input: s}
	}

	q := strings.ToUpper(fields[0])
	if len(q) != 2 || q[0] != 'Q' || q[1] < '1' || q[1] > '4' {
		return Period{}, &InvalidPeriodError{Input: s}
	}
	quarter := int(q[1] - '0')

	year, err := strconv.Atoi(fields[1])
	if err != nil || year < 1000 || year > 9999 {
		return Period{}, &InvalidPeriodError{Input: s}
	}

	return Period{Quarter: quarter, Year: year}, nil
}

// String returns the canonical "Qn YYYY" form.
func (p Period) String() string {
	return fmt.Sprintf("Q%d %d", p.Quarter, p.Year)
}

// Range returns the first and last calendar day of the quarter.
func (p Period) Range() (start, end time.Time) {
	firstMonth := time.Month(3*(p.Quarter-1) + 1)
	start = time.Date(p.Year, firstMonth, 1, 0, 0, 0, 0, time.UTC)
	// Day 0 of the month after the quarter normalizes to its last day.
	end = time.Date(p.Year, firstMonth+3, 0, 0, 0, 0, 0, time.UTC)
	return start, end
}

// Deadline returns the statutory submission deadline for the quarter.
// The dates are fixed by Swedish tax law, not derived from a formula:
// Q1 -> May 12, Q2 -> Aug 17, Q3 -> Nov 12 of the same year,
// Q4 -> Feb 12 of the following year.
func (p Period) Deadline() time.Time {
	switch p.Quarter {
	case 1:
		return time.Date(p.Year, time.May, 12, 0, 0, 0, 0, time.UTC)
	case 2:
		return time.Date(p.Year, time.August, 17, 0, 0, 0, 0, time.UTC)
	case 3:
		return time.Date(p.Year, time.November, 12, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(p.Year+1, time.February, 12, 0, 0, 0, 0, time.UTC)
	}
}
