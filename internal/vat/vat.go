// Package vat generates Swedish quarterly VAT declarations ("ruta"
// boxes) from journal activity.
package vat

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/huvudbok-dev/huvudbok/internal/model"
)

// Status is the lifecycle state of a VAT report. Submitted is terminal
// and set externally when the user files; upcoming/overdue is a pure
// function of the clock at query time.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusSubmitted Status = "submitted"
	StatusOverdue   Status = "overdue"
)

// Report is the derived VAT declaration. The JSON field names are a
// compatibility contract with the report-rendering UI.
type Report struct {
	Period  string `json:"period"`
	DueDate string `json:"dueDate"` // YYYY-MM-DD
	Status  Status `json:"status"`

	Ruta05 decimal.Decimal `json:"ruta05"` // taxable sales base, 25% rate
	Ruta10 decimal.Decimal `json:"ruta10"` // output VAT 25%
	Ruta48 decimal.Decimal `json:"ruta48"` // input VAT
	Ruta49 decimal.Decimal `json:"ruta49"` // net VAT payable/refundable

	// Reduced-rate boxes. Zero unless the code sets for the 12% and 6%
	// rates are configured.
	Ruta06 decimal.Decimal `json:"ruta06"` // sales base 12%
	Ruta11 decimal.Decimal `json:"ruta11"` // output VAT 12%
	Ruta07 decimal.Decimal `json:"ruta07"` // sales base 6%
	Ruta12 decimal.Decimal `json:"ruta12"` // output VAT 6%

	SalesVat decimal.Decimal `json:"salesVat"` // = ruta10
	InputVat decimal.Decimal `json:"inputVat"` // = ruta48
	NetVat   decimal.Decimal `json:"netVat"`   // = salesVat - inputVat, == ruta49
}

// CodeSets maps BAS account codes to declaration boxes. Output accounts
// accumulate credit minus debit, input accounts debit minus credit.
type CodeSets struct {
	Output25 []string // summed into ruta10
	Output12 []string // summed into ruta11
	Output6  []string // summed into ruta12
	Input    []string // summed into ruta48
}

// DefaultCodeSets reflects the reference declaration mapping: the 261x
// range plus 2620 and 2630 feed the 25% output box, 2640/2641 the input
// box. The reduced-rate sets start empty; bookkeeping that tracks 12%
// or 6% sales on dedicated accounts configures them explicitly.
func DefaultCodeSets() CodeSets {
	return CodeSets{
		Output25: []string{"2610", "2611", "2612", "2613", "2614", "2615", "2616", "2617", "2618", "2619", "2620", "2630"},
		Input:    []string{"2640", "2641"},
	}
}

// Journal is the read surface the generator needs.
type Journal interface {
	EntriesInRange(start, end time.Time) []model.Verification
}

// Generator derives VAT reports from a journal.
type Generator struct {
	journal  Journal
	output25 map[string]bool
	output12 map[string]bool
	output6  map[string]bool
	input    map[string]bool
}

// NewGenerator creates a Generator using the given code sets.
func NewGenerator(journal Journal, codes CodeSets) *Generator {
	return &Generator{
		journal:  journal,
		output25: toSet(codes.Output25),
		output12: toSet(codes.Output12),
		output6:  toSet(codes.Output6),
		input:    toSet(codes.Input),
	}
}

var (
	four    = decimal.NewFromInt(4)
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
	six     = decimal.NewFromInt(6)
)

// Generate builds the declaration for a period string like "Q3 2024".
// A quarter with no journal activity yields an all-zero report, not an
// error; a malformed period yields *InvalidPeriodError. The status is
// evaluated against today: submitted wins, otherwise overdue once today
// has passed the statutory deadline.
//
// The 25% sales base (ruta05) is reconstructed as ruta10 * 4, the
// inverse of the 25% rate. This assumes all turnover is taxed at 25%;
// reduced-rate sales belong in the configured 12%/6% code sets.
func (g *Generator) Generate(periodStr string, today time.Time, submitted bool) (Report, error) {
	period, err := ParsePeriod(periodStr)
	if err != nil {
		return Report{}, err
	}

	start, end := period.Range()
	ruta10 := decimal.Zero
	ruta11 := decimal.Zero
	ruta12 := decimal.Zero
	ruta48 := decimal.Zero

	for _, v := range g.journal.EntriesInRange(start, end) {
		for _, row := range v.Rows {
			switch {
			case g.output25[row.AccountCode]:
				ruta10 = ruta10.Add(row.Credit.Sub(row.Debit))
			case g.output12[row.AccountCode]:
				ruta11 = ruta11.Add(row.Credit.Sub(row.Debit))
			case g.output6[row.AccountCode]:
				ruta12 = ruta12.Add(row.Credit.Sub(row.Debit))
			case g.input[row.AccountCode]:
				ruta48 = ruta48.Add(row.Debit.Sub(row.Credit))
			}
		}
	}

	// salesVat covers all output boxes so netVat == salesVat - inputVat
	// holds whether or not reduced rates are configured. With the
	// default code sets it equals ruta10.
	salesVat := ruta10.Add(ruta11).Add(ruta12)
	netVat := salesVat.Sub(ruta48)

	status := StatusUpcoming
	if submitted {
		status = StatusSubmitted
	} else if today.After(period.Deadline()) {
		status = StatusOverdue
	}

	return Report{
		Period:   period.String(),
		DueDate:  period.Deadline().Format("2006-01-02"),
		Status:   status,
		Ruta05:   ruta10.Mul(four),
		Ruta10:   ruta10,
		Ruta48:   ruta48,
		Ruta49:   netVat,
		Ruta06:   inverseBase(ruta11, twelve),
		Ruta11:   ruta11,
		Ruta07:   inverseBase(ruta12, six),
		Ruta12:   ruta12,
		SalesVat: salesVat,
		InputVat: ruta48,
		NetVat:   netVat,
	}, nil
}

// inverseBase reconstructs a sales base from its VAT amount and rate.
func inverseBase(vatAmount, rate decimal.Decimal) decimal.Decimal {
	if vatAmount.IsZero() {
		return decimal.Zero
	}
	return vatAmount.Mul(hundred).Div(rate).Round(2)
}

func toSet(codes []string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[strings.TrimSpace(c)] = true
	}
	return set
}
