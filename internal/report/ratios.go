// Package report derives financial ratios and monthly trend series from
// aggregated balances and journal activity.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/huvudbok-dev/huvudbok/internal/ledger"
)

// Ratio is a financial ratio that may be undefined. A zero denominator
// yields Defined=false; callers must render that distinctly from 0%,
// since zero reads as an insolvent- or unprofitable-looking signal.
type Ratio struct {
	Value   decimal.Decimal
	Defined bool
}

// DefinedRatio wraps a computed value.
func DefinedRatio(v decimal.Decimal) Ratio {
	return Ratio{Value: v, Defined: true}
}

// UndefinedRatio is the sentinel for a zero-denominator ratio.
func UndefinedRatio() Ratio {
	return Ratio{}
}

// String renders the ratio for display.
func (r Ratio) String() string {
	if !r.Defined {
		return "ej definierad"
	}
	return r.Value.StringFixed(1)
}

// Ratios are the four key figures computed from aggregated totals.
// Degenerate is set when solidity was computed against assets forced to
// 1 to avoid dividing by zero: the number is a documented placeholder,
// not a financial answer.
type Ratios struct {
	Solidity     Ratio // soliditet: equity / assets * 100
	Liquidity    Ratio // kassalikviditet: (cash + receivables) / liabilities * 100
	DebtToEquity Ratio // liabilities / equity
	ProfitMargin Ratio // net income / revenue * 100
	Degenerate   bool
}

var ratioHundred = decimal.NewFromInt(100)

// CalcRatios derives the key figures from already-aggregated totals.
// It never re-traverses the journal.
func CalcRatios(t ledger.Totals) Ratios {
	var r Ratios

	assets := t.Assets
	if assets.IsZero() {
		assets = decimal.NewFromInt(1)
		r.Degenerate = true
	}
	r.Solidity = DefinedRatio(t.Equity.Div(assets).Mul(ratioHundred))

	if t.Liabilities.IsZero() {
		r.Liquidity = UndefinedRatio()
	} else {
		liquid := t.Cash.Add(t.Receivables)
		r.Liquidity = DefinedRatio(liquid.Div(t.Liabilities).Mul(ratioHundred))
	}

	if t.Equity.IsZero() {
		r.DebtToEquity = UndefinedRatio()
	} else {
		r.DebtToEquity = DefinedRatio(t.Liabilities.Div(t.Equity))
	}

	if t.Revenue.IsZero() {
		r.ProfitMargin = UndefinedRatio()
	} else {
		r.ProfitMargin = DefinedRatio(t.NetIncome.Div(t.Revenue).Mul(ratioHundred))
	}

	return r
}
