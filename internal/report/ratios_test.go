package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huvudbok-dev/huvudbok/internal/ledger"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCalcRatios(t *testing.T) {
	totals := ledger.Totals{
		Assets:      dec("200000"),
		Liabilities: dec("50000"),
		Equity:      dec("100000"),
		Revenue:     dec("80000"),
		Expenses:    dec("60000"),
		NetIncome:   dec("20000"),
		Cash:        dec("40000"),
		Receivables: dec("10000"),
	}

	r := CalcRatios(totals)
	assert.False(t, r.Degenerate)

	require.True(t, r.Solidity.Defined)
	assert.Equal(t, "50.0", r.Solidity.Value.StringFixed(1))

	require.True(t, r.Liquidity.Defined)
	assert.Equal(t, "100.0", r.Liquidity.Value.StringFixed(1))

	require.True(t, r.DebtToEquity.Defined)
	assert.Equal(t, "0.50", r.DebtToEquity.Value.StringFixed(2))

	require.True(t, r.ProfitMargin.Defined)
	assert.Equal(t, "25.0", r.ProfitMargin.Value.StringFixed(1))
}

func TestCalcRatios_ZeroLiabilitiesIsUndefinedNotZero(t *testing.T) {
	totals := ledger.Totals{
		Assets:      dec("100000"),
		Liabilities: decimal.Zero,
		Equity:      dec("100000"),
		Revenue:     dec("10000"),
		NetIncome:   dec("10000"),
		Cash:        dec("50000"),
	}

	r := CalcRatios(totals)
	assert.False(t, r.Liquidity.Defined, "zero liabilities must yield a sentinel, not 0")
	assert.True(t, r.Solidity.Defined)
	assert.True(t, r.DebtToEquity.Defined)
	assert.True(t, r.DebtToEquity.Value.IsZero())
}

func TestCalcRatios_ZeroEquity(t *testing.T) {
	totals := ledger.Totals{
		Assets:      dec("10000"),
		Liabilities: dec("10000"),
		Revenue:     dec("5000"),
		NetIncome:   dec("1000"),
	}

	r := CalcRatios(totals)
	assert.False(t, r.DebtToEquity.Defined)
	require.True(t, r.Solidity.Defined)
	assert.True(t, r.Solidity.Value.IsZero())
}

func TestCalcRatios_ZeroRevenue(t *testing.T) {
	totals := ledger.Totals{
		Assets: dec("10000"),
		Equity: dec("10000"),
	}

	r := CalcRatios(totals)
	assert.False(t, r.ProfitMargin.Defined)
}

func TestCalcRatios_ZeroAssetsIsDegenerate(t *testing.T) {
	totals := ledger.Totals{
		Equity:  dec("5000"),
		Revenue: dec("1000"),
	}

	r := CalcRatios(totals)
	assert.True(t, r.Degenerate, "assets forced to 1 must be flagged")
	require.True(t, r.Solidity.Defined)
	assert.Equal(t, "500000.0", r.Solidity.Value.StringFixed(1))
}

func TestRatio_String(t *testing.T) {
	assert.Equal(t, "ej definierad", UndefinedRatio().String())
	assert.Equal(t, "42.5", DefinedRatio(dec("42.5")).String())
}
