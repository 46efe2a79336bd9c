package commands_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedBooks posts a small Q3 2024 ledger: a 10 000 kr sale and the
// 2 500 kr output VAT on it, both settled to the bank account.
func seedBooks(t *testing.T) string {
	t.Helper()
	dir := initBooks(t)

	_, err := runHuvudbok(t, "add", "--dir", dir,
		"--date", "2024-07-05", "--desc", "Konsultarvode",
		"--debit", "1930", "--credit", "3001", "--amount", "10000")
	require.NoError(t, err)

	_, err = runHuvudbok(t, "add", "--dir", dir,
		"--date", "2024-08-15", "--desc", "Utgående moms",
		"--debit", "1930", "--credit", "2610", "--amount", "2500")
	require.NoError(t, err)

	return dir
}

func TestReportBalances(t *testing.T) {
	dir := seedBooks(t)

	out, err := runHuvudbok(t, "report", "balances", "--dir", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "1930")
	assert.Contains(t, out, "12500.00")
	assert.Contains(t, out, "3001")
	assert.Contains(t, out, "10000.00")
	// Accounts with no activity stay out of the listing.
	assert.NotContains(t, out, "2081")
}

func TestReportBalances_DateRange(t *testing.T) {
	dir := seedBooks(t)

	out, err := runHuvudbok(t, "report", "balances", "--dir", dir,
		"--from", "2024-08-01", "--to", "2024-08-31")
	require.NoError(t, err)

	assert.Contains(t, out, "2610")
	assert.NotContains(t, out, "3001")
}

func TestReportRatios(t *testing.T) {
	dir := seedBooks(t)

	out, err := runHuvudbok(t, "report", "ratios", "--dir", dir)
	require.NoError(t, err)

	// Revenue 10 000, no expenses: full margin.
	assert.Contains(t, out, "Vinstmarginal:   100.0 %")
	// Cash 12 500 against the 2 500 VAT liability.
	assert.Contains(t, out, "Kassalikviditet: 500.0 %")
	// No equity is booked, so the gearing ratio has no denominator.
	assert.Contains(t, out, "Skuldsättning:   ej definierad")
}

func TestReportTrend(t *testing.T) {
	dir := seedBooks(t)

	out, err := runHuvudbok(t, "report", "trend", "--dir", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "juli 2024")
	assert.Contains(t, out, "10000.00")
}

func TestReportVat(t *testing.T) {
	dir := seedBooks(t)

	out, err := runHuvudbok(t, "report", "vat", "--dir", dir,
		"--period", "Q3 2024", "--submitted")
	require.NoError(t, err)

	var rep map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rep))

	assert.Equal(t, "Q3 2024", rep["period"])
	assert.Equal(t, "2024-11-12", rep["dueDate"])
	assert.Equal(t, "submitted", rep["status"])
	assert.Equal(t, "2500", rep["ruta10"])
	assert.Equal(t, "10000", rep["ruta05"])
	assert.Equal(t, "0", rep["ruta48"])
	assert.Equal(t, "2500", rep["ruta49"])
	assert.Equal(t, "2500", rep["netVat"])
}

func TestReportVat_RequiresPeriod(t *testing.T) {
	dir := initBooks(t)

	_, err := runHuvudbok(t, "report", "vat", "--dir", dir)
	require.Error(t, err)
}

func TestReportVat_BadPeriod(t *testing.T) {
	dir := initBooks(t)

	_, err := runHuvudbok(t, "report", "vat", "--dir", dir, "--period", "kvartal tre")
	require.Error(t, err)
}
