package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Testbolaget AB", "556677-8899")
	cfg.BankAccounts = []BankAccount{
		{Name: "Företagskonto", LastFour: "1234", AccountCode: "1930"},
	}
	cfg.VAT.Output12 = []string{"2621"}

	path := filepath.Join(t.TempDir(), "huvudbok.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Company.Name, got.Company.Name)
	assert.Equal(t, cfg.Company.OrgNumber, got.Company.OrgNumber)
	assert.Equal(t, cfg.Fiscal.YearStart, got.Fiscal.YearStart)
	assert.Equal(t, cfg.VAT.ReportingPeriod, got.VAT.ReportingPeriod)
	assert.Equal(t, []string{"2621"}, got.VAT.Output12)
	assert.Equal(t, cfg.Git.AutoCommit, got.Git.AutoCommit)
	require.Len(t, got.BankAccounts, 1)
	assert.Equal(t, "1930", got.BankAccounts[0].AccountCode)
}

func TestDefaults(t *testing.T) {
	cfg := Default("Mitt Bolag AB", "556000-0000")

	assert.Equal(t, "Mitt Bolag AB", cfg.Company.Name)
	assert.Equal(t, "556000-0000", cfg.Company.OrgNumber)
	assert.Equal(t, "01-01", cfg.Fiscal.YearStart)
	assert.Equal(t, "quarterly", cfg.VAT.ReportingPeriod)
	assert.True(t, cfg.Git.AutoCommit)
	require.Len(t, cfg.BankAccounts, 1)
	assert.Equal(t, "1930", cfg.BankAccounts[0].AccountCode)
}

func TestVATCodeSets(t *testing.T) {
	var v VATConfig
	sets := v.CodeSets()
	assert.Contains(t, sets.Output25, "2610")
	assert.Contains(t, sets.Output25, "2620")
	assert.Contains(t, sets.Output25, "2630")
	assert.Contains(t, sets.Input, "2640")
	assert.Empty(t, sets.Output12)
	assert.Empty(t, sets.Output6)

	v.Output12 = []string{"2621"}
	v.Input = []string{"2645"}
	sets = v.CodeSets()
	assert.Equal(t, []string{"2621"}, sets.Output12)
	assert.Equal(t, []string{"2645"}, sets.Input)
	assert.Contains(t, sets.Output25, "2610", "unset lists keep their defaults")
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Testbolaget AB", "556677-8899")
	path := filepath.Join(t.TempDir(), "huvudbok.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Testbolaget AB")
	assert.Contains(t, contents, "org_number: 556677-8899")
	assert.Contains(t, contents, "year_start: 01-01")
	assert.Contains(t, contents, "reporting_period: quarterly")
	assert.Contains(t, contents, "auto_commit: true")
}
