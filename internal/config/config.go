package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/huvudbok-dev/huvudbok/internal/vat"
)

// Config represents the top-level huvudbok.yaml configuration.
type Config struct {
	Company      CompanyConfig `yaml:"company"`
	Fiscal       FiscalConfig  `yaml:"fiscal"`
	VAT          VATConfig     `yaml:"vat"`
	BankAccounts []BankAccount `yaml:"bank_accounts,omitempty"`
	Git          GitConfig     `yaml:"git"`
}

// CompanyConfig identifies the business entity.
type CompanyConfig struct {
	Name      string `yaml:"name"`
	OrgNumber string `yaml:"org_number"`
}

// FiscalConfig defines the fiscal year boundaries.
type FiscalConfig struct {
	YearStart string `yaml:"year_start"` // "MM-DD" format, e.g. "01-01"
}

// VATConfig controls the VAT declaration mapping. The code-set lists
// override the default box mapping when non-empty; the reduced-rate
// sets stay empty until 12%/6% sales are tracked on dedicated accounts.
type VATConfig struct {
	ReportingPeriod string   `yaml:"reporting_period"` // "quarterly"
	Output25        []string `yaml:"output_25,omitempty"`
	Output12        []string `yaml:"output_12,omitempty"`
	Output6         []string `yaml:"output_6,omitempty"`
	Input           []string `yaml:"input,omitempty"`
}

// CodeSets resolves the configured VAT code sets, falling back to the
// defaults for any list left empty.
func (v VATConfig) CodeSets() vat.CodeSets {
	sets := vat.DefaultCodeSets()
	if len(v.Output25) > 0 {
		sets.Output25 = v.Output25
	}
	if len(v.Output12) > 0 {
		sets.Output12 = v.Output12
	}
	if len(v.Output6) > 0 {
		sets.Output6 = v.Output6
	}
	if len(v.Input) > 0 {
		sets.Input = v.Input
	}
	return sets
}

// BankAccount maps a bank feed to a chart-of-accounts code.
type BankAccount struct {
	Name        string `yaml:"name"`
	LastFour    string `yaml:"last_four"`
	AccountCode string `yaml:"account_code"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a huvudbok.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for new books.
func Default(companyName, orgNumber string) *Config {
	return &Config{
		Company: CompanyConfig{
			Name:      companyName,
			OrgNumber: orgNumber,
		},
		Fiscal: FiscalConfig{
			YearStart: "01-01",
		},
		VAT: VATConfig{
			ReportingPeriod: "quarterly",
		},
		BankAccounts: []BankAccount{
			{Name: "Företagskonto", AccountCode: "1930"},
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Huvudbok",
			AuthorEmail: "bok@huvudbok.dev",
		},
	}
}
