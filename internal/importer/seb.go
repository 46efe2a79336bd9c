package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/huvudbok-dev/huvudbok/internal/model"
)

// SEBParser parses SEB privat/företag CSV exports: semicolon separated,
// Swedish decimal comma, newest row first.
type SEBParser struct{}

const (
	sebDateFormat = "2006-01-02"
	sebNumFields  = 6
	sebColDate    = 0
	sebColRef     = 2
	sebColDesc    = 3
	sebColAmount  = 4
)

// Format returns the parser name.
func (p *SEBParser) Format() string { return "seb" }

// Parse reads an SEB CSV and returns BankTransactions in file order.
func (p *SEBParser) Parse(r io.Reader) ([]model.BankTransaction, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = sebNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading SEB CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.BankTransaction
	for i, rec := range records[1:] {
		txn, err := parseSEBRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseSEBRow(rec []string) (model.BankTransaction, error) {
	date, err := time.Parse(sebDateFormat, strings.TrimSpace(rec[sebColDate]))
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing date %q: %w", rec[sebColDate], err)
	}

	amount, err := parseSwedishAmount(rec[sebColAmount])
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing amount %q: %w", rec[sebColAmount], err)
	}

	return model.BankTransaction{
		Date:        date,
		Description: strings.TrimSpace(rec[sebColDesc]),
		Amount:      amount,
		Reference:   strings.TrimSpace(rec[sebColRef]),
	}, nil
}

// parseSwedishAmount handles "1 234,56" style amounts: space (or
// non-breaking space) thousand separators and a decimal comma.
func parseSwedishAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer(" ", "", " ", "", ",", ".").Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount")
	}
	return decimal.NewFromString(cleaned)
}
