package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/huvudbok-dev/huvudbok/internal/model"
)

// Header is the CSV header for journal.csv. One CSV row per
// verification row; verification-level fields repeat on each row.
const Header = "verification_id,date,account_code,description,debit,credit,counterparty,reference"

const (
	numFields   = 8
	dateFormat  = "2006-01-02"
	colVerID    = 0
	colDate     = 1
	colAcctCode = 2
	colDesc     = 3
	colDebit    = 4
	colCredit   = 5
	colCparty   = 6
	colRef      = 7
)

// ReadVerifications reads a journal.csv, grouping CSV rows back into
// verifications by ID in first-seen order.
func ReadVerifications(r io.Reader) ([]model.Verification, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	byID := make(map[string]int)
	var out []model.Verification
	for i, rec := range records[1:] {
		verID, row, meta, err := unmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		idx, seen := byID[verID]
		if !seen {
			idx = len(out)
			byID[verID] = idx
			out = append(out, model.Verification{
				ID:           verID,
				Date:         meta.date,
				Description:  meta.description,
				Counterparty: meta.counterparty,
				Reference:    meta.reference,
			})
		}
		out[idx].Rows = append(out[idx].Rows, row)
	}
	return out, nil
}

// WriteVerifications writes verifications to a journal.csv writer,
// including the header.
func WriteVerifications(w io.Writer, vs []model.Verification) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, v := range vs {
		if err := writeRows(cw, v); err != nil {
			return err
		}
	}
	return cw.Error()
}

// AppendVerification appends one verification's rows to an existing
// journal.csv writer (no header).
func AppendVerification(w io.Writer, v model.Verification) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := writeRows(cw, v); err != nil {
		return err
	}
	return cw.Error()
}

func writeRows(cw *csv.Writer, v model.Verification) error {
	for i, r := range v.Rows {
		if err := cw.Write(marshalRow(v, r)); err != nil {
			return fmt.Errorf("writing verification %s row %d: %w", v.ID, i, err)
		}
	}
	return nil
}

func marshalRow(v model.Verification, r model.Row) []string {
	row := make([]string, numFields)
	row[colVerID] = v.ID
	row[colDate] = v.Date.Format(dateFormat)
	row[colAcctCode] = r.AccountCode
	row[colDesc] = v.Description

	if !r.Debit.IsZero() {
		row[colDebit] = r.Debit.StringFixed(2)
	}
	if !r.Credit.IsZero() {
		row[colCredit] = r.Credit.StringFixed(2)
	}

	row[colCparty] = v.Counterparty
	row[colRef] = v.Reference
	return row
}

type rowMeta struct {
	date         time.Time
	description  string
	counterparty string
	reference    string
}

func unmarshalRow(record []string) (string, model.Row, rowMeta, error) {
	if len(record) != numFields {
		return "", model.Row{}, rowMeta{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return "", model.Row{}, rowMeta{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	var debit, credit decimal.Decimal
	if record[colDebit] != "" {
		debit, err = decimal.NewFromString(record[colDebit])
		if err != nil {
			return "", model.Row{}, rowMeta{}, fmt.Errorf("parsing debit %q: %w", record[colDebit], err)
		}
	}
	if record[colCredit] != "" {
		credit, err = decimal.NewFromString(record[colCredit])
		if err != nil {
			return "", model.Row{}, rowMeta{}, fmt.Errorf("parsing credit %q: %w", record[colCredit], err)
		}
	}

	row := model.Row{
		AccountCode: record[colAcctCode],
		Debit:       debit,
		Credit:      credit,
	}
	meta := rowMeta{
		date:         date,
		description:  record[colDesc],
		counterparty: record[colCparty],
		reference:    record[colRef],
	}
	return record[colVerID], row, meta, nil
}
