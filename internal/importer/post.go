package importer

import (
	"github.com/huvudbok-dev/huvudbok/internal/model"
)

// PostParams controls how bank transactions become verifications.
type PostParams struct {
	BankAccount    string // BAS code of the bank account, e.g. "1930"
	ExpenseAccount string // counter account for money out
	RevenueAccount string // counter account for money in
}

// PostTransactions converts bank transactions into balanced two-row
// verifications: money out debits the expense counter account and
// credits the bank, money in debits the bank and credits the revenue
// counter account. Zero-amount rows are skipped. The journal's own
// validation still applies on append.
func PostTransactions(txns []model.BankTransaction, p PostParams) []model.Verification {
	var out []model.Verification
	for _, txn := range txns {
		if txn.Amount.IsZero() {
			continue
		}

		v := model.Verification{
			Date:        txn.Date,
			Description: txn.Description,
			Reference:   txn.Reference,
		}
		if txn.Amount.IsNegative() {
			amount := txn.Amount.Neg()
			v.Rows = []model.Row{
				{AccountCode: p.ExpenseAccount, Debit: amount},
				{AccountCode: p.BankAccount, Credit: amount},
			}
		} else {
			v.Rows = []model.Row{
				{AccountCode: p.BankAccount, Debit: txn.Amount},
				{AccountCode: p.RevenueAccount, Credit: txn.Amount},
			}
		}
		out = append(out, v)
	}
	return out
}
