// Package ledger derives account balances and period totals from the
// journal. Everything here is a pure function of the journal snapshot
// at query time; nothing is stored or mutated.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/huvudbok-dev/huvudbok/internal/accounts"
	"github.com/huvudbok-dev/huvudbok/internal/model"
)

// Range restricts an aggregation to [Start, End]. A zero Start or End
// leaves that side open.
type Range struct {
	Start time.Time
	End   time.Time
}

// Posting is one journal row's contribution to an account balance,
// carrying the signed amount (debit minus credit) and originating date.
type Posting struct {
	VerificationID string
	Date           time.Time
	Description    string
	Amount         decimal.Decimal
}

// AccountBalance is the derived balance of one account. Balance is the
// canonical debit-minus-credit sum; presentation sign conversion is a
// separate step.
type AccountBalance struct {
	AccountCode  string
	Balance      decimal.Decimal
	Transactions []Posting
}

// Totals are the human-facing positive magnitudes the ratio calculator
// consumes. Cash covers the 19xx accounts, Receivables the 15xx ones.
type Totals struct {
	Assets      decimal.Decimal
	Liabilities decimal.Decimal
	Equity      decimal.Decimal
	Revenue     decimal.Decimal
	Expenses    decimal.Decimal
	NetIncome   decimal.Decimal
	Cash        decimal.Decimal
	Receivables decimal.Decimal
}

// Reader is the journal read surface the aggregator needs.
type Reader interface {
	EntriesInRange(start, end time.Time) []model.Verification
	EntriesForAccount(code string, start, end time.Time) []model.Verification
}

// Chart is the registry surface the aggregator needs.
type Chart interface {
	All() []model.Account
	Exists(code string) bool
	Classify(code string) (model.AccountType, error)
	CashCodes() []string
	ReceivableCodes() []string
}

// Aggregator computes balances over an injected journal and chart.
type Aggregator struct {
	journal Reader
	chart   Chart
}

// New creates an Aggregator.
func New(journal Reader, chart Chart) *Aggregator {
	return &Aggregator{journal: journal, chart: chart}
}

// Balance sums debit minus credit over the rows referencing code within
// the range. Zero activity yields a zero balance, not an error; an
// unregistered code yields *accounts.UnknownAccountError.
func (a *Aggregator) Balance(code string, r Range) (AccountBalance, error) {
	if !a.chart.Exists(code) {
		return AccountBalance{}, &accounts.UnknownAccountError{Code: code}
	}

	bal := AccountBalance{AccountCode: code, Balance: decimal.Zero}
	for _, v := range a.journal.EntriesForAccount(code, r.Start, r.End) {
		for _, row := range v.Rows {
			if row.AccountCode != code {
				continue
			}
			amount := row.Amount()
			bal.Balance = bal.Balance.Add(amount)
			bal.Transactions = append(bal.Transactions, Posting{
				VerificationID: v.ID,
				Date:           v.Date,
				Description:    v.Description,
				Amount:         amount,
			})
		}
	}
	return bal, nil
}

// AllBalances returns a balance for every registered account, including
// zero-valued balances for accounts with no activity in the range.
func (a *Aggregator) AllBalances(r Range) map[string]AccountBalance {
	out := make(map[string]AccountBalance, len(a.chart.All()))
	for _, acct := range a.chart.All() {
		out[acct.Code] = AccountBalance{AccountCode: acct.Code, Balance: decimal.Zero}
	}

	for _, v := range a.journal.EntriesInRange(r.Start, r.End) {
		for _, row := range v.Rows {
			bal, ok := out[row.AccountCode]
			if !ok {
				// Rows are validated against the chart on append, so
				// every code resolves here.
				continue
			}
			amount := row.Amount()
			bal.Balance = bal.Balance.Add(amount)
			bal.Transactions = append(bal.Transactions, Posting{
				VerificationID: v.ID,
				Date:           v.Date,
				Description:    v.Description,
				Amount:         amount,
			})
			out[row.AccountCode] = bal
		}
	}
	return out
}

// Presented converts a canonical balance to its human-facing sign:
// asset and expense accounts keep debit minus credit; liability, equity
// and revenue accounts are negated.
func (a *Aggregator) Presented(bal AccountBalance) (decimal.Decimal, error) {
	accountType, err := a.chart.Classify(bal.AccountCode)
	if err != nil {
		return decimal.Zero, err
	}
	switch accountType {
	case model.AccountTypeLiability, model.AccountTypeEquity, model.AccountTypeRevenue:
		return bal.Balance.Neg(), nil
	default:
		return bal.Balance, nil
	}
}

// Totals aggregates presented balances into the totals the ratio
// calculator consumes.
func (a *Aggregator) Totals(r Range) (Totals, error) {
	cash := toSet(a.chart.CashCodes())
	receivables := toSet(a.chart.ReceivableCodes())

	t := Totals{
		Assets:      decimal.Zero,
		Liabilities: decimal.Zero,
		Equity:      decimal.Zero,
		Revenue:     decimal.Zero,
		Expenses:    decimal.Zero,
		Cash:        decimal.Zero,
		Receivables: decimal.Zero,
	}

	for code, bal := range a.AllBalances(r) {
		accountType, err := a.chart.Classify(code)
		if err != nil {
			return Totals{}, err
		}
		presented, err := a.Presented(bal)
		if err != nil {
			return Totals{}, err
		}

		switch accountType {
		case model.AccountTypeAsset:
			t.Assets = t.Assets.Add(presented)
			if cash[code] {
				t.Cash = t.Cash.Add(presented)
			}
			if receivables[code] {
				t.Receivables = t.Receivables.Add(presented)
			}
		case model.AccountTypeLiability:
			t.Liabilities = t.Liabilities.Add(presented)
		case model.AccountTypeEquity:
			t.Equity = t.Equity.Add(presented)
		case model.AccountTypeRevenue:
			t.Revenue = t.Revenue.Add(presented)
		case model.AccountTypeExpense:
			t.Expenses = t.Expenses.Add(presented)
		}
	}

	t.NetIncome = t.Revenue.Sub(t.Expenses)
	return t, nil
}

func toSet(codes []string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	return set
}
