package model

// AccountType classifies accounts in the BAS chart of accounts. It
// determines the sign convention used when a raw debit-minus-credit
// balance is presented to a human.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// Valid reports whether t is one of the five account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity,
		AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// Account represents a row in chart-of-accounts.csv: one BAS account
// code with its classification.
type Account struct {
	Code        string // 4-digit BAS code, e.g. "1930", "2610"
	Name        string
	Type        AccountType
	Group       string // expense-category label, e.g. "IT & Programvara"
	Description string
}
