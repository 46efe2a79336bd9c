package accounts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huvudbok-dev/huvudbok/internal/model"
)

// UnknownAccountError reports a reference to a BAS code that is not in
// the chart of accounts. Unknown codes are always an error, never a
// silent default: a silently defaulted classification corrupts every
// downstream balance and ratio.
type UnknownAccountError struct {
	Code string
}

func (e *UnknownAccountError) Error() string {
	return fmt.Sprintf("unknown account code %q", e.Code)
}

// Registry provides in-memory lookup and classification over the chart
// of accounts.
type Registry struct {
	accounts []model.Account
	byCode   map[string]model.Account
}

// NewRegistry creates a Registry from a slice of accounts.
func NewRegistry(accounts []model.Account) *Registry {
	byCode := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byCode[a.Code] = a
	}
	return &Registry{accounts: accounts, byCode: byCode}
}

// Load reads chart-of-accounts.csv from a books root and returns a Registry.
func Load(booksRoot string) (*Registry, error) {
	path := filepath.Join(booksRoot, "accounts", "chart-of-accounts.csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewRegistry(accts), nil
}

// All returns all accounts.
func (r *Registry) All() []model.Account {
	return r.accounts
}

// Get returns an account by code.
func (r *Registry) Get(code string) (model.Account, bool) {
	a, ok := r.byCode[code]
	return a, ok
}

// Exists reports whether a code is in the chart.
func (r *Registry) Exists(code string) bool {
	_, ok := r.byCode[code]
	return ok
}

// Classify returns the account type for a registered code. The chart
// entry wins when it carries an explicit type; otherwise the leading
// BAS digit decides (1=asset, 2=liability, 3=revenue, 4-8=expense).
// An unregistered code yields *UnknownAccountError.
func (r *Registry) Classify(code string) (model.AccountType, error) {
	a, ok := r.byCode[code]
	if !ok {
		return "", &UnknownAccountError{Code: code}
	}
	if a.Type.Valid() {
		return a.Type, nil
	}
	if t, ok := prefixType(code); ok {
		return t, nil
	}
	return "", fmt.Errorf("account %q has no classification", code)
}

// Group returns the classification label for a registered code.
func (r *Registry) Group(code string) (string, error) {
	a, ok := r.byCode[code]
	if !ok {
		return "", &UnknownAccountError{Code: code}
	}
	return a.Group, nil
}

// ByType returns all accounts of the given type.
func (r *Registry) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range r.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}

// CashCodes returns the registered liquid-asset codes (BAS 19xx).
func (r *Registry) CashCodes() []string {
	return r.codesWithPrefix("19")
}

// ReceivableCodes returns the registered receivable codes (BAS 15xx).
func (r *Registry) ReceivableCodes() []string {
	return r.codesWithPrefix("15")
}

func (r *Registry) codesWithPrefix(prefix string) []string {
	var codes []string
	for _, a := range r.accounts {
		if strings.HasPrefix(a.Code, prefix) {
			codes = append(codes, a.Code)
		}
	}
	return codes
}

// prefixType maps a leading BAS digit to an account type. The 20xx
// range is equity, the rest of 2xxx is liabilities.
func prefixType(code string) (model.AccountType, bool) {
	if code == "" {
		return "", false
	}
	if strings.HasPrefix(code, "20") {
		return model.AccountTypeEquity, true
	}
	switch code[0] {
	case '1':
		return model.AccountTypeAsset, true
	case '2':
		return model.AccountTypeLiability, true
	case '3':
		return model.AccountTypeRevenue, true
	case '4', '5', '6', '7', '8':
		return model.AccountTypeExpense, true
	}
	return "", false
}

// Save writes the chart of accounts to accounts/chart-of-accounts.csv.
func (r *Registry) Save(booksRoot string) error {
	dir := filepath.Join(booksRoot, "accounts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	path := filepath.Join(dir, "chart-of-accounts.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, r.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}
