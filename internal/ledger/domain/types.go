package domain

// AccountType is the top-level chart-of-accounts grouping.
type AccountType string

const (
	Assets      AccountType = "Assets"
	Liabilities AccountType = "Liabilities"
	Equity      AccountType = "Equity"
	Revenue     AccountType = "Revenue"
	Expense     AccountType = "Expense"
)

// SubAccountType narrows an AccountType.
type SubAccountType string

const (
	CurrentAssets      SubAccountType = "Current Assets"
	FixedAssets        SubAccountType = "Fixed Assets"
	CurrentLiabilities SubAccountType = "Current Liabilities"
	FixedLiabilities   SubAccountType = "Fixed Liabilities"
	EquitySub          SubAccountType = "Equity"
	Expenses           SubAccountType = "Expenses"
	RevenueSub         SubAccountType = "Revenue"
	ContraRevenue      SubAccountType = "Contra Revenue"
)

// AllowedSubAccountTypes is the single source of truth for which sub-account
// types are valid under each account type. Create-account validation and the
// option list served to the UI both read from this table.
var AllowedSubAccountTypes = map[AccountType][]SubAccountType{
	Assets:      {CurrentAssets, FixedAssets},
	Liabilities: {CurrentLiabilities, FixedLiabilities},
	Equity:      {EquitySub},
	Revenue:     {RevenueSub, ContraRevenue},
	Expense:     {Expenses},
}

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	_, ok := AllowedSubAccountTypes[t]
	return ok
}

// Allows reports whether s is a permitted sub-account type under t.
func (t AccountType) Allows(s SubAccountType) bool {
	for _, allowed := range AllowedSubAccountTypes[t] {
		if allowed == s {
			return true
		}
	}
	return false
}
