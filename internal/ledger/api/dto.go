package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/millbooks/backend/internal/ledger/domain"
)

// CreateAccountReq is the create-account request body. Field-level presence
// checks live in the service so the client gets the established messages.
type CreateAccountReq struct {
	AccountType    string `json:"accountType"`
	SubAccountType string `json:"subAccountType"`
	AccountName    string `json:"accountName"`
}

// CreateJournalEntryReq is the journal entry request body.
type CreateJournalEntryReq struct {
	Description   string           `json:"description"`
	Comments      string           `json:"comments"`
	DebitAccount  string           `json:"debitAccount"`
	DebitAmount   float64          `json:"debitAmount"`
	CreditEntries []CreditEntryReq `json:"creditEntries"`
}

// CreditEntryReq is one credit leg of a journal entry request.
type CreditEntryReq struct {
	Account string  `json:"account"`
	Amount  float64 `json:"amount"`
}

// AccountRefResp is an account reference resolved for display.
type AccountRefResp struct {
	ID          string `json:"id"`
	AccountName string `json:"accountName"`
	AccountType string `json:"accountType"`
}

// CreditEntryResp is one resolved credit leg.
type CreditEntryResp struct {
	Account *AccountRefResp `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
}

// JournalEntryResp is a journal entry with account references resolved to
// display name and type.
type JournalEntryResp struct {
	ID            string            `json:"id"`
	Description   string            `json:"description"`
	Comments      string            `json:"comments"`
	DebitAccount  *AccountRefResp   `json:"debitAccount"`
	DebitAmount   decimal.Decimal   `json:"debitAmount"`
	CreditEntries []CreditEntryResp `json:"creditEntries"`
	TotalCredit   decimal.Decimal   `json:"totalCredit"`
	IsBalanced    bool              `json:"isBalanced"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// LedgerResp is the aggregated ledger response.
type LedgerResp struct {
	Success     bool                `json:"success"`
	Entries     []domain.LedgerLine `json:"entries"`
	TotalDebit  decimal.Decimal     `json:"totalDebit"`
	TotalCredit decimal.Decimal     `json:"totalCredit"`
}

func toAccountRef(account *domain.Account, id string) *AccountRefResp {
	if account == nil {
		return &AccountRefResp{ID: id}
	}
	return &AccountRefResp{
		ID:          account.ID,
		AccountName: account.AccountName,
		AccountType: string(account.AccountType),
	}
}

func toJournalEntryResp(entry *domain.JournalEntry) JournalEntryResp {
	credits := make([]CreditEntryResp, len(entry.CreditEntries))
	for i, c := range entry.CreditEntries {
		credits[i] = CreditEntryResp{
			Account: toAccountRef(c.Account, c.AccountID),
			Amount:  c.Amount,
		}
	}
	return JournalEntryResp{
		ID:            entry.ID,
		Description:   entry.Description,
		Comments:      entry.Comments,
		DebitAccount:  toAccountRef(entry.DebitAccount, entry.DebitAccountID),
		DebitAmount:   entry.DebitAmount,
		CreditEntries: credits,
		TotalCredit:   entry.TotalCredit,
		IsBalanced:    entry.IsBalanced,
		CreatedAt:     entry.CreatedAt,
	}
}
