package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/millbooks/backend/internal/ledger/domain"
)

// Synthetic account names used when projecting invoices into ledger lines.
const (
	inventoryAccount = "Inventory"
	cashAccount      = "Cash"
	salesAccount     = "Sales"

	purchaseDescription = "Purchased Inventory"
	salesDescription    = "Sold Inventory"
)

// LedgerService merges journal entries and invoices into one chronological
// account ledger with a running balance.
type LedgerService struct {
	journal   domain.JournalRepository
	purchases domain.PurchaseInvoiceRepository
	sales     domain.SalesInvoiceRepository
}

func NewLedgerService(journal domain.JournalRepository, purchases domain.PurchaseInvoiceRepository, sales domain.SalesInvoiceRepository) *LedgerService {
	return &LedgerService{journal: journal, purchases: purchases, sales: sales}
}

// LedgerQuery holds the optional filters of a ledger request.
type LedgerQuery struct {
	StartDate string // inclusive, YYYY-MM-DD
	EndDate   string // inclusive, YYYY-MM-DD
	Account   string // case-insensitive substring of the account name
}

// LedgerView is the aggregated result.
type LedgerView struct {
	Entries     []domain.LedgerLine
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// ledgerLine pairs a projected line with its parsed date so filtering and
// sorting do not re-parse per comparison.
type ledgerLine struct {
	line domain.LedgerLine
	ts   time.Time
	ok   bool
}

func newLedgerLine(date, account, description string, debit, credit decimal.Decimal) ledgerLine {
	ts, err := time.Parse(dateLayout, date)
	return ledgerLine{
		line: domain.LedgerLine{
			Date:        date,
			Account:     account,
			Description: description,
			Debit:       debit,
			Credit:      credit,
		},
		ts: ts,
		ok: err == nil,
	}
}

// GetLedger fetches all three sources, projects them into the common line
// shape, filters, sorts ascending by date and folds the running balance over
// the sorted order.
func (s *LedgerService) GetLedger(ctx context.Context, q LedgerQuery) (*LedgerView, error) {
	var startDate, endDate time.Time
	var err error
	if q.StartDate != "" {
		if startDate, err = time.Parse(dateLayout, q.StartDate); err != nil {
			return nil, domain.NewValidationError("startDate must be in YYYY-MM-DD format.")
		}
	}
	if q.EndDate != "" {
		if endDate, err = time.Parse(dateLayout, q.EndDate); err != nil {
			return nil, domain.NewValidationError("endDate must be in YYYY-MM-DD format.")
		}
	}

	entries, err := s.journal.ListAll(ctx)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to fetch journal entries.", err)
	}
	purchases, err := s.purchases.ListAll(ctx)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to fetch purchase invoices.", err)
	}
	sales, err := s.sales.ListAll(ctx)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to fetch sales invoices.", err)
	}

	// Concatenation order is part of the contract: journal lines, then
	// purchase lines, then sales lines. The date sort below is stable, so
	// same-day lines keep this order.
	lines := projectJournal(entries)
	lines = append(lines, projectPurchases(purchases)...)
	lines = append(lines, projectSales(sales)...)

	filtered := lines[:0]
	accountFilter := strings.ToLower(q.Account)
	for _, l := range lines {
		if q.StartDate != "" && (!l.ok || l.ts.Before(startDate)) {
			continue
		}
		if q.EndDate != "" && (!l.ok || l.ts.After(endDate)) {
			continue
		}
		if accountFilter != "" && !strings.Contains(strings.ToLower(l.line.Account), accountFilter) {
			continue
		}
		filtered = append(filtered, l)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].ts.Before(filtered[j].ts)
	})

	view := &LedgerView{
		Entries:     make([]domain.LedgerLine, len(filtered)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	balance := decimal.Zero
	for i, l := range filtered {
		balance = balance.Add(l.line.Debit).Sub(l.line.Credit)
		l.line.Balance = balance
		view.Entries[i] = l.line
		view.TotalDebit = view.TotalDebit.Add(l.line.Debit)
		view.TotalCredit = view.TotalCredit.Add(l.line.Credit)
	}
	return view, nil
}

// projectJournal expands each entry into one debit line for the debit account
// followed by one credit line per credit leg, all dated at the entry's
// creation date.
func projectJournal(entries []domain.JournalEntry) []ledgerLine {
	var lines []ledgerLine
	for _, e := range entries {
		date := e.CreatedAt.Format(dateLayout)
		lines = append(lines, newLedgerLine(date, accountLabel(e.DebitAccount, e.DebitAccountID), e.Description, e.DebitAmount, decimal.Zero))
		for _, c := range e.CreditEntries {
			lines = append(lines, newLedgerLine(date, accountLabel(c.Account, c.AccountID), e.Description, decimal.Zero, c.Amount))
		}
	}
	return lines
}

// projectPurchases expands each purchase invoice into a debit to Inventory
// and a credit to the vendor, both for the invoice amount.
func projectPurchases(invoices []domain.PurchaseInvoice) []ledgerLine {
	var lines []ledgerLine
	for _, inv := range invoices {
		lines = append(lines,
			newLedgerLine(inv.Date, inventoryAccount, purchaseDescription, inv.Amount, decimal.Zero),
			newLedgerLine(inv.Date, inv.VendorName, purchaseDescription, decimal.Zero, inv.Amount),
		)
	}
	return lines
}

// projectSales expands each sales invoice into a debit to Cash and a credit
// to Sales, both for the invoice amount.
func projectSales(invoices []domain.SalesInvoice) []ledgerLine {
	var lines []ledgerLine
	for _, inv := range invoices {
		lines = append(lines,
			newLedgerLine(inv.Date, cashAccount, salesDescription, inv.Amount, decimal.Zero),
			newLedgerLine(inv.Date, salesAccount, salesDescription, decimal.Zero, inv.Amount),
		)
	}
	return lines
}

func accountLabel(account *domain.Account, id string) string {
	if account != nil {
		return account.AccountName
	}
	return id
}
