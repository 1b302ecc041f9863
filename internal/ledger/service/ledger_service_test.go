package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millbooks/backend/internal/ledger/domain"
)

func (e *testEnv) seedPurchase(t *testing.T, date, vendor, amount string) {
	t.Helper()
	require.NoError(t, e.purchases.Create(context.Background(), &domain.PurchaseInvoice{
		ID:            uuid.NewString(),
		Date:          date,
		VehicleNumber: "V-1",
		BuiltyNumber:  "B-1",
		VendorName:    vendor,
		Amount:        decimal.RequireFromString(amount),
	}))
}

func (e *testEnv) seedSale(t *testing.T, date, amount string) {
	t.Helper()
	require.NoError(t, e.sales.Create(context.Background(), &domain.SalesInvoice{
		ID:     uuid.NewString(),
		Date:   date,
		Amount: decimal.RequireFromString(amount),
	}))
}

func (e *testEnv) seedJournalEntry(t *testing.T, createdAt time.Time, description string, debit *domain.Account, debitAmount string, credits map[*domain.Account]string) {
	t.Helper()
	entry := &domain.JournalEntry{
		ID:             uuid.NewString(),
		Description:    description,
		DebitAccountID: debit.ID,
		DebitAmount:    decimal.RequireFromString(debitAmount),
		IsBalanced:     true,
		CreatedAt:      createdAt,
	}
	total := decimal.Zero
	for account, amount := range credits {
		a := decimal.RequireFromString(amount)
		total = total.Add(a)
		entry.CreditEntries = append(entry.CreditEntries, domain.CreditEntry{
			ID:        uuid.NewString(),
			AccountID: account.ID,
			Amount:    a,
		})
	}
	entry.TotalCredit = total
	require.NoError(t, e.journal.Create(context.Background(), entry))
}

func TestLedgerServiceInvoicesOnly(t *testing.T) {
	env := newTestEnv(t)
	svc := NewLedgerService(env.journal, env.purchases, env.sales)
	ctx := context.Background()

	env.seedPurchase(t, "2026-03-01", "Haji Traders", "500")
	env.seedSale(t, "2026-03-02", "300")

	view, err := svc.GetLedger(ctx, LedgerQuery{})
	require.NoError(t, err)
	require.Len(t, view.Entries, 4)

	assert.True(t, view.TotalDebit.Equal(decimal.RequireFromString("800")))
	assert.True(t, view.TotalCredit.Equal(decimal.RequireFromString("800")))

	// Sorted ascending by date: purchase pair first, then sales pair.
	assert.Equal(t, "Inventory", view.Entries[0].Account)
	assert.True(t, view.Entries[0].Debit.Equal(decimal.RequireFromString("500")))
	assert.Equal(t, "Haji Traders", view.Entries[1].Account)
	assert.True(t, view.Entries[1].Credit.Equal(decimal.RequireFromString("500")))
	assert.Equal(t, "Cash", view.Entries[2].Account)
	assert.Equal(t, "Sales", view.Entries[3].Account)

	// Running balance folds over the sorted order.
	assert.True(t, view.Entries[0].Balance.Equal(decimal.RequireFromString("500")))
	assert.True(t, view.Entries[1].Balance.IsZero())
	assert.True(t, view.Entries[2].Balance.Equal(decimal.RequireFromString("300")))
	assert.True(t, view.Entries[3].Balance.IsZero())
}

func TestLedgerServiceJournalExpansion(t *testing.T) {
	env := newTestEnv(t)
	svc := NewLedgerService(env.journal, env.purchases, env.sales)
	ctx := context.Background()

	seeded := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)
	cash := env.seedAccount(t, "Cash Book", seeded)
	sales := env.seedAccount(t, "Rice Sales", seeded)
	env.seedJournalEntry(t, seeded, "cash sale", cash, "100", map[*domain.Account]string{sales: "100"})

	view, err := svc.GetLedger(ctx, LedgerQuery{})
	require.NoError(t, err)
	require.Len(t, view.Entries, 2)

	// One debit line for the debit account, then one credit line per leg.
	assert.Equal(t, "Cash Book", view.Entries[0].Account)
	assert.Equal(t, "cash sale", view.Entries[0].Description)
	assert.True(t, view.Entries[0].Debit.Equal(decimal.RequireFromString("100")))
	assert.True(t, view.Entries[0].Credit.IsZero())
	assert.Equal(t, "Rice Sales", view.Entries[1].Account)
	assert.True(t, view.Entries[1].Credit.Equal(decimal.RequireFromString("100")))
	assert.Equal(t, "2026-03-03", view.Entries[1].Date)
}

func TestLedgerServiceFilters(t *testing.T) {
	env := newTestEnv(t)
	svc := NewLedgerService(env.journal, env.purchases, env.sales)
	ctx := context.Background()

	env.seedPurchase(t, "2026-03-01", "Vendor A", "500")
	env.seedPurchase(t, "2026-03-10", "Vendor B", "200")
	env.seedSale(t, "2026-03-20", "300")

	t.Run("start date is inclusive", func(t *testing.T) {
		view, err := svc.GetLedger(ctx, LedgerQuery{StartDate: "2026-03-10"})
		require.NoError(t, err)
		require.Len(t, view.Entries, 4)
		assert.Equal(t, "2026-03-10", view.Entries[0].Date)
	})

	t.Run("end date is inclusive", func(t *testing.T) {
		view, err := svc.GetLedger(ctx, LedgerQuery{EndDate: "2026-03-10"})
		require.NoError(t, err)
		require.Len(t, view.Entries, 4)
	})

	t.Run("date window", func(t *testing.T) {
		view, err := svc.GetLedger(ctx, LedgerQuery{StartDate: "2026-03-02", EndDate: "2026-03-15"})
		require.NoError(t, err)
		require.Len(t, view.Entries, 2)
		assert.True(t, view.TotalDebit.Equal(decimal.RequireFromString("200")))
	})

	t.Run("account filter is a case-insensitive substring", func(t *testing.T) {
		view, err := svc.GetLedger(ctx, LedgerQuery{Account: "vendor"})
		require.NoError(t, err)
		require.Len(t, view.Entries, 2)
		assert.Equal(t, "Vendor A", view.Entries[0].Account)
		assert.Equal(t, "Vendor B", view.Entries[1].Account)
	})

	t.Run("totals cover only filtered lines", func(t *testing.T) {
		view, err := svc.GetLedger(ctx, LedgerQuery{Account: "inventory"})
		require.NoError(t, err)
		require.Len(t, view.Entries, 2)
		assert.True(t, view.TotalDebit.Equal(decimal.RequireFromString("700")))
		assert.True(t, view.TotalCredit.IsZero())
	})

	t.Run("malformed date parameter", func(t *testing.T) {
		_, err := svc.GetLedger(ctx, LedgerQuery{StartDate: "March 1st"})
		assertDomainCode(t, err, domain.CodeValidation)
	})
}

func TestLedgerServiceStableSameDayOrder(t *testing.T) {
	env := newTestEnv(t)
	svc := NewLedgerService(env.journal, env.purchases, env.sales)
	ctx := context.Background()

	day := time.Date(2026, 4, 5, 11, 0, 0, 0, time.UTC)
	cash := env.seedAccount(t, "Cash Book", day)
	sales := env.seedAccount(t, "Rice Sales", day)
	env.seedJournalEntry(t, day, "journal", cash, "10", map[*domain.Account]string{sales: "10"})
	env.seedPurchase(t, "2026-04-05", "Vendor", "20")
	env.seedSale(t, "2026-04-05", "30")

	view, err := svc.GetLedger(ctx, LedgerQuery{})
	require.NoError(t, err)
	require.Len(t, view.Entries, 6)

	// Same-day ties keep concatenation order: journal, purchase, sales.
	assert.Equal(t, "Cash Book", view.Entries[0].Account)
	assert.Equal(t, "Rice Sales", view.Entries[1].Account)
	assert.Equal(t, "Inventory", view.Entries[2].Account)
	assert.Equal(t, "Vendor", view.Entries[3].Account)
	assert.Equal(t, "Cash", view.Entries[4].Account)
	assert.Equal(t, "Sales", view.Entries[5].Account)
}
