package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/millbooks/backend/internal/ledger/adapter/repo"
	"github.com/millbooks/backend/internal/ledger/domain"
)

// testEnv wires real repositories over an in-memory sqlite database, the same
// way the production services are wired over postgres.
type testEnv struct {
	db        *gorm.DB
	accounts  *repo.AccountRepo
	journal   *repo.JournalRepo
	purchases *repo.PurchaseInvoiceRepo
	sales     *repo.SalesInvoiceRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.Account{},
		&domain.JournalEntry{},
		&domain.CreditEntry{},
		&domain.PurchaseInvoice{},
		&domain.SalesInvoice{},
	))
	return &testEnv{
		db:        db,
		accounts:  repo.NewAccountRepo(db),
		journal:   repo.NewJournalRepo(db),
		purchases: repo.NewPurchaseInvoiceRepo(db),
		sales:     repo.NewSalesInvoiceRepo(db),
	}
}

// seedAccount inserts an account directly, bypassing service validation.
func (e *testEnv) seedAccount(t *testing.T, name string, createdAt time.Time) *domain.Account {
	t.Helper()
	account := &domain.Account{
		ID:             uuid.NewString(),
		AccountType:    domain.Assets,
		SubAccountType: domain.CurrentAssets,
		AccountName:    name,
		CreatedAt:      createdAt,
	}
	require.NoError(t, e.accounts.Create(context.Background(), account))
	return account
}

func (e *testEnv) journalCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(&domain.JournalEntry{}).Count(&count).Error)
	return count
}

func assertDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	require.Equal(t, code, derr.Code)
}
