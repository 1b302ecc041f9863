package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/millbooks/backend/internal/ledger/domain"
)

// AccountRepo is the gorm implementation of domain.AccountRepository.
type AccountRepo struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

func (r *AccountRepo) Create(ctx context.Context, account *domain.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *AccountRepo) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	var account domain.Account
	if err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepo) ExistAll(ctx context.Context, ids []string) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	// Deduplicate: the same account may appear in several legs.
	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Account{}).Where("id IN ?", unique).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == int64(len(unique)), nil
}

func (r *AccountRepo) ListNewestFirst(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&accounts).Error
	return accounts, err
}

// ---------------------------------------------------------

// JournalRepo is the gorm implementation of domain.JournalRepository.
type JournalRepo struct {
	db *gorm.DB
}

func NewJournalRepo(db *gorm.DB) *JournalRepo {
	return &JournalRepo{db: db}
}

// Create inserts the entry and its credit legs in one transaction so a
// partially written entry is never observable.
func (r *JournalRepo) Create(ctx context.Context, entry *domain.JournalEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(entry).Error
	})
}

func (r *JournalRepo) ListNewestFirst(ctx context.Context) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	err := r.db.WithContext(ctx).
		Preload("DebitAccount").
		Preload("CreditEntries.Account").
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *JournalRepo) ListAll(ctx context.Context) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	err := r.db.WithContext(ctx).
		Preload("DebitAccount").
		Preload("CreditEntries.Account").
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (r *JournalRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&domain.JournalEntry{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrRecordNotFound
		}
		return tx.Delete(&domain.CreditEntry{}, "journal_entry_id = ?", id).Error
	})
}

// ---------------------------------------------------------

// PurchaseInvoiceRepo is the gorm implementation of
// domain.PurchaseInvoiceRepository.
type PurchaseInvoiceRepo struct {
	db *gorm.DB
}

func NewPurchaseInvoiceRepo(db *gorm.DB) *PurchaseInvoiceRepo {
	return &PurchaseInvoiceRepo{db: db}
}

func (r *PurchaseInvoiceRepo) Create(ctx context.Context, invoice *domain.PurchaseInvoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *PurchaseInvoiceRepo) FindByID(ctx context.Context, id string) (*domain.PurchaseInvoice, error) {
	var invoice domain.PurchaseInvoice
	if err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *PurchaseInvoiceRepo) ListNewestFirst(ctx context.Context) ([]domain.PurchaseInvoice, error) {
	var invoices []domain.PurchaseInvoice
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&invoices).Error
	return invoices, err
}

func (r *PurchaseInvoiceRepo) ListAll(ctx context.Context) ([]domain.PurchaseInvoice, error) {
	var invoices []domain.PurchaseInvoice
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&invoices).Error
	return invoices, err
}

func (r *PurchaseInvoiceRepo) Update(ctx context.Context, invoice *domain.PurchaseInvoice) error {
	result := r.db.WithContext(ctx).Model(&domain.PurchaseInvoice{}).
		Where("id = ?", invoice.ID).
		Select("*").Omit("id", "created_at").
		Updates(invoice)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func (r *PurchaseInvoiceRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.PurchaseInvoice{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// ---------------------------------------------------------

// SalesInvoiceRepo is the gorm implementation of
// domain.SalesInvoiceRepository.
type SalesInvoiceRepo struct {
	db *gorm.DB
}

func NewSalesInvoiceRepo(db *gorm.DB) *SalesInvoiceRepo {
	return &SalesInvoiceRepo{db: db}
}

func (r *SalesInvoiceRepo) Create(ctx context.Context, invoice *domain.SalesInvoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *SalesInvoiceRepo) FindByID(ctx context.Context, id string) (*domain.SalesInvoice, error) {
	var invoice domain.SalesInvoice
	if err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *SalesInvoiceRepo) ListNewestFirst(ctx context.Context) ([]domain.SalesInvoice, error) {
	var invoices []domain.SalesInvoice
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&invoices).Error
	return invoices, err
}

func (r *SalesInvoiceRepo) ListAll(ctx context.Context) ([]domain.SalesInvoice, error) {
	var invoices []domain.SalesInvoice
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&invoices).Error
	return invoices, err
}

func (r *SalesInvoiceRepo) Update(ctx context.Context, invoice *domain.SalesInvoice) error {
	result := r.db.WithContext(ctx).Model(&domain.SalesInvoice{}).
		Where("id = ?", invoice.ID).
		Select("*").Omit("id", "created_at").
		Updates(invoice)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func (r *SalesInvoiceRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.SalesInvoice{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}
