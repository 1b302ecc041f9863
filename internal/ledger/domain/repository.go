package domain

import (
	"context"
	"errors"
)

// ErrRecordNotFound is returned by repositories when a lookup or delete
// matches nothing. Services translate it into a user-facing NotFound error.
var ErrRecordNotFound = errors.New("record not found")

// AccountRepository stores chart-of-accounts entries.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByID(ctx context.Context, id string) (*Account, error)
	// ExistAll reports whether every id references a stored account.
	ExistAll(ctx context.Context, ids []string) (bool, error)
	// ListNewestFirst returns all accounts ordered by creation time descending.
	ListNewestFirst(ctx context.Context) ([]Account, error)
}

// JournalRepository stores journal entries together with their credit legs.
type JournalRepository interface {
	// Create persists the entry and all credit legs atomically; either the
	// whole entry becomes durable or none of it does.
	Create(ctx context.Context, entry *JournalEntry) error
	// ListNewestFirst returns entries ordered by creation time descending,
	// with debit and credit account references resolved.
	ListNewestFirst(ctx context.Context) ([]JournalEntry, error)
	// ListAll returns entries in insertion order with references resolved,
	// for ledger aggregation.
	ListAll(ctx context.Context) ([]JournalEntry, error)
	// Delete removes the entry and its credit legs. ErrRecordNotFound if the
	// id does not exist.
	Delete(ctx context.Context, id string) error
}

// PurchaseInvoiceRepository stores purchase invoice records.
type PurchaseInvoiceRepository interface {
	Create(ctx context.Context, invoice *PurchaseInvoice) error
	FindByID(ctx context.Context, id string) (*PurchaseInvoice, error)
	ListNewestFirst(ctx context.Context) ([]PurchaseInvoice, error)
	ListAll(ctx context.Context) ([]PurchaseInvoice, error)
	Update(ctx context.Context, invoice *PurchaseInvoice) error
	Delete(ctx context.Context, id string) error
}

// SalesInvoiceRepository stores sales invoice records.
type SalesInvoiceRepository interface {
	Create(ctx context.Context, invoice *SalesInvoice) error
	FindByID(ctx context.Context, id string) (*SalesInvoice, error)
	ListNewestFirst(ctx context.Context) ([]SalesInvoice, error)
	ListAll(ctx context.Context) ([]SalesInvoice, error)
	Update(ctx context.Context, invoice *SalesInvoice) error
	Delete(ctx context.Context, id string) error
}
