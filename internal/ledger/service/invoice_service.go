package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/millbooks/backend/internal/ledger/domain"
)

const dateLayout = "2006-01-02"

// InvoiceService manages purchase and sales invoice records. Invoices are
// flat records: derived numbers are stored as submitted, with FillDerived
// backfilling only fields the client left empty.
type InvoiceService struct {
	purchases domain.PurchaseInvoiceRepository
	sales     domain.SalesInvoiceRepository
}

func NewInvoiceService(purchases domain.PurchaseInvoiceRepository, sales domain.SalesInvoiceRepository) *InvoiceService {
	return &InvoiceService{purchases: purchases, sales: sales}
}

func validDate(date string) bool {
	_, err := time.Parse(dateLayout, date)
	return err == nil
}

func invoiceError(err error) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return domain.NewNotFoundError("Invoice not found")
	}
	return domain.NewPersistenceError("Server error while processing invoice.", err)
}

// CreatePurchaseInvoice validates the identifying fields and persists the
// record.
func (s *InvoiceService) CreatePurchaseInvoice(ctx context.Context, invoice *domain.PurchaseInvoice) (*domain.PurchaseInvoice, error) {
	if invoice.Date == "" || invoice.VehicleNumber == "" || invoice.BuiltyNumber == "" || invoice.VendorName == "" {
		return nil, domain.NewValidationError("Date, vehicle number, builty number and vendor name are required.")
	}
	if !validDate(invoice.Date) {
		return nil, domain.NewValidationError("Date must be in YYYY-MM-DD format.")
	}
	invoice.ID = uuid.NewString()
	invoice.FillDerived()
	if err := s.purchases.Create(ctx, invoice); err != nil {
		return nil, invoiceError(err)
	}
	return invoice, nil
}

func (s *InvoiceService) ListPurchaseInvoices(ctx context.Context) ([]domain.PurchaseInvoice, error) {
	invoices, err := s.purchases.ListNewestFirst(ctx)
	if err != nil {
		return nil, invoiceError(err)
	}
	return invoices, nil
}

func (s *InvoiceService) GetPurchaseInvoice(ctx context.Context, id string) (*domain.PurchaseInvoice, error) {
	invoice, err := s.purchases.FindByID(ctx, id)
	if err != nil {
		return nil, invoiceError(err)
	}
	return invoice, nil
}

// UpdatePurchaseInvoice replaces the stored record's fields with the
// submitted ones, keeping id and creation time.
func (s *InvoiceService) UpdatePurchaseInvoice(ctx context.Context, id string, invoice *domain.PurchaseInvoice) (*domain.PurchaseInvoice, error) {
	if invoice.Date != "" && !validDate(invoice.Date) {
		return nil, domain.NewValidationError("Date must be in YYYY-MM-DD format.")
	}
	invoice.ID = id
	invoice.FillDerived()
	if err := s.purchases.Update(ctx, invoice); err != nil {
		return nil, invoiceError(err)
	}
	return s.purchases.FindByID(ctx, id)
}

func (s *InvoiceService) DeletePurchaseInvoice(ctx context.Context, id string) error {
	if err := s.purchases.Delete(ctx, id); err != nil {
		return invoiceError(err)
	}
	return nil
}

// CreateSalesInvoice persists a sales record. The original books kept every
// sales field optional, so only the date format is checked here.
func (s *InvoiceService) CreateSalesInvoice(ctx context.Context, invoice *domain.SalesInvoice) (*domain.SalesInvoice, error) {
	if invoice.Date != "" && !validDate(invoice.Date) {
		return nil, domain.NewValidationError("Date must be in YYYY-MM-DD format.")
	}
	invoice.ID = uuid.NewString()
	invoice.FillDerived()
	if err := s.sales.Create(ctx, invoice); err != nil {
		return nil, invoiceError(err)
	}
	return invoice, nil
}

func (s *InvoiceService) ListSalesInvoices(ctx context.Context) ([]domain.SalesInvoice, error) {
	invoices, err := s.sales.ListNewestFirst(ctx)
	if err != nil {
		return nil, invoiceError(err)
	}
	return invoices, nil
}

func (s *InvoiceService) GetSalesInvoice(ctx context.Context, id string) (*domain.SalesInvoice, error) {
	invoice, err := s.sales.FindByID(ctx, id)
	if err != nil {
		return nil, invoiceError(err)
	}
	return invoice, nil
}

func (s *InvoiceService) UpdateSalesInvoice(ctx context.Context, id string, invoice *domain.SalesInvoice) (*domain.SalesInvoice, error) {
	if invoice.Date != "" && !validDate(invoice.Date) {
		return nil, domain.NewValidationError("Date must be in YYYY-MM-DD format.")
	}
	invoice.ID = id
	invoice.FillDerived()
	if err := s.sales.Update(ctx, invoice); err != nil {
		return nil, invoiceError(err)
	}
	return s.sales.FindByID(ctx, id)
}

func (s *InvoiceService) DeleteSalesInvoice(ctx context.Context, id string) error {
	if err := s.sales.Delete(ctx, id); err != nil {
		return invoiceError(err)
	}
	return nil
}
