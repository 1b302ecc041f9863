package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millbooks/backend/internal/ledger/domain"
)

// JournalService enforces the double-entry balance invariant. An entry whose
// debit amount does not exactly equal the sum of its credits is rejected
// before anything reaches storage.
type JournalService struct {
	accounts domain.AccountRepository
	journal  domain.JournalRepository
}

func NewJournalService(accounts domain.AccountRepository, journal domain.JournalRepository) *JournalService {
	return &JournalService{accounts: accounts, journal: journal}
}

// CreditEntryInput is one credit leg as submitted by the client.
type CreditEntryInput struct {
	Account string
	Amount  float64
}

// CreateJournalEntryInput carries a journal entry submission.
type CreateJournalEntryInput struct {
	Description   string
	Comments      string
	DebitAccount  string
	DebitAmount   float64
	CreditEntries []CreditEntryInput
}

// CreateJournalEntry validates and persists a balanced entry. All amounts are
// normalized to two decimal places before the equality check; the persisted
// entry always carries IsBalanced=true and the computed TotalCredit.
func (s *JournalService) CreateJournalEntry(ctx context.Context, in CreateJournalEntryInput) (*domain.JournalEntry, error) {
	if in.DebitAccount == "" {
		return nil, domain.NewValidationError("Required fields are missing.")
	}
	if len(in.CreditEntries) == 0 {
		return nil, domain.NewEmptyCreditSetError()
	}

	debitAmount, err := domain.NormalizeAmount(in.DebitAmount)
	if err != nil {
		return nil, err
	}

	accountIDs := []string{in.DebitAccount}
	totalCredit := decimal.Zero
	credits := make([]domain.CreditEntry, 0, len(in.CreditEntries))
	for _, c := range in.CreditEntries {
		if c.Account == "" {
			return nil, domain.NewValidationError("Required fields are missing.")
		}
		amount, err := domain.NormalizeAmount(c.Amount)
		if err != nil {
			return nil, err
		}
		accountIDs = append(accountIDs, c.Account)
		totalCredit = totalCredit.Add(amount)
		credits = append(credits, domain.CreditEntry{
			ID:        uuid.NewString(),
			AccountID: c.Account,
			Amount:    amount,
		})
	}

	ok, err := s.accounts.ExistAll(ctx, accountIDs)
	if err != nil {
		return nil, domain.NewPersistenceError("Server error while saving journal entry.", err)
	}
	if !ok {
		return nil, domain.NewValidationError("Referenced account does not exist.")
	}

	if !debitAmount.Equal(totalCredit) {
		return nil, domain.NewImbalanceError()
	}

	entry := &domain.JournalEntry{
		ID:             uuid.NewString(),
		Description:    in.Description,
		Comments:       in.Comments,
		DebitAccountID: in.DebitAccount,
		DebitAmount:    debitAmount,
		CreditEntries:  credits,
		TotalCredit:    totalCredit,
		IsBalanced:     true,
	}
	if err := s.journal.Create(ctx, entry); err != nil {
		return nil, domain.NewPersistenceError("Server error while saving journal entry.", err)
	}
	return entry, nil
}

// ListJournalEntries returns entries newest-first with account references
// resolved.
func (s *JournalService) ListJournalEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	entries, err := s.journal.ListNewestFirst(ctx)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to fetch journal entries.", err)
	}
	return entries, nil
}

// DeleteJournalEntry removes an entry and its credit legs. Entries are
// immutable; correcting one means deleting and recreating it.
func (s *JournalService) DeleteJournalEntry(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("Entry ID is required.")
	}
	if err := s.journal.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.NewNotFoundError("Journal entry not found.")
		}
		return domain.NewPersistenceError("Server error while deleting journal entry.", err)
	}
	return nil
}
