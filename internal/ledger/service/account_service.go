package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/millbooks/backend/internal/ledger/domain"
)

// AccountService manages the chart of accounts.
type AccountService struct {
	accounts domain.AccountRepository
}

func NewAccountService(accounts domain.AccountRepository) *AccountService {
	return &AccountService{accounts: accounts}
}

// CreateAccountInput carries the fields of a new chart-of-accounts entry.
type CreateAccountInput struct {
	AccountType    string
	SubAccountType string
	AccountName    string
}

// CreateAccount validates the type/sub-type pairing against the shared
// allowed table and persists the account.
func (s *AccountService) CreateAccount(ctx context.Context, in CreateAccountInput) (*domain.Account, error) {
	if in.AccountType == "" || in.SubAccountType == "" || in.AccountName == "" {
		return nil, domain.NewValidationError("All fields are required.")
	}

	accountType := domain.AccountType(in.AccountType)
	if !accountType.Allows(domain.SubAccountType(in.SubAccountType)) {
		return nil, domain.NewValidationError("Invalid subAccountType for selected accountType.")
	}

	account := &domain.Account{
		ID:             uuid.NewString(),
		AccountType:    accountType,
		SubAccountType: domain.SubAccountType(in.SubAccountType),
		AccountName:    in.AccountName,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, domain.NewPersistenceError("Server error while creating account.", err)
	}
	return account, nil
}

// ListAccounts returns all accounts, newest first.
func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accounts.ListNewestFirst(ctx)
	if err != nil {
		return nil, domain.NewPersistenceError("Server error while fetching accounts.", err)
	}
	return accounts, nil
}
