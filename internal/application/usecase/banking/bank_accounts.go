package banking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
)

// CreateBankAccountInput represents the input for registering a bank account.
type CreateBankAccountInput struct {
	Name           string
	AccountNumber  string
	OpeningBalance decimal.Decimal
	OpeningDate    time.Time
}

// CreateBankAccountUseCase registers a bank account with its opening balance.
type CreateBankAccountUseCase struct {
	bankRepo    adapter.BankAccountRepository
	reportCache adapter.ReportCache
}

// NewCreateBankAccountUseCase creates a new CreateBankAccountUseCase instance.
func NewCreateBankAccountUseCase(
	bankRepo adapter.BankAccountRepository,
	reportCache adapter.ReportCache,
) *CreateBankAccountUseCase {
	return &CreateBankAccountUseCase{bankRepo: bankRepo, reportCache: reportCache}
}

// Execute registers the account. The opening balance may be zero for a
// freshly opened account.
func (uc *CreateBankAccountUseCase) Execute(
	ctx context.Context,
	input CreateBankAccountInput,
) (*entity.BankAccount, error) {
	openingDate := input.OpeningDate
	if openingDate.IsZero() {
		openingDate = time.Now().UTC()
	}

	account := entity.NewBankAccount(input.Name, input.AccountNumber, input.OpeningBalance, openingDate)
	if err := uc.bankRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create bank account: %w", err)
	}

	invalidateReports(ctx, uc.reportCache)
	return account, nil
}

// ListBankAccountsUseCase lists all registered bank accounts.
type ListBankAccountsUseCase struct {
	bankRepo adapter.BankAccountRepository
}

// NewListBankAccountsUseCase creates a new ListBankAccountsUseCase instance.
func NewListBankAccountsUseCase(bankRepo adapter.BankAccountRepository) *ListBankAccountsUseCase {
	return &ListBankAccountsUseCase{bankRepo: bankRepo}
}

// Execute lists the accounts.
func (uc *ListBankAccountsUseCase) Execute(ctx context.Context) ([]*entity.BankAccount, error) {
	accounts, err := uc.bankRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}
	return accounts, nil
}

// UpdateBankAccountInput represents the input for updating a bank account.
type UpdateBankAccountInput struct {
	ID             uuid.UUID
	Name           string
	AccountNumber  string
	OpeningBalance decimal.Decimal
	OpeningDate    time.Time
}

// UpdateBankAccountUseCase updates a bank account.
type UpdateBankAccountUseCase struct {
	bankRepo    adapter.BankAccountRepository
	reportCache adapter.ReportCache
}

// NewUpdateBankAccountUseCase creates a new UpdateBankAccountUseCase instance.
func NewUpdateBankAccountUseCase(
	bankRepo adapter.BankAccountRepository,
	reportCache adapter.ReportCache,
) *UpdateBankAccountUseCase {
	return &UpdateBankAccountUseCase{bankRepo: bankRepo, reportCache: reportCache}
}

// Execute applies the update.
func (uc *UpdateBankAccountUseCase) Execute(
	ctx context.Context,
	input UpdateBankAccountInput,
) (*entity.BankAccount, error) {
	account, err := uc.bankRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	account.Name = input.Name
	account.AccountNumber = input.AccountNumber
	account.OpeningBalance = input.OpeningBalance
	if !input.OpeningDate.IsZero() {
		account.OpeningDate = input.OpeningDate
	}
	account.UpdatedAt = time.Now().UTC()

	if err := uc.bankRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update bank account: %w", err)
	}

	invalidateReports(ctx, uc.reportCache)
	return account, nil
}

// DeleteBankAccountUseCase soft-deletes a bank account.
type DeleteBankAccountUseCase struct {
	bankRepo    adapter.BankAccountRepository
	reportCache adapter.ReportCache
}

// NewDeleteBankAccountUseCase creates a new DeleteBankAccountUseCase instance.
func NewDeleteBankAccountUseCase(
	bankRepo adapter.BankAccountRepository,
	reportCache adapter.ReportCache,
) *DeleteBankAccountUseCase {
	return &DeleteBankAccountUseCase{bankRepo: bankRepo, reportCache: reportCache}
}

// Execute soft-deletes the account.
func (uc *DeleteBankAccountUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.bankRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := uc.bankRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete bank account: %w", err)
	}
	invalidateReports(ctx, uc.reportCache)
	return nil
}
