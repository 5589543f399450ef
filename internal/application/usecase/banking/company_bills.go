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

// CreateCompanyBillInput represents the input for recording a company bill.
type CreateCompanyBillInput struct {
	CompanyName string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	PaymentMode entity.PaymentMode
	BankID      *uuid.UUID
}

// CreateCompanyBillUseCase records a payment received from a company.
type CreateCompanyBillUseCase struct {
	billRepo    adapter.CompanyBillRepository
	bankRepo    adapter.BankAccountRepository
	reportCache adapter.ReportCache
}

// NewCreateCompanyBillUseCase creates a new CreateCompanyBillUseCase instance.
func NewCreateCompanyBillUseCase(
	billRepo adapter.CompanyBillRepository,
	bankRepo adapter.BankAccountRepository,
	reportCache adapter.ReportCache,
) *CreateCompanyBillUseCase {
	return &CreateCompanyBillUseCase{billRepo: billRepo, bankRepo: bankRepo, reportCache: reportCache}
}

// Execute records the bill.
func (uc *CreateCompanyBillUseCase) Execute(
	ctx context.Context,
	input CreateCompanyBillInput,
) (*entity.CompanyBill, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := validatePaymentMode(ctx, uc.bankRepo, input.PaymentMode, input.BankID); err != nil {
		return nil, err
	}

	bill := entity.NewCompanyBill(
		input.CompanyName, input.Amount, input.Date, input.Description, input.PaymentMode, input.BankID)
	if err := uc.billRepo.Create(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to create company bill: %w", err)
	}

	invalidateReports(ctx, uc.reportCache)
	return bill, nil
}

// ListCompanyBillsUseCase lists company bills matching a filter.
type ListCompanyBillsUseCase struct {
	billRepo adapter.CompanyBillRepository
}

// NewListCompanyBillsUseCase creates a new ListCompanyBillsUseCase instance.
func NewListCompanyBillsUseCase(billRepo adapter.CompanyBillRepository) *ListCompanyBillsUseCase {
	return &ListCompanyBillsUseCase{billRepo: billRepo}
}

// Execute lists the bills.
func (uc *ListCompanyBillsUseCase) Execute(
	ctx context.Context,
	filter adapter.RecordFilter,
) ([]*entity.CompanyBill, error) {
	bills, err := uc.billRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list company bills: %w", err)
	}
	return bills, nil
}

// UpdateCompanyBillInput represents the input for updating a company bill.
type UpdateCompanyBillInput struct {
	ID          uuid.UUID
	CompanyName string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	PaymentMode entity.PaymentMode
	BankID      *uuid.UUID
}

// UpdateCompanyBillUseCase updates a company bill.
type UpdateCompanyBillUseCase struct {
	billRepo    adapter.CompanyBillRepository
	bankRepo    adapter.BankAccountRepository
	reportCache adapter.ReportCache
}

// NewUpdateCompanyBillUseCase creates a new UpdateCompanyBillUseCase instance.
func NewUpdateCompanyBillUseCase(
	billRepo adapter.CompanyBillRepository,
	bankRepo adapter.BankAccountRepository,
	reportCache adapter.ReportCache,
) *UpdateCompanyBillUseCase {
	return &UpdateCompanyBillUseCase{billRepo: billRepo, bankRepo: bankRepo, reportCache: reportCache}
}

// Execute applies the update.
func (uc *UpdateCompanyBillUseCase) Execute(
	ctx context.Context,
	input UpdateCompanyBillInput,
) (*entity.CompanyBill, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := validatePaymentMode(ctx, uc.bankRepo, input.PaymentMode, input.BankID); err != nil {
		return nil, err
	}

	bill, err := uc.billRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	bill.CompanyName = input.CompanyName
	bill.Amount = input.Amount
	bill.Date = input.Date
	bill.Description = input.Description
	bill.PaymentMode = input.PaymentMode
	bill.BankID = input.BankID
	bill.UpdatedAt = time.Now().UTC()

	if err := uc.billRepo.Update(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to update company bill: %w", err)
	}

	invalidateReports(ctx, uc.reportCache)
	return bill, nil
}

// DeleteCompanyBillUseCase soft-deletes a company bill.
type DeleteCompanyBillUseCase struct {
	billRepo    adapter.CompanyBillRepository
	reportCache adapter.ReportCache
}

// NewDeleteCompanyBillUseCase creates a new DeleteCompanyBillUseCase instance.
func NewDeleteCompanyBillUseCase(
	billRepo adapter.CompanyBillRepository,
	reportCache adapter.ReportCache,
) *DeleteCompanyBillUseCase {
	return &DeleteCompanyBillUseCase{billRepo: billRepo, reportCache: reportCache}
}

// Execute soft-deletes the bill.
func (uc *DeleteCompanyBillUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.billRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := uc.billRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete company bill: %w", err)
	}
	invalidateReports(ctx, uc.reportCache)
	return nil
}
