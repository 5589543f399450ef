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

// CreateBuyerBillInput represents the input for recording a buyer bill.
type CreateBuyerBillInput struct {
	BuyerName   string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	PaymentMode entity.PaymentMode
	BankID      *uuid.UUID
}

// CreateBuyerBillUseCase records a buyer payment.
type CreateBuyerBillUseCase struct {
	billRepo    adapter.BuyerBillRepository
	bankRepo    adapter.BankAccountRepository
	reportCache adapter.ReportCache
}

// NewCreateBuyerBillUseCase creates a new CreateBuyerBillUseCase instance.
func NewCreateBuyerBillUseCase(
	billRepo adapter.BuyerBillRepository,
	bankRepo adapter.BankAccountRepository,
	reportCache adapter.ReportCache,
) *CreateBuyerBillUseCase {
	return &CreateBuyerBillUseCase{billRepo: billRepo, bankRepo: bankRepo, reportCache: reportCache}
}

// Execute records the bill.
func (uc *CreateBuyerBillUseCase) Execute(
	ctx context.Context,
	input CreateBuyerBillInput,
) (*entity.BuyerBill, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := validatePaymentMode(ctx, uc.bankRepo, input.PaymentMode, input.BankID); err != nil {
		return nil, err
	}

	bill := entity.NewBuyerBill(
		input.BuyerName, input.Amount, input.Date, input.Description, input.PaymentMode, input.BankID)
	if err := uc.billRepo.Create(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to create buyer bill: %w", err)
	}

	invalidateReports(ctx, uc.reportCache)
	return bill, nil
}

// ListBuyerBillsUseCase lists buyer bills matching a filter.
type ListBuyerBillsUseCase struct {
	billRepo adapter.BuyerBillRepository
}

// NewListBuyerBillsUseCase creates a new ListBuyerBillsUseCase instance.
func NewListBuyerBillsUseCase(billRepo adapter.BuyerBillRepository) *ListBuyerBillsUseCase {
	return &ListBuyerBillsUseCase{billRepo: billRepo}
}

// Execute lists the bills.
func (uc *ListBuyerBillsUseCase) Execute(
	ctx context.Context,
	filter adapter.RecordFilter,
) ([]*entity.BuyerBill, error) {
	bills, err := uc.billRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list buyer bills: %w", err)
	}
	return bills, nil
}

// UpdateBuyerBillInput represents the input for updating a buyer bill.
type UpdateBuyerBillInput struct {
	ID          uuid.UUID
	BuyerName   string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	PaymentMode entity.PaymentMode
	BankID      *uuid.UUID
}

// UpdateBuyerBillUseCase updates a buyer bill.
type UpdateBuyerBillUseCase struct {
	billRepo    adapter.BuyerBillRepository
	bankRepo    adapter.BankAccountRepository
	reportCache adapter.ReportCache
}

// NewUpdateBuyerBillUseCase creates a new UpdateBuyerBillUseCase instance.
func NewUpdateBuyerBillUseCase(
	billRepo adapter.BuyerBillRepository,
	bankRepo adapter.BankAccountRepository,
	reportCache adapter.ReportCache,
) *UpdateBuyerBillUseCase {
	return &UpdateBuyerBillUseCase{billRepo: billRepo, bankRepo: bankRepo, reportCache: reportCache}
}

// Execute applies the update.
func (uc *UpdateBuyerBillUseCase) Execute(
	ctx context.Context,
	input UpdateBuyerBillInput,
) (*entity.BuyerBill, error) {
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

	bill.BuyerName = input.BuyerName
	bill.Amount = input.Amount
	bill.Date = input.Date
	bill.Description = input.Description
	bill.PaymentMode = input.PaymentMode
	bill.BankID = input.BankID
	bill.UpdatedAt = time.Now().UTC()

	if err := uc.billRepo.Update(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to update buyer bill: %w", err)
	}

	invalidateReports(ctx, uc.reportCache)
	return bill, nil
}

// DeleteBuyerBillUseCase soft-deletes a buyer bill.
type DeleteBuyerBillUseCase struct {
	billRepo    adapter.BuyerBillRepository
	reportCache adapter.ReportCache
}

// NewDeleteBuyerBillUseCase creates a new DeleteBuyerBillUseCase instance.
func NewDeleteBuyerBillUseCase(
	billRepo adapter.BuyerBillRepository,
	reportCache adapter.ReportCache,
) *DeleteBuyerBillUseCase {
	return &DeleteBuyerBillUseCase{billRepo: billRepo, reportCache: reportCache}
}

// Execute soft-deletes the bill.
func (uc *DeleteBuyerBillUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.billRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := uc.billRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete buyer bill: %w", err)
	}
	invalidateReports(ctx, uc.reportCache)
	return nil
}
