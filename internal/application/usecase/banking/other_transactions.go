package banking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// CreateOtherTransactionInput represents the input for recording an other
// transaction.
type CreateOtherTransactionInput struct {
	Name        string
	TypeName    string
	Direction   entity.OtherTransactionDirection
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	PaymentMode entity.PaymentMode
	BankID      *uuid.UUID
}

// CreateOtherTransactionUseCase records a typed ledger movement.
type CreateOtherTransactionUseCase struct {
	txnRepo     adapter.OtherTransactionRepository
	bankRepo    adapter.BankAccountRepository
	reportCache adapter.ReportCache
}

// NewCreateOtherTransactionUseCase creates a new CreateOtherTransactionUseCase instance.
func NewCreateOtherTransactionUseCase(
	txnRepo adapter.OtherTransactionRepository,
	bankRepo adapter.BankAccountRepository,
	reportCache adapter.ReportCache,
) *CreateOtherTransactionUseCase {
	return &CreateOtherTransactionUseCase{txnRepo: txnRepo, bankRepo: bankRepo, reportCache: reportCache}
}

// Execute records the transaction.
func (uc *CreateOtherTransactionUseCase) Execute(
	ctx context.Context,
	input CreateOtherTransactionInput,
) (*entity.OtherTransaction, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := validateDirection(input.Direction); err != nil {
		return nil, err
	}
	if err := validatePaymentMode(ctx, uc.bankRepo, input.PaymentMode, input.BankID); err != nil {
		return nil, err
	}

	txn := entity.NewOtherTransaction(
		input.Name, input.TypeName, input.Direction, input.Amount,
		input.Date, input.Description, input.PaymentMode, input.BankID)
	if err := uc.txnRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create other transaction: %w", err)
	}

	invalidateReports(ctx, uc.reportCache)
	return txn, nil
}

// ListOtherTransactionsUseCase lists other transactions matching a filter.
type ListOtherTransactionsUseCase struct {
	txnRepo adapter.OtherTransactionRepository
}

// NewListOtherTransactionsUseCase creates a new ListOtherTransactionsUseCase instance.
func NewListOtherTransactionsUseCase(txnRepo adapter.OtherTransactionRepository) *ListOtherTransactionsUseCase {
	return &ListOtherTransactionsUseCase{txnRepo: txnRepo}
}

// Execute lists the transactions.
func (uc *ListOtherTransactionsUseCase) Execute(
	ctx context.Context,
	filter adapter.RecordFilter,
) ([]*entity.OtherTransaction, error) {
	txns, err := uc.txnRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list other transactions: %w", err)
	}
	return txns, nil
}

// UpdateOtherTransactionInput represents the input for updating an other
// transaction.
type UpdateOtherTransactionInput struct {
	ID          uuid.UUID
	Name        string
	TypeName    string
	Direction   entity.OtherTransactionDirection
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	PaymentMode entity.PaymentMode
	BankID      *uuid.UUID
}

// UpdateOtherTransactionUseCase updates an other transaction.
type UpdateOtherTransactionUseCase struct {
	txnRepo     adapter.OtherTransactionRepository
	bankRepo    adapter.BankAccountRepository
	reportCache adapter.ReportCache
}

// NewUpdateOtherTransactionUseCase creates a new UpdateOtherTransactionUseCase instance.
func NewUpdateOtherTransactionUseCase(
	txnRepo adapter.OtherTransactionRepository,
	bankRepo adapter.BankAccountRepository,
	reportCache adapter.ReportCache,
) *UpdateOtherTransactionUseCase {
	return &UpdateOtherTransactionUseCase{txnRepo: txnRepo, bankRepo: bankRepo, reportCache: reportCache}
}

// Execute applies the update.
func (uc *UpdateOtherTransactionUseCase) Execute(
	ctx context.Context,
	input UpdateOtherTransactionInput,
) (*entity.OtherTransaction, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := validateDirection(input.Direction); err != nil {
		return nil, err
	}
	if err := validatePaymentMode(ctx, uc.bankRepo, input.PaymentMode, input.BankID); err != nil {
		return nil, err
	}

	txn, err := uc.txnRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	txn.Name = input.Name
	txn.TypeName = input.TypeName
	txn.Direction = input.Direction
	txn.Amount = input.Amount
	txn.Date = input.Date
	txn.Description = input.Description
	txn.PaymentMode = input.PaymentMode
	txn.BankID = input.BankID
	txn.UpdatedAt = time.Now().UTC()

	if err := uc.txnRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update other transaction: %w", err)
	}

	invalidateReports(ctx, uc.reportCache)
	return txn, nil
}

// DeleteOtherTransactionUseCase soft-deletes an other transaction.
type DeleteOtherTransactionUseCase struct {
	txnRepo     adapter.OtherTransactionRepository
	reportCache adapter.ReportCache
}

// NewDeleteOtherTransactionUseCase creates a new DeleteOtherTransactionUseCase instance.
func NewDeleteOtherTransactionUseCase(
	txnRepo adapter.OtherTransactionRepository,
	reportCache adapter.ReportCache,
) *DeleteOtherTransactionUseCase {
	return &DeleteOtherTransactionUseCase{txnRepo: txnRepo, reportCache: reportCache}
}

// Execute soft-deletes the transaction.
func (uc *DeleteOtherTransactionUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.txnRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := uc.txnRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete other transaction: %w", err)
	}
	invalidateReports(ctx, uc.reportCache)
	return nil
}

func validateDirection(direction entity.OtherTransactionDirection) error {
	switch direction {
	case entity.OtherTransactionCredit, entity.OtherTransactionDebit:
		return nil
	default:
		return domainerror.NewLedgerError(
			domainerror.ErrCodeAmbiguousDirection,
			fmt.Sprintf("direction must be credit or debit, got %q", strings.TrimSpace(string(direction))),
			domainerror.ErrAmbiguousDirection,
		)
	}
}
