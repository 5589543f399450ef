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

// CreateSalaryInput represents the input for recording a salary payment.
type CreateSalaryInput struct {
	EmployeeName string
	Amount       decimal.Decimal
	Date         time.Time
	Description  string
	PaymentMode  entity.PaymentMode
	BankID       *uuid.UUID
}

// CreateSalaryUseCase records a salary payment.
type CreateSalaryUseCase struct {
	salaryRepo  adapter.SalaryRepository
	bankRepo    adapter.BankAccountRepository
	reportCache adapter.ReportCache
}

// NewCreateSalaryUseCase creates a new CreateSalaryUseCase instance.
func NewCreateSalaryUseCase(
	salaryRepo adapter.SalaryRepository,
	bankRepo adapter.BankAccountRepository,
	reportCache adapter.ReportCache,
) *CreateSalaryUseCase {
	return &CreateSalaryUseCase{salaryRepo: salaryRepo, bankRepo: bankRepo, reportCache: reportCache}
}

// Execute records the payment.
func (uc *CreateSalaryUseCase) Execute(
	ctx context.Context,
	input CreateSalaryInput,
) (*entity.Salary, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := validatePaymentMode(ctx, uc.bankRepo, input.PaymentMode, input.BankID); err != nil {
		return nil, err
	}

	salary := entity.NewSalary(
		input.EmployeeName, input.Amount, input.Date, input.Description, input.PaymentMode, input.BankID)
	if err := uc.salaryRepo.Create(ctx, salary); err != nil {
		return nil, fmt.Errorf("failed to create salary: %w", err)
	}

	invalidateReports(ctx, uc.reportCache)
	return salary, nil
}

// ListSalariesUseCase lists salary payments matching a filter.
type ListSalariesUseCase struct {
	salaryRepo adapter.SalaryRepository
}

// NewListSalariesUseCase creates a new ListSalariesUseCase instance.
func NewListSalariesUseCase(salaryRepo adapter.SalaryRepository) *ListSalariesUseCase {
	return &ListSalariesUseCase{salaryRepo: salaryRepo}
}

// Execute lists the payments.
func (uc *ListSalariesUseCase) Execute(
	ctx context.Context,
	filter adapter.RecordFilter,
) ([]*entity.Salary, error) {
	salaries, err := uc.salaryRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list salaries: %w", err)
	}
	return salaries, nil
}

// UpdateSalaryInput represents the input for updating a salary payment.
type UpdateSalaryInput struct {
	ID           uuid.UUID
	EmployeeName string
	Amount       decimal.Decimal
	Date         time.Time
	Description  string
	PaymentMode  entity.PaymentMode
	BankID       *uuid.UUID
}

// UpdateSalaryUseCase updates a salary payment.
type UpdateSalaryUseCase struct {
	salaryRepo  adapter.SalaryRepository
	bankRepo    adapter.BankAccountRepository
	reportCache adapter.ReportCache
}

// NewUpdateSalaryUseCase creates a new UpdateSalaryUseCase instance.
func NewUpdateSalaryUseCase(
	salaryRepo adapter.SalaryRepository,
	bankRepo adapter.BankAccountRepository,
	reportCache adapter.ReportCache,
) *UpdateSalaryUseCase {
	return &UpdateSalaryUseCase{salaryRepo: salaryRepo, bankRepo: bankRepo, reportCache: reportCache}
}

// Execute applies the update.
func (uc *UpdateSalaryUseCase) Execute(
	ctx context.Context,
	input UpdateSalaryInput,
) (*entity.Salary, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := validatePaymentMode(ctx, uc.bankRepo, input.PaymentMode, input.BankID); err != nil {
		return nil, err
	}

	salary, err := uc.salaryRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	salary.EmployeeName = input.EmployeeName
	salary.Amount = input.Amount
	salary.Date = input.Date
	salary.Description = input.Description
	salary.PaymentMode = input.PaymentMode
	salary.BankID = input.BankID
	salary.UpdatedAt = time.Now().UTC()

	if err := uc.salaryRepo.Update(ctx, salary); err != nil {
		return nil, fmt.Errorf("failed to update salary: %w", err)
	}

	invalidateReports(ctx, uc.reportCache)
	return salary, nil
}

// DeleteSalaryUseCase soft-deletes a salary payment.
type DeleteSalaryUseCase struct {
	salaryRepo  adapter.SalaryRepository
	reportCache adapter.ReportCache
}

// NewDeleteSalaryUseCase creates a new DeleteSalaryUseCase instance.
func NewDeleteSalaryUseCase(
	salaryRepo adapter.SalaryRepository,
	reportCache adapter.ReportCache,
) *DeleteSalaryUseCase {
	return &DeleteSalaryUseCase{salaryRepo: salaryRepo, reportCache: reportCache}
}

// Execute soft-deletes the payment.
func (uc *DeleteSalaryUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.salaryRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := uc.salaryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete salary: %w", err)
	}
	invalidateReports(ctx, uc.reportCache)
	return nil
}
